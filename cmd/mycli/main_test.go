package main

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/mycli/mycli/internal/session"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("read /dev/tty: input/output error")
}

func TestRunQuit(t *testing.T) {
	var logs bytes.Buffer
	logger := log.New(&logs)

	err := run(logger, session.WithInput(strings.NewReader("kkq")), session.WithOutput(io.Discard))
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if logs.Len() != 0 {
		t.Errorf("normal quit should log nothing, got %q", logs.String())
	}
}

func TestRunFailureDiagnostic(t *testing.T) {
	var logs bytes.Buffer
	logger := log.New(&logs)

	err := run(logger, session.WithInput(failingReader{}), session.WithOutput(io.Discard))
	if !errors.Is(err, session.ErrInput) {
		t.Fatalf("run() error = %v, want ErrInput", err)
	}

	out := logs.String()
	for _, want := range []string{"TUI error", "session=", "input failed"} {
		if !strings.Contains(out, want) {
			t.Errorf("diagnostic missing %q: %q", want, out)
		}
	}
}
