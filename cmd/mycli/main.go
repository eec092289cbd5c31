package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/mycli/mycli/internal/session"
	"github.com/mycli/mycli/internal/tui"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "mycli",
	})

	if err := run(logger); err != nil {
		os.Exit(1)
	}
}

// run drives one session and reports a failure on logger. The controller has
// already restored the terminal by the time the diagnostic is written, so it
// lands on the normal screen.
func run(logger *log.Logger, opts ...session.Option) error {
	opts = append([]session.Option{session.WithLogger(logger)}, opts...)
	controller := session.New(tui.NewModel(), opts...)

	if _, err := controller.Run(); err != nil {
		logger.Error("TUI error", "session", controller.ID(), "err", err)
		return err
	}
	return nil
}
