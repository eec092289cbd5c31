package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mycli/mycli/internal/tui"
)

// Controller owns the terminal for the lifetime of one interactive session.
// Raw mode and the alternate screen are acquired when Run starts and are
// released before Run returns, whatever the exit path.
type Controller struct {
	id     string
	model  *tui.Model
	ctx    context.Context
	input  io.Reader
	output io.Writer
	logger *log.Logger

	// decorate, when set, wraps the model handed to Bubble Tea.
	decorate func(tea.Model) tea.Model

	state atomic.Int32
}

// Option configures a Controller.
type Option func(*Controller)

// WithInput reads key events from r. Without it Bubble Tea reads stdin, or
// opens the TTY directly when stdin is not a terminal.
func WithInput(r io.Reader) Option {
	return func(c *Controller) { c.input = r }
}

// WithOutput draws frames to w instead of stdout.
func WithOutput(w io.Writer) Option {
	return func(c *Controller) { c.output = w }
}

// WithLogger sets the logger for lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithContext stops the session when ctx is done.
func WithContext(ctx context.Context) Option {
	return func(c *Controller) { c.ctx = ctx }
}

// New creates a controller for model. A nil model starts a fresh counter.
func New(model *tui.Model, opts ...Option) *Controller {
	if model == nil {
		model = tui.NewModel()
	}

	c := &Controller{
		id:    uuid.New().String(),
		model: model,
		ctx:   context.Background(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "mycli"})
	}
	c.logger = c.logger.With("session", c.id)
	c.state.Store(int32(StateIdle))

	return c
}

// ID returns the session identifier used in log lines.
func (c *Controller) ID() string {
	return c.id
}

// State returns the current lifecycle state. Safe to call from any goroutine.
func (c *Controller) State() State {
	return State(c.state.Load())
}

// Run takes over the terminal and blocks until the user quits or an error
// stops the loop. The terminal is restored before Run returns. The returned
// model holds the final counter even when err is non-nil.
func (c *Controller) Run() (*tui.Model, error) {
	if !c.state.CompareAndSwap(int32(StateIdle), int32(StateRunning)) {
		return c.model, ErrAlreadyRun
	}
	defer c.state.Store(int32(StateTerminated))

	opts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(c.ctx),
	}
	if c.input != nil {
		opts = append(opts, tea.WithInput(c.input))
	}
	if c.output != nil {
		opts = append(opts, tea.WithOutput(c.output))
	}

	t := &tracked{Model: c.model}
	var model tea.Model = t
	if c.decorate != nil {
		model = c.decorate(t)
	}

	c.logger.Debug("session starting")
	_, err := tea.NewProgram(model, opts...).Run()

	if err != nil {
		err = classify(err, t.started.Load())
		c.logger.Debug("session failed", "counter", c.model.Counter(), "err", err)
		return c.model, err
	}

	c.logger.Debug("session ended", "counter", c.model.Counter())
	return c.model, nil
}

// classify maps a Bubble Tea error onto the session error kinds, keeping the
// original in the chain.
func classify(err error, started bool) error {
	switch {
	case errors.Is(err, tea.ErrProgramPanic):
		return fmt.Errorf("%w: %w", ErrRender, err)
	case err == tea.ErrProgramKilled,
		errors.Is(err, tea.ErrInterrupted),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		// Bubble Tea wraps every loop failure in ErrProgramKilled, so only a
		// bare kill or a context/signal cause counts as outside cancellation.
		return fmt.Errorf("%w: %w", ErrKilled, err)
	case !started:
		return fmt.Errorf("%w: %w", ErrTerminalInit, err)
	default:
		return fmt.Errorf("%w: %w", ErrInput, err)
	}
}

// tracked records that the program got past terminal setup. Bubble Tea calls
// Init only after raw mode and the alternate screen are in place.
type tracked struct {
	*tui.Model
	started atomic.Bool
}

func (t *tracked) Init() tea.Cmd {
	t.started.Store(true)
	return t.Model.Init()
}

func (t *tracked) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := t.Model.Update(msg)
	return t, cmd
}
