package session

import (
	"errors"
)

// State is the lifecycle position of a Controller.
type State int32

const (
	StateIdle State = iota
	StateRunning
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

var (
	// ErrTerminalInit means raw mode or the alternate screen could not be engaged.
	ErrTerminalInit = errors.New("terminal initialization failed")

	// ErrInput means polling or reading the input stream failed.
	ErrInput = errors.New("input failed")

	// ErrRender means drawing a frame failed.
	ErrRender = errors.New("render failed")

	// ErrKilled means the session was stopped from outside (context or signal).
	ErrKilled = errors.New("session killed")

	// ErrAlreadyRun is returned when Run is called on a spent Controller.
	ErrAlreadyRun = errors.New("session already run")
)
