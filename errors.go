package pixdev

import (
	"errors"
	"fmt"
)

// ErrDestroyed is returned by drawing commands issued after Destroy.
var ErrDestroyed = errors.New("pixdev: device destroyed")

// ArgumentError reports a required resource argument that did not
// resolve, or a color component array whose length does not match the
// colorspace channel count. It is raised before any lock is taken and
// before any engine primitive runs; the command has no side effects.
type ArgumentError struct {
	Op  string // entry point that rejected the argument
	Msg string
}

func (e *ArgumentError) Error() string {
	return "pixdev: " + e.Op + ": " + e.Msg
}

// LockError reports a failed acquisition of the session's pixel target.
// It is raised before any engine primitive runs; nothing was locked, so
// nothing is released.
type LockError struct {
	Op  string
	Err error
}

func (e *LockError) Error() string {
	return fmt.Sprintf("pixdev: %s: acquire pixel target: %v", e.Op, e.Err)
}

// Unwrap returns the underlying acquisition error.
func (e *LockError) Unwrap() error { return e.Err }

// EngineError reports a failure of the engine primitive itself. By the
// time the caller sees it the pixel target has already been released.
type EngineError struct {
	Op  string
	Err error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("pixdev: %s: %v", e.Op, e.Err)
}

// Unwrap returns the engine's error.
func (e *EngineError) Unwrap() error { return e.Err }
