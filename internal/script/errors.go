package script

import (
	"errors"
	"fmt"
)

// Errors returned by script operations.
var (
	// ErrUnknownFormat indicates a script file extension is not recognized.
	ErrUnknownFormat = errors.New("unknown script format")

	// ErrUnknownShape indicates a shape name is not recognized.
	ErrUnknownShape = errors.New("unknown shape")

	// ErrInvalidStep indicates a step names zero or several actions.
	ErrInvalidStep = errors.New("step must name exactly one action")
)

// StepError reports which YAML step failed.
type StepError struct {
	Index int    // Zero-based step index
	Op    string // Action name, if known
	Err   error  // Underlying error
}

func (e *StepError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("step %d (%s): %v", e.Index+1, e.Op, e.Err)
	}
	return fmt.Sprintf("step %d: %v", e.Index+1, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// ScriptError reports a failure while loading or running a script.
type ScriptError struct {
	Name string // Script name or path
	Err  error  // Underlying error
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("script %s: %v", e.Name, e.Err)
}

func (e *ScriptError) Unwrap() error {
	return e.Err
}
