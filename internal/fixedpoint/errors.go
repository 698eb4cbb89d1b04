package fixedpoint

import (
	"errors"
	"fmt"
)

var (
	// ErrNotANumber indicates input text that does not parse as a number.
	ErrNotANumber = errors.New("fixedpoint: not a number")

	// ErrNotFinite indicates NaN or ±Inf, which cosine maps to NaN forever.
	ErrNotFinite = errors.New("fixedpoint: value is not finite")

	// ErrEmptyInput indicates an empty line or end of input before any text.
	ErrEmptyInput = errors.New("fixedpoint: no input")

	// ErrNoConvergence indicates a bounded run used up its step limit.
	ErrNoConvergence = errors.New("fixedpoint: no fixed point within step limit")

	// ErrCanceled indicates the run was interrupted.
	ErrCanceled = errors.New("fixedpoint: iteration canceled")

	// ErrInvalidConfig indicates a negative interval, limit or precision.
	ErrInvalidConfig = errors.New("fixedpoint: invalid config")
)

// InputError reports a starting value that could not be used.
type InputError struct {
	Text string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input %q: %v", e.Text, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// StepError wraps an error with the step at which the loop stopped.
type StepError struct {
	Step  int
	Value float64
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (x=%.17g): %v", e.Step, e.Value, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
