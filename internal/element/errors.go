package element

import "errors"

var (
	// ErrParameter indicates an invalid construction parameter (non-positive
	// sample time, inverted time constant, negative damping, ...).
	ErrParameter = errors.New("element: parameter out of valid range")

	// ErrCapacity indicates a requested delay length exceeding the maximum
	// supported buffer size. Always raised at construction, never mid-run.
	ErrCapacity = errors.New("element: delay exceeds buffer capacity")
)
