package toyrsa

import (
	"errors"
	"fmt"
)

var (
	// ErrMessageOutOfRange indicates a message or cipher unit outside
	// [0, modulus).
	ErrMessageOutOfRange = errors.New("toyrsa: message out of range")

	// ErrSamplingExhausted indicates the configured attempt cap was
	// exceeded before two suitable primes were found.
	ErrSamplingExhausted = errors.New("toyrsa: prime sampling attempts exhausted")

	// ErrInvalidKey indicates a key with a missing or non-positive
	// modulus or exponent.
	ErrInvalidKey = errors.New("toyrsa: invalid key")

	// ErrInvalidConfig indicates an unusable generator configuration.
	ErrInvalidConfig = errors.New("toyrsa: invalid generator config")
)

// Error wraps an underlying error with the operation that failed.
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("toyrsa.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// errorf creates a new Error
func errorf(op string, format string, args ...interface{}) error {
	return &Error{
		Op:  op,
		Err: fmt.Errorf(format, args...),
	}
}
