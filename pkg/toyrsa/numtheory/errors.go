package numtheory

import "errors"

var (
	// ErrInvalidModulus indicates a modulus that is zero, negative, or
	// too small for the requested operation.
	ErrInvalidModulus = errors.New("numtheory: invalid modulus")

	// ErrNegativeExponent indicates a negative exponent was passed to ModExp.
	ErrNegativeExponent = errors.New("numtheory: negative exponent")

	// ErrNoInverse indicates that no modular inverse exists because the
	// operands are not coprime.
	ErrNoInverse = errors.New("numtheory: no modular inverse")
)
