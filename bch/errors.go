package bch

import "errors"

var (
	// ErrConfiguration is returned when no code exists for the
	// requested parameters, or when a generator is malformed.
	ErrConfiguration = errors.New("bch: invalid configuration")

	// ErrConsistency is returned when an algebraic invariant fails,
	// which indicates a bug in the field arithmetic.
	ErrConsistency = errors.New("bch: consistency check failed")

	// ErrUncorrectable is returned by Decode when the received word
	// has more errors than the code can correct.
	ErrUncorrectable = errors.New("bch: uncorrectable errors")

	// ErrLength is returned by Encode and Decode for inputs of the
	// wrong length.
	ErrLength = errors.New("bch: wrong input length")
)
