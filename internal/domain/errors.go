package domain

import "errors"

// Sentinel errors for request validation. Callers branch with errors.Is;
// wrapped messages carry the offending detail.
var (
	// ErrInvalidAlphabet reports a symbol outside the A, T, G, C alphabet.
	ErrInvalidAlphabet = errors.New("invalid alphabet")

	// ErrInvalidPosition reports a mutation whose position or length does
	// not fit the target sequence.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrSequenceTooLong reports a sequence over the configured length limit.
	ErrSequenceTooLong = errors.New("sequence too long")
)
