package domain

import (
	"fmt"
	"strings"

	m "github.com/mouse-blink/helixsleuth/internal/model"
)

// Normalize converts raw input to canonical form: surrounding whitespace
// trimmed, bases uppercased. It runs exactly once at the workflow boundary;
// everything below it assumes canonical input.
func Normalize(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// IsBase reports whether b is one of the four canonical bases.
func IsBase(b byte) bool {
	return b == 'A' || b == 'T' || b == 'G' || b == 'C'
}

// ValidateSequence checks every symbol of a canonical sequence against the
// alphabet. The empty sequence is valid. On failure the error names the
// first offending symbol and its 1-based position.
func ValidateSequence(seq m.Sequence) error {
	for i := 0; i < len(seq); i++ {
		if !IsBase(seq[i]) {
			return fmt.Errorf("invalid nucleotide %q at position %d: %w", seq[i], i+1, ErrInvalidAlphabet)
		}
	}

	return nil
}

// ParseSequence validates canonical input and returns it as a Sequence.
// Callers normalize first; ParseSequence does not.
func ParseSequence(raw string) (m.Sequence, error) {
	seq := m.Sequence(raw)
	if err := ValidateSequence(seq); err != nil {
		return "", err
	}

	return seq, nil
}
