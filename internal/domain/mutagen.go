// Package domain contains the core sequence analysis workflow and logic.
package domain

import (
	"fmt"

	m "github.com/mouse-blink/helixsleuth/internal/model"
)

// Mutagen defines the interface for applying mutations to sequences.
// Apply never modifies its input; every edit returns a fresh sequence.
type Mutagen interface {
	Apply(seq m.Sequence, mut m.Mutation) (m.Sequence, error)
}

// mutagen handles pure mutation application logic.
type mutagen struct{}

// NewMutagen creates a new Mutagen instance.
func NewMutagen() Mutagen {
	return &mutagen{}
}

func (mg *mutagen) Apply(seq m.Sequence, mut m.Mutation) (m.Sequence, error) {
	switch mut.Type {
	case m.MutationPoint:
		return applyPoint(seq, mut)
	case m.MutationInsertion:
		return applyInsertion(seq, mut)
	case m.MutationDeletion:
		return applyDeletion(seq, mut)
	}

	return "", fmt.Errorf("unsupported mutation type: %q", mut.Type)
}

func applyPoint(seq m.Sequence, mut m.Mutation) (m.Sequence, error) {
	if mut.Position < 0 || mut.Position >= len(seq) {
		return "", fmt.Errorf("point position %d out of range [0, %d): %w", mut.Position, len(seq), ErrInvalidPosition)
	}

	if !IsBase(mut.Base) {
		return "", fmt.Errorf("invalid replacement base %q: %w", mut.Base, ErrInvalidAlphabet)
	}

	return splice(seq, mut.Position, mut.Position+1, m.Sequence(mut.Base)), nil
}

func applyInsertion(seq m.Sequence, mut m.Mutation) (m.Sequence, error) {
	if mut.Position < 0 || mut.Position > len(seq) {
		return "", fmt.Errorf("insertion position %d out of range [0, %d]: %w", mut.Position, len(seq), ErrInvalidPosition)
	}

	if err := ValidateSequence(mut.Insert); err != nil {
		return "", fmt.Errorf("invalid insert: %w", err)
	}

	return splice(seq, mut.Position, mut.Position, mut.Insert), nil
}

func applyDeletion(seq m.Sequence, mut m.Mutation) (m.Sequence, error) {
	if mut.Position < 0 || mut.Position >= len(seq) {
		return "", fmt.Errorf("deletion position %d out of range [0, %d): %w", mut.Position, len(seq), ErrInvalidPosition)
	}

	if mut.Length < 1 || mut.Length > len(seq)-mut.Position {
		return "", fmt.Errorf("deletion length %d out of range [1, %d]: %w", mut.Length, len(seq)-mut.Position, ErrInvalidPosition)
	}

	return splice(seq, mut.Position, mut.Position+mut.Length, ""), nil
}

// splice replaces seq[start:end] with replacement. Bounds are the caller's
// responsibility.
func splice(seq m.Sequence, start, end int, replacement m.Sequence) m.Sequence {
	mutated := make([]byte, 0, len(seq)-(end-start)+len(replacement))
	mutated = append(mutated, seq[:start]...)
	mutated = append(mutated, replacement...)
	mutated = append(mutated, seq[end:]...)

	return m.Sequence(mutated)
}

// Notation renders a compact label for a mutation against its original
// sequence: G12T for a point mutation, 5insAT for an insertion, 5del3 for
// a deletion. Positions are 1-based. Returns "" when the mutation does not
// fit the sequence.
func Notation(seq m.Sequence, mut m.Mutation) string {
	switch mut.Type {
	case m.MutationPoint:
		if mut.Position < 0 || mut.Position >= len(seq) {
			return ""
		}

		return fmt.Sprintf("%c%d%c", seq[mut.Position], mut.Position+1, mut.Base)
	case m.MutationInsertion:
		if mut.Position < 0 || mut.Position > len(seq) {
			return ""
		}

		return fmt.Sprintf("%dins%s", mut.Position+1, mut.Insert)
	case m.MutationDeletion:
		if mut.Position < 0 || mut.Position >= len(seq) {
			return ""
		}

		return fmt.Sprintf("%ddel%d", mut.Position+1, mut.Length)
	}

	return ""
}
