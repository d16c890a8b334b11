package domain

import (
	"errors"
	"testing"

	m "github.com/mouse-blink/helixsleuth/internal/model"
)

const refSeq = m.Sequence("ATGCGTACGTACGTACGT")

func TestMutagen_Apply_PointSubstitution(t *testing.T) {
	mg := NewMutagen()

	mutated, err := mg.Apply(refSeq, m.Mutation{Type: m.MutationPoint, Position: 0, Base: 'T'})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if mutated != "TTGCGTACGTACGTACGT" {
		t.Fatalf("expected TTGCGTACGTACGTACGT, got %s", mutated)
	}

	if len(mutated) != len(refSeq) {
		t.Fatalf("point mutation changed length: %d != %d", len(mutated), len(refSeq))
	}
}

func TestMutagen_Apply_PointLastPosition(t *testing.T) {
	mg := NewMutagen()

	mutated, err := mg.Apply(refSeq, m.Mutation{Type: m.MutationPoint, Position: len(refSeq) - 1, Base: 'A'})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if mutated != "ATGCGTACGTACGTACGA" {
		t.Fatalf("expected ATGCGTACGTACGTACGA, got %s", mutated)
	}
}

func TestMutagen_Apply_PointBounds(t *testing.T) {
	mg := NewMutagen()

	for _, position := range []int{-1, len(refSeq), len(refSeq) + 1} {
		_, err := mg.Apply(refSeq, m.Mutation{Type: m.MutationPoint, Position: position, Base: 'A'})
		if !errors.Is(err, ErrInvalidPosition) {
			t.Fatalf("position %d: expected ErrInvalidPosition, got %v", position, err)
		}
	}
}

func TestMutagen_Apply_PointInvalidBase(t *testing.T) {
	mg := NewMutagen()

	for _, base := range []byte{'X', 'a', 'U', 0} {
		_, err := mg.Apply(refSeq, m.Mutation{Type: m.MutationPoint, Position: 0, Base: base})
		if !errors.Is(err, ErrInvalidAlphabet) {
			t.Fatalf("base %q: expected ErrInvalidAlphabet, got %v", base, err)
		}
	}
}

func TestMutagen_Apply_PointOnEmptySequence(t *testing.T) {
	mg := NewMutagen()

	_, err := mg.Apply("", m.Mutation{Type: m.MutationPoint, Position: 0, Base: 'A'})
	if !errors.Is(err, ErrInvalidPosition) {
		t.Fatalf("expected ErrInvalidPosition, got %v", err)
	}
}

func TestMutagen_Apply_InsertionInside(t *testing.T) {
	mg := NewMutagen()

	mutated, err := mg.Apply("ATGC", m.Mutation{Type: m.MutationInsertion, Position: 2, Insert: "TT"})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if mutated != "ATTTGC" {
		t.Fatalf("expected ATTTGC, got %s", mutated)
	}
}

func TestMutagen_Apply_InsertionAtStart(t *testing.T) {
	mg := NewMutagen()

	mutated, err := mg.Apply("ATGC", m.Mutation{Type: m.MutationInsertion, Position: 0, Insert: "GG"})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if mutated != "GGATGC" {
		t.Fatalf("expected GGATGC, got %s", mutated)
	}
}

func TestMutagen_Apply_InsertionAtEnd(t *testing.T) {
	mg := NewMutagen()

	mutated, err := mg.Apply(refSeq, m.Mutation{Type: m.MutationInsertion, Position: len(refSeq), Insert: "AT"})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if mutated != refSeq+"AT" {
		t.Fatalf("expected %sAT, got %s", refSeq, mutated)
	}
}

func TestMutagen_Apply_InsertionIntoEmptySequence(t *testing.T) {
	mg := NewMutagen()

	mutated, err := mg.Apply("", m.Mutation{Type: m.MutationInsertion, Position: 0, Insert: "ATG"})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if mutated != "ATG" {
		t.Fatalf("expected ATG, got %s", mutated)
	}
}

func TestMutagen_Apply_InsertionPastEnd(t *testing.T) {
	mg := NewMutagen()

	_, err := mg.Apply(refSeq, m.Mutation{Type: m.MutationInsertion, Position: len(refSeq) + 1, Insert: "AT"})
	if !errors.Is(err, ErrInvalidPosition) {
		t.Fatalf("expected ErrInvalidPosition, got %v", err)
	}
}

func TestMutagen_Apply_InsertionInvalidBases(t *testing.T) {
	mg := NewMutagen()

	_, err := mg.Apply(refSeq, m.Mutation{Type: m.MutationInsertion, Position: 0, Insert: "AXT"})
	if !errors.Is(err, ErrInvalidAlphabet) {
		t.Fatalf("expected ErrInvalidAlphabet, got %v", err)
	}
}

func TestMutagen_Apply_DeletionFromStart(t *testing.T) {
	mg := NewMutagen()

	mutated, err := mg.Apply(refSeq, m.Mutation{Type: m.MutationDeletion, Position: 0, Length: 3})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if mutated != "CGTACGTACGTACGT" {
		t.Fatalf("expected CGTACGTACGTACGT, got %s", mutated)
	}
}

func TestMutagen_Apply_DeletionToExactEnd(t *testing.T) {
	mg := NewMutagen()

	mutated, err := mg.Apply("ATGCGT", m.Mutation{Type: m.MutationDeletion, Position: 3, Length: 3})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if mutated != "ATG" {
		t.Fatalf("expected ATG, got %s", mutated)
	}
}

func TestMutagen_Apply_DeletionBounds(t *testing.T) {
	mg := NewMutagen()

	cases := []struct {
		name     string
		position int
		length   int
	}{
		{"negative position", -1, 1},
		{"position at end", len(refSeq), 1},
		{"zero length", 0, 0},
		{"negative length", 0, -2},
		{"overrun", len(refSeq) - 2, 3},
	}

	for _, tc := range cases {
		_, err := mg.Apply(refSeq, m.Mutation{Type: m.MutationDeletion, Position: tc.position, Length: tc.length})
		if !errors.Is(err, ErrInvalidPosition) {
			t.Fatalf("%s: expected ErrInvalidPosition, got %v", tc.name, err)
		}
	}
}

func TestMutagen_Apply_DeletionOnEmptySequence(t *testing.T) {
	mg := NewMutagen()

	_, err := mg.Apply("", m.Mutation{Type: m.MutationDeletion, Position: 0, Length: 1})
	if !errors.Is(err, ErrInvalidPosition) {
		t.Fatalf("expected ErrInvalidPosition, got %v", err)
	}
}

func TestMutagen_Apply_UnsupportedType(t *testing.T) {
	mg := NewMutagen()

	_, err := mg.Apply(refSeq, m.Mutation{Type: m.MutationType("inversion"), Position: 0})
	if err == nil {
		t.Fatalf("expected error for unsupported mutation type")
	}
}

func TestMutagen_Apply_InsertThenDeleteRoundTrip(t *testing.T) {
	mg := NewMutagen()

	inserted, err := mg.Apply(refSeq, m.Mutation{Type: m.MutationInsertion, Position: 5, Insert: "AT"})
	if err != nil {
		t.Fatalf("insertion failed: %v", err)
	}

	if len(inserted) != len(refSeq)+2 {
		t.Fatalf("expected length %d after insertion, got %d", len(refSeq)+2, len(inserted))
	}

	restored, err := mg.Apply(inserted, m.Mutation{Type: m.MutationDeletion, Position: 5, Length: 2})
	if err != nil {
		t.Fatalf("deletion failed: %v", err)
	}

	if restored != refSeq {
		t.Fatalf("round trip mismatch: expected %s, got %s", refSeq, restored)
	}
}

func TestNotation_Point(t *testing.T) {
	got := Notation(refSeq, m.Mutation{Type: m.MutationPoint, Position: 0, Base: 'T'})
	if got != "A1T" {
		t.Fatalf("expected A1T, got %s", got)
	}
}

func TestNotation_Insertion(t *testing.T) {
	got := Notation(refSeq, m.Mutation{Type: m.MutationInsertion, Position: 5, Insert: "AT"})
	if got != "6insAT" {
		t.Fatalf("expected 6insAT, got %s", got)
	}
}

func TestNotation_Deletion(t *testing.T) {
	got := Notation(refSeq, m.Mutation{Type: m.MutationDeletion, Position: 4, Length: 3})
	if got != "5del3" {
		t.Fatalf("expected 5del3, got %s", got)
	}
}

func TestNotation_OutOfRange(t *testing.T) {
	got := Notation(refSeq, m.Mutation{Type: m.MutationPoint, Position: len(refSeq), Base: 'T'})
	if got != "" {
		t.Fatalf("expected empty notation, got %q", got)
	}
}
