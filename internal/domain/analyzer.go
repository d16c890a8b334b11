package domain

import (
	m "github.com/mouse-blink/helixsleuth/internal/model"
)

// Analyzer runs one analysis request end to end: validate the sequence,
// translate it, and when a mutation is requested apply it, translate the
// result and compare the proteins.
type Analyzer interface {
	Analyze(req m.Request) (m.Analysis, error)
}

type analyzer struct {
	translator Translator
	mutagen    Mutagen
}

// NewAnalyzer constructs an Analyzer with its own translator cache.
func NewAnalyzer() Analyzer {
	return &analyzer{
		translator: NewTranslator(),
		mutagen:    NewMutagen(),
	}
}

// Analyze fills the original-side fields before touching the mutation, so
// a failed mutation still returns a displayable analysis alongside the
// error.
func (a *analyzer) Analyze(req m.Request) (m.Analysis, error) {
	if err := ValidateSequence(req.Sequence); err != nil {
		return m.Analysis{}, err
	}

	protein := a.translator.Translate(req.Sequence)
	analysis := m.Analysis{
		Sequence: req.Sequence,
		Protein:  protein,
		Stats:    Stats(req.Sequence),
		Residues: ResidueCounts(protein),
	}

	if req.Mutation == nil {
		return analysis, nil
	}

	mutated, err := a.mutagen.Apply(req.Sequence, *req.Mutation)
	if err != nil {
		return analysis, err
	}

	mutatedProtein := a.translator.Translate(mutated)
	analysis.Outcome = &m.MutationOutcome{
		Mutation:   *req.Mutation,
		Notation:   Notation(req.Sequence, *req.Mutation),
		Sequence:   mutated,
		Protein:    mutatedProtein,
		Comparison: Compare(protein, mutatedProtein),
	}

	return analysis, nil
}
