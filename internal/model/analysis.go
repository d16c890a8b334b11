package model

// Request describes one analysis: a sequence and an optional mutation.
// A nil Mutation asks for translation and statistics only.
type Request struct {
	Sequence Sequence
	Mutation *Mutation
}

// Comparison is the result of comparing the original and mutated proteins.
type Comparison struct {
	// Changes counts positions that differ over the shorter protein.
	Changes int
	// Residues maps each amino acid of the mutated protein to its count.
	Residues map[string]int
	// Similarity is the percentage of matching positions over the
	// compared prefix, 100 when both proteins are empty.
	Similarity float64
	// Silent is true when both proteins are identical.
	Silent bool
}

// MutationOutcome holds everything derived from an applied mutation.
type MutationOutcome struct {
	Mutation   Mutation
	Notation   string // compact label, e.g. G12T, 5insAT, 5del3
	Sequence   Sequence
	Protein    Protein
	Comparison Comparison
}

// Analysis is the full result for one request. Outcome is nil when no
// mutation was requested, which is the explicit "no mutation computed"
// state rather than a zero-valued comparison.
type Analysis struct {
	Sequence Sequence
	Protein  Protein
	Stats    SequenceStats
	// Residues maps each amino acid of the original protein to its count.
	Residues map[string]int
	Outcome  *MutationOutcome
}
