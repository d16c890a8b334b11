// Package model defines the data structures for mutation analysis.
package model

// Path represents a file system path.
type Path string

// Sequence is a DNA sequence in canonical form: uppercase A, T, G, C only.
// Normalization happens once at the workflow boundary; everything below it
// assumes canonical input.
type Sequence string

// Protein is an amino-acid sequence in single-letter code, stop excluded.
type Protein string

// SequenceStats holds summary statistics for a DNA sequence.
type SequenceStats struct {
	Length  int
	GCRatio float64 // fraction of G and C bases, 0 for the empty sequence
	Entropy float64 // Shannon entropy of the base distribution, in bits
}
