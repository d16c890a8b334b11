package domain

import (
	"math"

	m "github.com/mouse-blink/helixsleuth/internal/model"
)

// Stats computes summary statistics for a canonical sequence.
func Stats(seq m.Sequence) m.SequenceStats {
	return m.SequenceStats{
		Length:  len(seq),
		GCRatio: GCRatio(seq),
		Entropy: ShannonEntropy(seq),
	}
}

// GCRatio returns the fraction of G and C bases, 0 for the empty sequence.
func GCRatio(seq m.Sequence) float64 {
	if len(seq) == 0 {
		return 0
	}

	gc := 0

	for i := 0; i < len(seq); i++ {
		if seq[i] == 'G' || seq[i] == 'C' {
			gc++
		}
	}

	return float64(gc) / float64(len(seq))
}

// ShannonEntropy returns the Shannon entropy of the base distribution in
// bits. Uniform use of all four bases approaches 2.0; a single repeated
// base gives 0.
func ShannonEntropy(seq m.Sequence) float64 {
	if len(seq) == 0 {
		return 0
	}

	var freq [256]int

	for i := 0; i < len(seq); i++ {
		freq[seq[i]]++
	}

	entropy := 0.0
	total := float64(len(seq))

	for _, count := range freq {
		if count == 0 {
			continue
		}

		p := float64(count) / total
		entropy -= p * math.Log2(p)
	}

	return entropy
}
