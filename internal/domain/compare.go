package domain

import (
	m "github.com/mouse-blink/helixsleuth/internal/model"
)

// Compare counts positional amino-acid changes between the original and
// mutated proteins over the length of the shorter one; positions past the
// shorter length are ignored. The returned Residues histogram covers the
// mutated protein.
func Compare(original, mutated m.Protein) m.Comparison {
	shorter := len(original)
	if len(mutated) < shorter {
		shorter = len(mutated)
	}

	changes := 0

	for i := 0; i < shorter; i++ {
		if original[i] != mutated[i] {
			changes++
		}
	}

	comparison := m.Comparison{
		Changes:  changes,
		Residues: ResidueCounts(mutated),
		Silent:   original == mutated,
	}

	switch {
	case shorter > 0:
		comparison.Similarity = float64(shorter-changes) * 100 / float64(shorter)
	case comparison.Silent:
		comparison.Similarity = 100
	}

	return comparison
}

// ResidueCounts builds the amino-acid frequency histogram of a protein.
// The empty protein yields an empty, non-nil map.
func ResidueCounts(protein m.Protein) map[string]int {
	counts := make(map[string]int)

	for i := 0; i < len(protein); i++ {
		counts[string(protein[i])]++
	}

	return counts
}
