package domain

import (
	"math/rand/v2"

	m "github.com/mouse-blink/helixsleuth/internal/model"
)

var bases = []byte{'A', 'T', 'G', 'C'}

// RandomSequence generates a uniformly random sequence of n bases.
func RandomSequence(n int) m.Sequence {
	if n <= 0 {
		return ""
	}

	seq := make([]byte, n)
	for i := range seq {
		seq[i] = bases[rand.IntN(len(bases))]
	}

	return m.Sequence(seq)
}

// RandomSequenceInRange generates a random sequence whose length is drawn
// uniformly from [minLength, maxLength].
func RandomSequenceInRange(minLength, maxLength int) m.Sequence {
	if maxLength < minLength {
		minLength, maxLength = maxLength, minLength
	}

	if maxLength <= 0 {
		return ""
	}

	if minLength < 1 {
		minLength = 1
	}

	return RandomSequence(minLength + rand.IntN(maxLength-minLength+1))
}
