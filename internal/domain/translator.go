package domain

import (
	"strings"
	"sync"

	m "github.com/mouse-blink/helixsleuth/internal/model"
)

// Translator converts DNA sequences to proteins under the standard
// genetic code. Translation reads codon by codon from the start, halts
// before the first stop codon and silently discards a trailing partial
// codon. Implementations are safe for concurrent use.
type Translator interface {
	Translate(seq m.Sequence) m.Protein
}

// translator memoizes translations keyed on the exact input sequence.
type translator struct {
	mu   sync.RWMutex
	memo map[m.Sequence]m.Protein
}

// NewTranslator creates a new memoizing Translator instance.
func NewTranslator() Translator {
	return &translator{memo: make(map[m.Sequence]m.Protein)}
}

func (t *translator) Translate(seq m.Sequence) m.Protein {
	t.mu.RLock()
	protein, ok := t.memo[seq]
	t.mu.RUnlock()

	if ok {
		return protein
	}

	protein = translate(seq)

	t.mu.Lock()
	t.memo[seq] = protein
	t.mu.Unlock()

	return protein
}

// translate is the pure translation: no cache, no locking.
func translate(seq m.Sequence) m.Protein {
	var b strings.Builder

	b.Grow(len(seq) / 3)

	for i := 0; i+3 <= len(seq); i += 3 {
		aa := TranslateCodon(string(seq[i : i+3]))
		if aa == '*' {
			break
		}

		b.WriteByte(aa)
	}

	return m.Protein(b.String())
}
