// Package controller provides output front ends for rendering sequence analyses.
package controller

import (
	m "github.com/mouse-blink/helixsleuth/internal/model"
)

// AnalyzeFunc runs one analysis request. The interactive explorer calls it
// to recompute the outcome while the user edits the mutation.
type AnalyzeFunc func(req m.Request) (m.Analysis, error)

// UIOption is a functional option for NewUI.
type UIOption func(*UIConfig)

// UIConfig holds optional collaborators for a UI.
type UIConfig struct {
	analyze AnalyzeFunc
}

// WithExplorer provides the analysis function that powers the interactive
// mutation explorer. Without it the TUI renders analyses statically.
func WithExplorer(analyze AnalyzeFunc) UIOption {
	return func(c *UIConfig) {
		c.analyze = analyze
	}
}

// UI defines the interface for rendering analyses, sequences and saved
// reports. Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	ShowAnalysis(analysis m.Analysis) error
	ShowSequence(seq m.Sequence) error
	ShowReports(reports []m.Report) error
}
