package domain

import (
	"fmt"
	"time"

	"github.com/mouse-blink/helixsleuth/internal/adapter"
	"github.com/mouse-blink/helixsleuth/internal/controller"
	m "github.com/mouse-blink/helixsleuth/internal/model"
)

// Workflow defines the interface for sequence analysis operations.
type Workflow interface {
	Analyze(args AnalyzeArgs) error
	Random(args RandomArgs) error
	View(args ViewArgs) error
}

// AnalyzeArgs carries one analysis request as it arrives from the CLI.
type AnalyzeArgs struct {
	Raw      string
	Mutation *m.Mutation
	Save     bool
	Reports  m.Path
}

// RandomArgs controls random sequence generation. A positive Length wins
// over the MinLength/MaxLength range.
type RandomArgs struct {
	Length    int
	MinLength int
	MaxLength int
}

// ViewArgs selects the report directory to browse or clean.
type ViewArgs struct {
	Reports m.Path
	Clean   bool
}

type workflow struct {
	analyzer    Analyzer
	store       adapter.ReportStore
	ui          controller.UI
	maxSequence int
}

// NewWorkflow creates a new Workflow instance with the provided collaborators.
// maxSequence bounds the accepted sequence length; zero disables the bound.
func NewWorkflow(analyzer Analyzer, store adapter.ReportStore, ui controller.UI, maxSequence int) Workflow {
	return &workflow{
		analyzer:    analyzer,
		store:       store,
		ui:          ui,
		maxSequence: maxSequence,
	}
}

// Analyze normalizes and bounds the raw input, runs the analysis and renders
// it. When the mutation fails on a valid sequence the original-side panels
// are still rendered before the error is returned.
func (w *workflow) Analyze(args AnalyzeArgs) error {
	seq := Normalize(args.Raw)
	if w.maxSequence > 0 && len(seq) > w.maxSequence {
		return fmt.Errorf("sequence is %d bases, limit is %d: %w", len(seq), w.maxSequence, ErrSequenceTooLong)
	}

	analysis, err := w.analyzer.Analyze(m.Request{
		Sequence: m.Sequence(seq),
		Mutation: args.Mutation,
	})
	if err != nil {
		// Residues is non-nil once the original sequence validated.
		if analysis.Residues != nil {
			_ = w.ui.ShowAnalysis(analysis)
		}

		return err
	}

	if args.Save {
		report := m.Report{
			CreatedAt: time.Now().UTC(),
			Analysis:  analysis,
		}

		if _, err := w.store.SaveReport(args.Reports, report); err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}
	}

	return w.ui.ShowAnalysis(analysis)
}

// Random generates a sequence of the requested or configured length and
// renders it.
func (w *workflow) Random(args RandomArgs) error {
	if args.Length > 0 {
		if w.maxSequence > 0 && args.Length > w.maxSequence {
			return fmt.Errorf("sequence is %d bases, limit is %d: %w", args.Length, w.maxSequence, ErrSequenceTooLong)
		}

		return w.ui.ShowSequence(RandomSequence(args.Length))
	}

	return w.ui.ShowSequence(RandomSequenceInRange(args.MinLength, args.MaxLength))
}

// View loads saved reports and renders them, or removes them when Clean is
// set.
func (w *workflow) View(args ViewArgs) error {
	if args.Clean {
		if err := w.store.Clean(args.Reports); err != nil {
			return fmt.Errorf("failed to clean reports: %w", err)
		}

		return nil
	}

	reports, err := w.store.LoadReports(args.Reports)
	if err != nil {
		return fmt.Errorf("failed to load reports: %w", err)
	}

	return w.ui.ShowReports(reports)
}
