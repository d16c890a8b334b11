package controller

import (
	"bytes"
	"strings"
	"testing"
	"time"

	m "github.com/mouse-blink/helixsleuth/internal/model"
)

func TestTUI_ShowAnalysis_StaticWithoutExplorer(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf, nil)

	if err := tui.ShowAnalysis(sampleAnalysis()); err != nil {
		t.Fatalf("ShowAnalysis() error = %v", err)
	}

	output := buf.String()

	for _, want := range []string{
		"Mutation Explorer",
		"Original",
		"MRTYVR",
		"A1T",
		"LRTYVR",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}

	// No edit hints when nothing can be edited.
	if strings.Contains(output, "←/→") {
		t.Fatalf("static render shows edit keys\noutput:\n%s", output)
	}
}

func TestTUI_ShowAnalysis_BufferFallsBackToStatic(t *testing.T) {
	var buf bytes.Buffer

	calls := 0
	analyze := func(req m.Request) (m.Analysis, error) {
		calls++

		return m.Analysis{Sequence: req.Sequence}, nil
	}

	tui := NewTUI(&buf, analyze)

	// A buffer is not a TTY, so no program starts and analyze is never hit.
	if err := tui.ShowAnalysis(sampleAnalysis()); err != nil {
		t.Fatalf("ShowAnalysis() error = %v", err)
	}

	if calls != 0 {
		t.Fatalf("analyze called %d times during static render", calls)
	}

	if !strings.Contains(buf.String(), "Mutation Explorer") {
		t.Fatalf("output missing title\noutput:\n%s", buf.String())
	}
}

func TestTUI_ShowSequence_PrintsPanel(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf, nil)

	if err := tui.ShowSequence("ATGCGTACGTACGTACGT"); err != nil {
		t.Fatalf("ShowSequence() error = %v", err)
	}

	output := buf.String()

	for _, want := range []string{
		"Random Sequence",
		"Length:",
		"18 nt",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestTUI_ShowReports_Empty(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf, nil)

	if err := tui.ShowReports(nil); err != nil {
		t.Fatalf("ShowReports() error = %v", err)
	}

	if !strings.Contains(buf.String(), "No saved reports") {
		t.Fatalf("output = %q, want empty notice", buf.String())
	}
}

func TestTUI_ShowReports_BufferFallsBackToStatic(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf, nil)

	reports := []m.Report{
		sampleReport("aaaa111", time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)),
	}

	if err := tui.ShowReports(reports); err != nil {
		t.Fatalf("ShowReports() error = %v", err)
	}

	output := buf.String()

	for _, want := range []string{
		"Saved Reports",
		"Reports:",
		"A1T",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestTUI_TerminalSize_NonFileDefaults(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf, nil)

	width, height := tui.terminalSize()

	if width != defaultTUIWidth || height != defaultTUIHeight {
		t.Fatalf("terminalSize() = %dx%d, want defaults", width, height)
	}
}
