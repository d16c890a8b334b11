package controller

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/helixsleuth/internal/model"
	"golang.org/x/term"
)

const (
	defaultTUIWidth  = 80
	defaultTUIHeight = 24
)

// TUI implements UI using Bubble Tea for interactive display. When the
// output is not a terminal the models render once and print, which also
// keeps the type testable against a buffer.
type TUI struct {
	output  io.Writer
	analyze AnalyzeFunc
}

// NewTUI creates a new TUI writing to output. analyze powers the mutation
// explorer and may be nil, in which case analyses render statically.
func NewTUI(output io.Writer, analyze AnalyzeFunc) *TUI {
	return &TUI{output: output, analyze: analyze}
}

// ShowAnalysis opens the interactive mutation explorer, or prints the
// rendered analysis when interaction is not possible.
func (t *TUI) ShowAnalysis(analysis m.Analysis) error {
	if t.analyze == nil || !IsTTY(t.output) {
		model := newExploreModel(analysis, nil)
		model.width, model.height = t.terminalSize()

		_, err := fmt.Fprintln(t.output, model.View())

		return err
	}

	model := newExploreModel(analysis, t.analyze)

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run mutation explorer: %w", err)
	}

	return nil
}

// ShowSequence prints the generated sequence in a bordered panel, wrapped
// to the terminal width.
func (t *TUI) ShowSequence(seq m.Sequence) error {
	width, _ := t.terminalSize()

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6")) // Cyan

	container := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	boxWidth := width - 6
	if boxWidth < 20 {
		boxWidth = 20
	}

	view := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("🧬 Helixsleuth Random Sequence"),
		summaryStyle.Render(fmt.Sprintf("Length: %s",
			accentStyle.Render(fmt.Sprintf("%d nt", len(seq))))),
		container.Render(wrapSequence(seq, boxWidth)),
	)

	_, err := fmt.Fprintln(t.output, view)

	return err
}

// ShowReports opens the report browser, or prints the rendered report
// table when interaction is not possible.
func (t *TUI) ShowReports(reports []m.Report) error {
	if len(reports) == 0 || !IsTTY(t.output) {
		model := newViewModel(reports)
		model.width, model.height = t.terminalSize()

		_, err := fmt.Fprintln(t.output, model.View())

		return err
	}

	program := tea.NewProgram(newViewModel(reports), tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run report browser: %w", err)
	}

	return nil
}

func (t *TUI) terminalSize() (int, int) {
	file, ok := t.output.(*os.File)
	if !ok {
		return defaultTUIWidth, defaultTUIHeight
	}

	width, height, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return defaultTUIWidth, defaultTUIHeight
	}

	return width, height
}
