package controller

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/helixsleuth/internal/model"
)

const detailHeight = 10

// Simple delegate for report list items.
type reportDelegate struct {
	offset int
}

func (d reportDelegate) Height() int  { return 1 }
func (d reportDelegate) Spacing() int { return 0 }
func (d reportDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d reportDelegate) Render(w io.Writer, l list.Model, index int, item list.Item) {
	entry, ok := item.(reportItem)
	if !ok {
		return
	}

	report := entry.report

	notation := "none"
	similarity := "     -"

	if outcome := report.Analysis.Outcome; outcome != nil {
		notation = outcome.Notation
		similarity = fmt.Sprintf("%5.1f%%", outcome.Comparison.Similarity)
	}

	created := report.CreatedAt.Format("2006-01-02 15:04")
	sequence := string(report.Analysis.Sequence)

	isSelected := index == l.Index()

	var notationStyle, rowStyle lipgloss.Style

	var displaySeq string

	// Subtract notation (10), created (16), similarity (6) and spacing (6)
	width := l.Width() - 38

	if isSelected {
		notationStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6"))

		displaySeq = animateScroll(sequence, width, d.offset)
	} else {
		notationStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true)
		rowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

		displaySeq = truncateToWidth(sequence, width)
	}

	line := fmt.Sprintf("%s  %s",
		notationStyle.Render(fmt.Sprintf("%-10s", notation)),
		rowStyle.Render(fmt.Sprintf("%16s  %s  %s", created, similarity, displaySeq)),
	)
	_, _ = fmt.Fprint(w, line)
}

func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	textWidth := lipgloss.Width(text)
	if textWidth <= width {
		return text
	}

	// Gap between repeats
	gap := "   "

	// Initial pause before scrolling starts (in ticks)
	pause := 5

	if offset < pause {
		return truncateToWidth(text, width)
	}

	effectiveStep := offset - pause

	runes := []rune(text + gap)
	n := len(runes)

	if n == 0 {
		return ""
	}

	start := effectiveStep % n

	res := make([]rune, 0, width)
	for i := range width {
		idx := (start + i) % n
		res = append(res, runes[idx])
	}

	return string(res)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// viewModel browses saved reports, newest first, with a toggleable
// detail box for the selected report.
type viewModel struct {
	width        int
	height       int
	reportList   list.Model
	delegate     reportDelegate
	reports      []m.Report
	showDetail   bool
	animOffset   int
	lastSelected int
}

func newViewModel(reports []m.Report) viewModel {
	delegate := reportDelegate{}

	items := make([]list.Item, 0, len(reports))
	for _, report := range reports {
		items = append(items, reportItem{report: report})
	}

	reportList := list.New(items, delegate, 80, 20)
	reportList.SetShowPagination(false)
	reportList.SetShowFilter(true)
	reportList.SetShowHelp(false)
	reportList.SetShowTitle(false)
	reportList.SetShowStatusBar(false)
	reportList.FilterInput.Placeholder = "Filter by notation or sequence…"

	lastSelected := -1
	if len(items) > 0 {
		lastSelected = 0
	}

	return viewModel{
		width:        80,
		height:       24,
		reportList:   reportList,
		delegate:     delegate,
		reports:      reports,
		lastSelected: lastSelected,
	}
}

func (v viewModel) Init() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (v viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.reportList.SetWidth(v.width)

	case tickMsg:
		if v.reportList.FilterState() != list.Filtering {
			v.animOffset++
			v.delegate.offset = v.animOffset
			v.reportList.SetDelegate(v.delegate)

			return v, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
				return tickMsg(t)
			})
		}

		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return v, tea.Quit
		case "enter", " ":
			if v.reportList.FilterState() != list.Filtering {
				v.showDetail = !v.showDetail

				return v, nil
			}
		}

		// Pass all other key events to the list
		var newList list.Model

		newList, cmd = v.reportList.Update(msg)
		v.reportList = newList

		// Detect selection change to reset animation
		if v.reportList.Index() != v.lastSelected {
			v.lastSelected = v.reportList.Index()
			v.animOffset = 0
			v.delegate.offset = 0
			v.reportList.SetDelegate(v.delegate)
		}

		return v, cmd
	}

	return v, cmd
}

func (v viewModel) View() string {
	if len(v.reports) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Padding(1, 2)

		return emptyStyle.Render("No saved reports") + "\n"
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6")) // Cyan

	title := titleStyle.Render("🧬 Helixsleuth Saved Reports")

	silent := 0

	for _, report := range v.reports {
		if report.Analysis.Outcome != nil && report.Analysis.Outcome.Comparison.Silent {
			silent++
		}
	}

	summary := summaryStyle.Render(fmt.Sprintf(
		"Reports: %s   Silent: %s",
		accentStyle.Render(fmt.Sprintf("%d", len(v.reports))),
		accentStyle.Render(fmt.Sprintf("%d", silent)),
	))

	sections := []string{title, summary, v.renderTable()}

	if v.showDetail {
		if detail := v.renderDetail(); detail != "" {
			sections = append(sections, detail)
		}
	}

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(v.width)

	footer := footerStyle.Render("↑/k up • ↓/j down • / filter • enter details • q quit")

	sections = append(sections, footer)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v viewModel) renderTable() string {
	// Screen height minus title (2), summary (2), footer (1), border (2)
	// and headers (2) leaves the list height.
	listHeight := v.height - 9
	if v.showDetail {
		listHeight -= detailHeight
	}

	if listHeight < 5 {
		listHeight = 5
	}

	listWidth := v.width - 6

	v.reportList.SetHeight(listHeight)
	v.reportList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%-10s  %16s  %6s  %s", "Mutation", "Created", "Simil.", "Sequence"))

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1). // Outer margin
		Padding(0, 1) // Inner padding

	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			v.reportList.View(),
		),
	)
}

func (v viewModel) renderDetail() string {
	report := v.selectedReport()
	if report == nil {
		return ""
	}

	boxWidth := v.width - 6
	if boxWidth < 20 {
		boxWidth = 20
	}

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(boxWidth)

	header := headerStyle.Render(fmt.Sprintf("Report %s  %s",
		report.ID, report.CreatedAt.Format("2006-01-02 15:04")))

	lines := []string{
		header,
		labelStyle.Render("sequence ") + truncateToWidth(string(report.Analysis.Sequence), boxWidth-9),
		renderProteinLine(report.Analysis.Protein, boxWidth),
		dimStyle.Render(fmt.Sprintf("%d nt, GC %.1f%%, entropy %.2f bits",
			report.Analysis.Stats.Length,
			report.Analysis.Stats.GCRatio*100,
			report.Analysis.Stats.Entropy)),
	}

	if outcome := report.Analysis.Outcome; outcome != nil {
		lines = append(lines,
			labelStyle.Render("mutated  ")+truncateToWidth(string(outcome.Sequence), boxWidth-9),
			renderProteinLine(outcome.Protein, boxWidth),
		)

		if outcome.Comparison.Silent {
			lines = append(lines, dimStyle.Render("silent, protein unchanged"))
		} else {
			lines = append(lines, dimStyle.Render(fmt.Sprintf("%d positions changed, similarity %.1f%%",
				outcome.Comparison.Changes, outcome.Comparison.Similarity)))
		}

		if residues := renderResidueSummary(outcome.Comparison.Residues); residues != "" {
			lines = append(lines, dimStyle.Render(residues))
		}
	}

	container := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return container.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (v viewModel) selectedReport() *m.Report {
	entry, ok := v.reportList.SelectedItem().(reportItem)
	if !ok {
		return nil
	}

	return &entry.report
}

func renderResidueSummary(residues map[string]int) string {
	if len(residues) == 0 {
		return ""
	}

	aminoAcids := make([]string, 0, len(residues))
	for aa := range residues {
		aminoAcids = append(aminoAcids, aa)
	}

	sort.Strings(aminoAcids)

	parts := make([]string, 0, len(aminoAcids))
	for _, aa := range aminoAcids {
		parts = append(parts, fmt.Sprintf("%s %d", aa, residues[aa]))
	}

	return "residues  " + strings.Join(parts, "  ")
}
