package controller

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/helixsleuth/internal/model"
)

// exploreBases is the cycle order for the base key.
var exploreBases = []byte{'A', 'T', 'G', 'C'}

// baseStyles colors each base the way alignment viewers do.
var baseStyles = map[byte]lipgloss.Style{
	'A': lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	'T': lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	'G': lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	'C': lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
}

// Edit site highlights, one per effect on the sequence.
var (
	changedSiteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("3")).Bold(true)
	removedSiteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("1")).Bold(true)
	addedSiteStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("2")).Bold(true)
)

func baseStyle(b byte) lipgloss.Style {
	if style, ok := baseStyles[b]; ok {
		return style
	}

	return lipgloss.NewStyle()
}

// span marks the edited range of a sequence. A zero length marks a bare
// edit point, rendered without highlight.
type span struct {
	start  int
	length int
}

// originalSpan is the range the mutation touches on the original sequence.
func originalSpan(mutation m.Mutation) span {
	switch mutation.Type {
	case m.MutationDeletion:
		return span{start: mutation.Position, length: mutation.Length}
	case m.MutationInsertion:
		return span{start: mutation.Position}
	default:
		return span{start: mutation.Position, length: 1}
	}
}

// mutatedSpan is the range the mutation produced on the mutated sequence.
func mutatedSpan(mutation m.Mutation) span {
	switch mutation.Type {
	case m.MutationDeletion:
		return span{start: mutation.Position}
	case m.MutationInsertion:
		return span{start: mutation.Position, length: len(mutation.Insert)}
	default:
		return span{start: mutation.Position, length: 1}
	}
}

func siteStyle(t m.MutationType) lipgloss.Style {
	switch t {
	case m.MutationDeletion:
		return removedSiteStyle
	case m.MutationInsertion:
		return addedSiteStyle
	default:
		return changedSiteStyle
	}
}

// exploreModel is the interactive mutation explorer. Every edit key
// adjusts the pending mutation and recomputes the analysis in place.
type exploreModel struct {
	width    int
	height   int
	analyze  AnalyzeFunc
	analysis m.Analysis
	mutation m.Mutation
	editable bool
	applyErr string
	gauge    progress.Model
}

func newExploreModel(analysis m.Analysis, analyze AnalyzeFunc) exploreModel {
	gauge := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	mutation := m.Mutation{Type: m.MutationPoint, Base: 'A'}
	if analysis.Outcome != nil {
		mutation = analysis.Outcome.Mutation
	}

	return exploreModel{
		width:    80,
		height:   24,
		analyze:  analyze,
		analysis: analysis,
		mutation: mutation,
		editable: analyze != nil,
		gauge:    gauge,
	}
}

func (e exploreModel) Init() tea.Cmd {
	return nil
}

func (e exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		e.width = msg.Width
		e.height = msg.Height

	case tea.KeyMsg:
		return e.handleKey(msg)
	}

	return e, nil
}

func (e exploreModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return e, tea.Quit
	}

	if !e.editable {
		return e, nil
	}

	mutation := e.mutation

	switch msg.String() {
	case "left", "h":
		mutation.Position--
	case "right", "l":
		mutation.Position++
	case "t":
		mutation.Type = nextMutationType(mutation.Type)
	case "b":
		mutation.Base = nextBase(mutation.Base)
	case "+", "=":
		switch mutation.Type {
		case m.MutationDeletion:
			mutation.Length++
		case m.MutationInsertion:
			mutation.Insert += "A"
		}
	case "-", "_":
		switch mutation.Type {
		case m.MutationDeletion:
			mutation.Length--
		case m.MutationInsertion:
			if len(mutation.Insert) > 1 {
				mutation.Insert = mutation.Insert[:len(mutation.Insert)-1]
			}
		}
	default:
		return e, nil
	}

	return e.applyEdit(mutation), nil
}

// applyEdit clamps the edited mutation to the sequence and recomputes the
// analysis. On an analysis error the previous outcome stays on screen with
// the error shown inline.
func (e exploreModel) applyEdit(mutation m.Mutation) exploreModel {
	mutation = clampMutation(mutation, len(e.analysis.Sequence))

	analysis, err := e.analyze(m.Request{
		Sequence: e.analysis.Sequence,
		Mutation: &mutation,
	})
	if err != nil {
		e.applyErr = err.Error()
		e.mutation = mutation

		return e
	}

	e.applyErr = ""
	e.analysis = analysis
	e.mutation = mutation

	return e
}

func clampMutation(mutation m.Mutation, seqLen int) m.Mutation {
	switch mutation.Type {
	case m.MutationInsertion:
		mutation.Position = clampInt(mutation.Position, 0, seqLen)

		if len(mutation.Insert) == 0 {
			mutation.Insert = "A"
		}
	case m.MutationDeletion:
		mutation.Position = clampInt(mutation.Position, 0, max(seqLen-1, 0))
		mutation.Length = clampInt(mutation.Length, 1, max(seqLen-mutation.Position, 1))
	default:
		mutation.Position = clampInt(mutation.Position, 0, max(seqLen-1, 0))

		if !isExploreBase(mutation.Base) {
			mutation.Base = 'A'
		}
	}

	return mutation
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}

func nextMutationType(t m.MutationType) m.MutationType {
	switch t {
	case m.MutationPoint:
		return m.MutationInsertion
	case m.MutationInsertion:
		return m.MutationDeletion
	default:
		return m.MutationPoint
	}
}

func nextBase(b byte) byte {
	for i, base := range exploreBases {
		if base == b {
			return exploreBases[(i+1)%len(exploreBases)]
		}
	}

	return exploreBases[0]
}

func isExploreBase(b byte) bool {
	for _, base := range exploreBases {
		if base == b {
			return true
		}
	}

	return false
}

func (e exploreModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6")) // Cyan

	title := titleStyle.Render("🧬 Helixsleuth Mutation Explorer")

	summary := summaryStyle.Render(fmt.Sprintf(
		"Length: %s   GC: %s   Entropy: %s",
		accentStyle.Render(fmt.Sprintf("%d nt", e.analysis.Stats.Length)),
		accentStyle.Render(fmt.Sprintf("%.1f%%", e.analysis.Stats.GCRatio*100)),
		accentStyle.Render(fmt.Sprintf("%.2f bits", e.analysis.Stats.Entropy)),
	))

	sections := []string{title, summary, e.renderOriginal()}

	if e.analysis.Outcome != nil {
		sections = append(sections, e.renderOutcome())
	}

	if e.applyErr != "" {
		errStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("1")).
			Padding(0, 0, 0, 2)

		sections = append(sections, errStyle.Render("✗ "+e.applyErr))
	}

	if footer := e.renderFooter(); footer != "" {
		sections = append(sections, footer)
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (e exploreModel) renderOriginal() string {
	boxWidth := e.boxWidth()

	var sp span
	if e.editable || e.analysis.Outcome != nil {
		sp = originalSpan(e.mutation)
	}

	lines := []string{
		e.renderBoxHeader("Original", boxWidth),
		renderSequenceLine(e.analysis.Sequence, sp, boxWidth, siteStyle(e.mutation.Type)),
		renderProteinLine(e.analysis.Protein, boxWidth),
	}

	return e.renderBox(lines)
}

func (e exploreModel) renderOutcome() string {
	outcome := e.analysis.Outcome
	boxWidth := e.boxWidth()

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	header := fmt.Sprintf("Mutation %s (%s)", outcome.Notation, outcome.Mutation.Type)

	var verdict string
	if outcome.Comparison.Silent {
		silentStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("2")).
			Bold(true).
			Padding(0, 1)

		verdict = silentStyle.Render("SILENT") + dimStyle.Render("  protein unchanged")
	} else {
		verdict = fmt.Sprintf("%s positions changed, similarity %s",
			accentStyle.Render(fmt.Sprintf("%d", outcome.Comparison.Changes)),
			accentStyle.Render(fmt.Sprintf("%.1f%%", outcome.Comparison.Similarity)),
		)
	}

	gauge := e.gauge.ViewAs(outcome.Comparison.Similarity / 100)

	lines := []string{
		e.renderBoxHeader(header, boxWidth),
		renderSequenceLine(outcome.Sequence, mutatedSpan(outcome.Mutation), boxWidth, siteStyle(outcome.Mutation.Type)),
		renderProteinLine(outcome.Protein, boxWidth),
		verdict,
		gauge,
	}

	if composition := renderComposition(outcome.Comparison.Residues, boxWidth); composition != "" {
		lines = append(lines, composition)
	}

	return e.renderBox(lines)
}

func (e exploreModel) renderBoxHeader(text string, boxWidth int) string {
	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(boxWidth)

	return headerStyle.Render(text)
}

func (e exploreModel) renderBox(lines []string) string {
	container := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return container.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (e exploreModel) renderFooter() string {
	if !e.editable {
		return ""
	}

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(e.width)

	return footerStyle.Render("←/→ position • t type • b base • +/- length • q quit")
}

// boxWidth leaves room for the border, padding and margins.
func (e exploreModel) boxWidth() int {
	boxWidth := e.width - 6
	if boxWidth < 20 {
		boxWidth = 20
	}

	return boxWidth
}

// renderSequenceLine windows the sequence around the edited span and
// highlights it. Ellipses mark bases cut off on either side.
func renderSequenceLine(seq m.Sequence, sp span, width int, highlight lipgloss.Style) string {
	if len(seq) == 0 {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render("(empty)")
	}

	window := width - 2
	if window < 4 {
		window = 4
	}

	start := 0
	if len(seq) > window {
		start = clampInt(sp.start-window/2, 0, len(seq)-window)
	}

	end := start + window
	if end > len(seq) {
		end = len(seq)
	}

	var b strings.Builder

	if start > 0 {
		b.WriteString("…")
	}

	for i := start; i < end; i++ {
		ch := string(seq[i])
		if i >= sp.start && i < sp.start+sp.length {
			b.WriteString(highlight.Render(ch))
		} else {
			b.WriteString(baseStyle(seq[i]).Render(ch))
		}
	}

	if end < len(seq) {
		b.WriteString("…")
	}

	return b.String()
}

// wrapSequence renders the whole sequence colored, wrapped to width.
func wrapSequence(seq m.Sequence, width int) string {
	if len(seq) == 0 {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render("(empty)")
	}

	if width < 4 {
		width = 4
	}

	var lines []string

	var b strings.Builder

	for i := 0; i < len(seq); i++ {
		b.WriteString(baseStyle(seq[i]).Render(string(seq[i])))

		if (i+1)%width == 0 {
			lines = append(lines, b.String())
			b.Reset()
		}
	}

	if b.Len() > 0 {
		lines = append(lines, b.String())
	}

	return strings.Join(lines, "\n")
}

func renderProteinLine(protein m.Protein, width int) string {
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	if len(protein) == 0 {
		return labelStyle.Render("protein ") +
			lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render("(none)")
	}

	return labelStyle.Render("protein ") + truncateToWidth(string(protein), width-8)
}

// renderComposition draws one bar per residue of the mutated protein.
func renderComposition(residues map[string]int, width int) string {
	if len(residues) == 0 {
		return ""
	}

	aminoAcids := make([]string, 0, len(residues))
	maxCount := 0

	for aa, count := range residues {
		aminoAcids = append(aminoAcids, aa)

		if count > maxCount {
			maxCount = count
		}
	}

	sort.Strings(aminoAcids)

	barWidth := width - 8
	if barWidth < 4 {
		barWidth = 4
	}

	barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	lines := make([]string, 0, len(aminoAcids)+1)
	lines = append(lines, dimStyle.Render("composition"))

	for _, aa := range aminoAcids {
		count := residues[aa]

		bar := strings.Repeat("█", max(barWidth*count/maxCount, 1))
		lines = append(lines, fmt.Sprintf("%s %3d %s", aa, count, barStyle.Render(bar)))
	}

	return strings.Join(lines, "\n")
}
