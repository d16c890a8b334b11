package controller

import (
	"bytes"
	"fmt"
	"sort"

	m "github.com/mouse-blink/helixsleuth/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// residueNames maps single-letter amino acids to three-letter display codes.
var residueNames = map[string]string{
	"A": "Ala", "C": "Cys", "D": "Asp", "E": "Glu",
	"F": "Phe", "G": "Gly", "H": "His", "I": "Ile",
	"K": "Lys", "L": "Leu", "M": "Met", "N": "Asn",
	"P": "Pro", "Q": "Gln", "R": "Arg", "S": "Ser",
	"T": "Thr", "V": "Val", "W": "Trp", "Y": "Tyr",
}

func residueName(aa string) string {
	if name, ok := residueNames[aa]; ok {
		return name
	}

	return "Xaa"
}

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// ShowAnalysis prints the analysis as plain text, one block for the
// original sequence and one for the mutation outcome when present.
func (s *SimpleUI) ShowAnalysis(analysis m.Analysis) error {
	s.printf("Sequence (%d nt): %s\n", analysis.Stats.Length, analysis.Sequence)
	s.printf("GC content %.1f%%, entropy %.2f bits\n", analysis.Stats.GCRatio*100, analysis.Stats.Entropy)
	s.printf("Protein (%d aa): %s\n", len(analysis.Protein), analysis.Protein)

	residues := analysis.Residues

	if outcome := analysis.Outcome; outcome != nil {
		s.printf("\nMutation %s (%s)\n", outcome.Notation, outcome.Mutation.Type)
		s.printf("Mutated sequence (%d nt): %s\n", len(outcome.Sequence), outcome.Sequence)
		s.printf("Mutated protein (%d aa): %s\n", len(outcome.Protein), outcome.Protein)

		if outcome.Comparison.Silent {
			s.printf("Silent mutation, protein unchanged\n")
		} else {
			s.printf("Changed positions: %d, similarity %.1f%%\n",
				outcome.Comparison.Changes, outcome.Comparison.Similarity)
		}

		residues = outcome.Comparison.Residues
	}

	s.renderResidueTable(residues)

	return nil
}

// ShowSequence prints the bare sequence, suitable for piping.
func (s *SimpleUI) ShowSequence(seq m.Sequence) error {
	s.printf("%s\n", seq)

	return nil
}

// ShowReports prints one table row per saved report.
func (s *SimpleUI) ShowReports(reports []m.Report) error {
	if len(reports) == 0 {
		s.printf("No saved reports\n")

		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"ID", "Created", "Mutation", "Protein", "Similarity"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
	})

	for _, report := range reports {
		notation := "none"
		protein := report.Analysis.Protein
		similarity := "-"

		if outcome := report.Analysis.Outcome; outcome != nil {
			notation = outcome.Notation
			protein = outcome.Protein
			similarity = fmt.Sprintf("%.1f%%", outcome.Comparison.Similarity)
		}

		table.Append([]string{
			report.ID,
			report.CreatedAt.Format("2006-01-02 15:04"),
			notation,
			string(protein),
			similarity,
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Reports %d", len(reports)),
		"", "", "", "",
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

func (s *SimpleUI) renderResidueTable(residues map[string]int) {
	if len(residues) == 0 {
		return
	}

	aminoAcids := make([]string, 0, len(residues))
	for aa := range residues {
		aminoAcids = append(aminoAcids, aa)
	}

	sort.Strings(aminoAcids)

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Residue", "Name", "Count"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
	})

	total := 0

	for _, aa := range aminoAcids {
		count := residues[aa]
		table.Append([]string{aa, residueName(aa), fmt.Sprintf("%d", count)})

		total += count
	}

	table.SetFooter([]string{"Total", "", fmt.Sprintf("%d", total)})

	table.Render()
	s.printf("\n%s", tableBuffer.String())
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
