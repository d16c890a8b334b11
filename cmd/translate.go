package cmd

import (
	"github.com/mouse-blink/helixsleuth/internal/domain"
	"github.com/spf13/cobra"
)

// translateCmd represents the translate command.
var translateCmd = newTranslateCmd()

func newTranslateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translate [sequence]",
		Short: "Translate a sequence without mutating it",
		Long: `Validate a DNA sequence and translate it under the standard genetic
code. Translation stops before the first stop codon and a trailing
partial codon is ignored. The report shows the protein, sequence
statistics and the residue composition.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Analyze(domain.AnalyzeArgs{Raw: sequenceArg(args)})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(translateCmd)
}
