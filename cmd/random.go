package cmd

import (
	"github.com/mouse-blink/helixsleuth/internal/domain"
	"github.com/spf13/cobra"
)

var randomLengthFlag int

// randomCmd represents the random command.
var randomCmd = newRandomCmd()

func newRandomCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate a random DNA sequence",
		Long: `Generate a uniform random DNA sequence. Without --length the length is
drawn from the configured range. The bare sequence prints to stdout, so
it pipes straight back into an analysis:

  helixsleuth $(helixsleuth random) --type point --pos 3 --base T`,
		Args: cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Random(domain.RandomArgs{
				Length:    randomLengthFlag,
				MinLength: cfg.Sequence.RandomMin,
				MaxLength: cfg.Sequence.RandomMax,
			})
		},
	}
	cmd.Flags().IntVarP(&randomLengthFlag, "length", "l", 0, "exact sequence length; 0 draws from the configured range")

	return cmd
}

func init() {
	rootCmd.AddCommand(randomCmd)
}
