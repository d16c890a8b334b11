// Package cmd provides the root command and CLI setup for helixsleuth.
package cmd

import (
	"fmt"
	"os"

	"github.com/mouse-blink/helixsleuth/config"
	"github.com/mouse-blink/helixsleuth/internal/adapter"
	"github.com/mouse-blink/helixsleuth/internal/controller"
	"github.com/mouse-blink/helixsleuth/internal/domain"
	m "github.com/mouse-blink/helixsleuth/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// defaultSequence is analyzed when no sequence argument is given.
const defaultSequence = "ATGCGTACGTACGTACGT"

var cfg config.Config
var analyzer domain.Analyzer
var reportStore adapter.ReportStore
var workflow domain.Workflow
var ui controller.UI

func init() {
	if err := config.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	var err error
	if cfg, err = config.NewConfig(); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	analyzer = domain.NewAnalyzer()
	reportStore = adapter.NewReportStore()

	useTTY := cfg.UI.Interactive && controller.IsTTY(os.Stdout)
	ui = controller.NewUI(rootCmd, useTTY, controller.WithExplorer(analyzer.Analyze))

	workflow = domain.NewWorkflow(analyzer, reportStore, ui, cfg.Sequence.MaxLength)
}

var mutationTypeFlag string
var positionFlag int
var baseFlag string
var insertFlag string
var delLengthFlag int
var saveFlag bool
var reportsDirFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "helixsleuth [sequence]",
		Short: "DNA mutation simulator",
		Long: `Helixsleuth applies a mutation to a DNA sequence and reports what the
edit does to the encoded protein: both translations, the changed
residues, the similarity between them and the residue composition.

Without --type the sequence is translated as is. On a terminal the
analysis opens an interactive explorer; piped output renders plain text.

Examples:
  helixsleuth ATGCGTACGTACGT --type point --pos 3 --base T
  helixsleuth --type insertion --pos 6 --insert AT --save
  helixsleuth --type deletion --pos 2 --del-length 3`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			mutation, err := parseMutationFlags()
			if err != nil {
				return err
			}

			return workflow.Analyze(domain.AnalyzeArgs{
				Raw:      sequenceArg(args),
				Mutation: mutation,
				Save:     saveFlag,
				Reports:  m.Path(viper.GetString("reports")),
			})
		},
	}

	cmd.PersistentFlags().StringVarP(&reportsDirFlag, "reports", "r", ".helixsleuth", "directory for saved reports")
	viper.BindPFlag("reports", cmd.PersistentFlags().Lookup("reports"))

	cmd.Flags().StringVarP(&mutationTypeFlag, "type", "t", "", "mutation to apply: point, insertion or deletion")
	cmd.Flags().IntVarP(&positionFlag, "pos", "p", 0, "mutation position, zero based")
	cmd.Flags().StringVarP(&baseFlag, "base", "b", "A", "replacement base for a point mutation")
	cmd.Flags().StringVarP(&insertFlag, "insert", "i", "AT", "bases to insert for an insertion")
	cmd.Flags().IntVarP(&delLengthFlag, "del-length", "n", 1, "number of bases to remove for a deletion")
	cmd.Flags().BoolVarP(&saveFlag, "save", "S", false, "save the analysis to the reports directory")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// sequenceArg returns the positional sequence or the built-in example.
func sequenceArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}

	return defaultSequence
}

// parseMutationFlags builds the requested mutation from the command line.
// An empty --type means no mutation.
func parseMutationFlags() (*m.Mutation, error) {
	if mutationTypeFlag == "" {
		return nil, nil
	}

	mutation := &m.Mutation{Position: positionFlag}

	switch m.MutationType(mutationTypeFlag) {
	case m.MutationPoint:
		if len(baseFlag) != 1 {
			return nil, fmt.Errorf("point mutation needs a single replacement base, got %q", baseFlag)
		}

		mutation.Type = m.MutationPoint
		mutation.Base = baseFlag[0]
	case m.MutationInsertion:
		mutation.Type = m.MutationInsertion
		mutation.Insert = m.Sequence(insertFlag)
	case m.MutationDeletion:
		mutation.Type = m.MutationDeletion
		mutation.Length = delLengthFlag
	default:
		return nil, fmt.Errorf("unknown mutation type %q (want point, insertion or deletion)", mutationTypeFlag)
	}

	return mutation, nil
}
