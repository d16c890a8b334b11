package cmd

import (
	"github.com/mouse-blink/helixsleuth/internal/domain"
	m "github.com/mouse-blink/helixsleuth/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var viewCleanFlag bool

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View previously saved analysis reports",
		Long: `View previously saved analysis reports from the reports directory.
On a terminal the reports open in a scrollable, filterable browser;
piped output renders a plain table.`,
		Args: cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.View(domain.ViewArgs{
				Reports: m.Path(viper.GetString("reports")),
				Clean:   viewCleanFlag,
			})
		},
	}
	cmd.Flags().BoolVar(&viewCleanFlag, "clean", false, "delete all saved reports instead of listing them")

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
