// internal/commands/summary.go
package advreport

import (
	"github.com/k0kubun/pp"
	"github.com/robustlab/advreport/internal/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var summaryInput string

// summaryCmd prints a terminal digest of the report model instead of
// rendering HTML.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print a terminal summary of an evaluation JSON file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		model, err := report.BuildFromFile(summaryInput, viper.GetString("registry"))
		if err != nil {
			return err
		}

		report.RenderSummary(model, cmd.OutOrStdout())

		if DebugEnabled() {
			pp.Println(model.Metadata)
		}
		return nil
	},
}

func init() {
	summaryCmd.Flags().StringVar(&summaryInput, "input", "", "Path to the evaluation JSON (required)")
	_ = summaryCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(summaryCmd)
}
