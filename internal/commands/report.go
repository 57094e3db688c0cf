// internal/commands/report.go
package advreport

import (
	"github.com/robustlab/advreport/internal/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var reportOpts report.Options

// reportCmd turns a robustness-evaluation JSON file into the HTML report.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the robustness report from evaluation JSON",
	Long: `Read a robustness-evaluation input file (experiment description plus an
attack sweep with per-sweep-point metrics), classify and group its metrics,
and emit a self-contained HTML report. Optionally also writes the report
model as analysis JSON.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reportOpts.RegistryPath = viper.GetString("registry")
		reportOpts.Title = viper.GetString("title")
		// Flag beats config beats flag default, via the viper binding.
		reportOpts.HTMLPath = viper.GetString("htmlOutput")
		reportOpts.AnalysisPath = viper.GetString("analysisOutput")
		return report.Generate(reportOpts, cmd.OutOrStdout())
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportOpts.InputPath, "input", "", "Path to the evaluation JSON (required)")
	reportCmd.Flags().String("html-output", report.DefaultHTMLPath, "Destination HTML report path")
	reportCmd.Flags().String("analysis-output", "", "Optional path to write the analysis JSON")
	_ = reportCmd.MarkFlagRequired("input")

	_ = viper.BindPFlag("htmlOutput", reportCmd.Flags().Lookup("html-output"))
	_ = viper.BindPFlag("analysisOutput", reportCmd.Flags().Lookup("analysis-output"))

	rootCmd.AddCommand(reportCmd)
}
