// internal/commands/validate.go
package advreport

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/robustlab/advreport/internal/experiment"
	"github.com/spf13/cobra"
)

var validateInput string

// validateCmd schema-checks an evaluation JSON file without generating anything.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate an evaluation JSON file against the input schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(validateInput)
		if err != nil {
			return fmt.Errorf("unable to read input %s: %w", validateInput, err)
		}

		if err := experiment.ValidateDocument(data); err != nil {
			color.New(color.FgRed).Fprintf(cmd.OutOrStdout(), "✗ %s is not a valid evaluation document\n", validateInput)
			return err
		}
		if _, err := experiment.ParseDocument(data); err != nil {
			color.New(color.FgRed).Fprintf(cmd.OutOrStdout(), "✗ %s violates a document invariant\n", validateInput)
			return err
		}

		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ %s is a valid evaluation document\n", validateInput)
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVar(&validateInput, "input", "", "Path to the evaluation JSON (required)")
	_ = validateCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(validateCmd)
}
