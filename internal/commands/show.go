// internal/commands/show.go
package advreport

import (
	"github.com/spf13/cobra"
)

// showCmd hosts commands that display tool state.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show tool state",
}

func init() {
	rootCmd.AddCommand(showCmd)
}
