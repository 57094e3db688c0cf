// internal/commands/profiles.go
package advreport

import (
	"fmt"
	"sort"

	"github.com/robustlab/advreport/internal/profiles"
	"github.com/robustlab/advreport/internal/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// profilesCmd lists the problem-type profiles known to the registry.
var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List registered problem-type profiles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		reg, err := profiles.Load(viper.GetString("registry"))
		if err != nil {
			report.WarnLine(out, err.Error())
		}

		for _, name := range reg.Names() {
			prof, _ := reg.Resolve(name)
			fmt.Fprintf(out, "%s:\n", name)

			keys := make([]string, 0, len(prof.DisplayHints))
			for key := range prof.DisplayHints {
				keys = append(keys, key)
			}
			sort.Strings(keys)
			for _, key := range keys {
				hint := prof.DisplayHints[key]
				marker := " "
				if hint.Primary {
					marker = "*"
				}
				fmt.Fprintf(out, "  %s %-12s %s\n", marker, key, hint.Label)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profilesCmd)
}
