package appconfig

import (
	"fmt"
	"io"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg *Config, fallback Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	show := fallback
	if cfg != nil {
		show = *cfg
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  Debug:           %v\n", show.Debug)
	fmt.Fprintf(out, "  Title:           %s\n", show.Title)
	fmt.Fprintf(out, "  Registry:        %s\n", show.Registry())
	fmt.Fprintf(out, "  HTML Output:     %s\n", show.HTMLPath())
	fmt.Fprintf(out, "  Analysis Output: %s\n", show.AnalysisOutput)
	fmt.Fprintf(out, "  Log File:        %s\n", show.LogFile)
}
