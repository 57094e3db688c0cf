// cmd/advreport/main.go
package main

import (
	cmd "github.com/robustlab/advreport/internal/commands"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// main starts the advreport CLI by delegating to the cobra root command.
func main() {
	cmd.SetVersionInfo(version, commit, date)
	cmd.Execute()
}
