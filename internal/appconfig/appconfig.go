// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import "github.com/robustlab/advreport/internal/report"

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// DefaultRegistryPath is the default location of the problem-type profile registry.
	DefaultRegistryPath = "config/profiles.json"
)

// Config represents the top-level application configuration.
type Config struct {
	Debug          bool   `json:"debug"`
	Title          string `json:"title,omitempty"`
	RegistryPath   string `json:"registry,omitempty" mapstructure:"registry"`
	HTMLOutput     string `json:"htmlOutput,omitempty"`
	AnalysisOutput string `json:"analysisOutput,omitempty"`
	LogFile        string `json:"logFile,omitempty"`
	ConfigPath     string `json:"-"`
}

// LogFilePath returns the configured log file path, empty when logging to a
// file is disabled.
func (c Config) LogFilePath() string {
	return c.LogFile
}

// Registry returns the configured registry path, falling back to the default.
func (c Config) Registry() string {
	if c.RegistryPath == "" {
		return DefaultRegistryPath
	}
	return c.RegistryPath
}

// HTMLPath returns the configured HTML destination, falling back to the default.
func (c Config) HTMLPath() string {
	if c.HTMLOutput == "" {
		return report.DefaultHTMLPath
	}
	return c.HTMLOutput
}
