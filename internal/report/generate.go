// internal/report/generate.go
// Package report turns a robustness-evaluation input file into rendered
// artifacts: a self-contained HTML report, an analysis JSON, and a terminal
// summary. All semantic work happens in the engine; this package only loads,
// resolves, and formats.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/robustlab/advreport/internal/engine"
	"github.com/robustlab/advreport/internal/experiment"
	"github.com/robustlab/advreport/internal/logging"
	"github.com/robustlab/advreport/internal/profiles"
)

// DefaultHTMLPath is where the report lands when no destination is given.
const DefaultHTMLPath = "reports/robustness-report.html"

// Options captures the inputs for one report generation.
type Options struct {
	InputPath    string
	HTMLPath     string
	AnalysisPath string
	RegistryPath string
	Title        string
}

// Generate builds the report model from opts.InputPath and writes the HTML
// report plus, when requested, the analysis JSON. Progress and advisory
// warnings go to out.
func Generate(opts Options, out io.Writer) error {
	model, err := BuildFromFile(opts.InputPath, opts.RegistryPath)
	if err != nil {
		return err
	}

	for _, w := range model.Warnings {
		WarnLine(out, w.Message)
	}

	if opts.AnalysisPath != "" {
		if err := WriteAnalysis(opts.AnalysisPath, model); err != nil {
			return err
		}
		fmt.Fprintf(out, "Analysis JSON written to %s\n", opts.AnalysisPath)
	}

	html, err := RenderHTML(model, opts.Title)
	if err != nil {
		return fmt.Errorf("failed generating HTML report: %w", err)
	}

	if opts.HTMLPath == "" {
		opts.HTMLPath = DefaultHTMLPath
	}
	if dir := filepath.Dir(opts.HTMLPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("unable to create directory for %s: %w", opts.HTMLPath, err)
		}
	}
	if err := os.WriteFile(opts.HTMLPath, []byte(html), 0o644); err != nil {
		return fmt.Errorf("unable to write HTML report %s: %w", opts.HTMLPath, err)
	}

	logging.LogEvent("[REPORT] Generated %s from %s (%d groups, %d warnings)",
		opts.HTMLPath, opts.InputPath, len(model.Groups), len(model.Warnings))
	fmt.Fprintf(out, "Report written to %s\n", opts.HTMLPath)
	return nil
}

// BuildFromFile loads the registry at registryPath and builds the report
// model from inputPath. Registry trouble becomes an advisory warning and the
// builtin profiles carry on.
func BuildFromFile(inputPath, registryPath string) (*engine.ReportModel, error) {
	var warnings []engine.Warning
	reg, err := profiles.Load(registryPath)
	if err != nil {
		warnings = append(warnings, engine.Warning{
			Kind:    engine.WarnRegistryUnavailable,
			Message: fmt.Sprintf("profile registry unavailable, using builtins: %v", err),
		})
	}
	return BuildWithResolver(inputPath, reg, warnings)
}

// BuildWithResolver parses and validates the input document, resolves its
// problem type through resolver, and runs the engine. An unknown problem
// type becomes an advisory warning and the generic profile; structural
// problems abort with an error.
func BuildWithResolver(inputPath string, resolver profiles.Resolver, warnings []engine.Warning) (*engine.ReportModel, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read input %s: %w", inputPath, err)
	}

	if err := experiment.ValidateDocument(data); err != nil {
		return nil, err
	}
	doc, err := experiment.ParseDocument(data)
	if err != nil {
		return nil, err
	}

	prof, ok := resolver.Resolve(doc.Desc.ProblemType)
	if !ok {
		warnings = append(warnings, engine.Warning{
			Kind:    engine.WarnUnknownProblemType,
			Message: fmt.Sprintf("problem type %q is not registered; using the generic profile", doc.Desc.ProblemType),
		})
		prof = profiles.Default()
	}

	return engine.Build(doc.Desc, doc.Experiments, prof, warnings)
}
