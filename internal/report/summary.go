// internal/report/summary.go
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/robustlab/advreport/internal/engine"
)

var (
	summaryTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	summaryHeadStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	summaryDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	summaryWarnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	profileBadgeStyle = lipgloss.NewStyle().Background(lipgloss.Color("229")).Foreground(lipgloss.Color("0")).Padding(0, 1).MarginLeft(1)
	cleanBadgeStyle   = lipgloss.NewStyle().Background(lipgloss.Color("46")).Foreground(lipgloss.Color("0")).Padding(0, 1).MarginLeft(1)
)

// WarnLine prints one advisory warning line. Every CLI surface that prints
// warnings goes through here so they all share one texture.
func WarnLine(out io.Writer, msg string) {
	fmt.Fprintln(out, summaryWarnStyle.Render("⚠ "+msg))
}

// RenderSummary prints a terminal digest of the report model: configuration,
// one line per metric group, and every advisory warning.
func RenderSummary(model *engine.ReportModel, out io.Writer) {
	fmt.Fprintln(out, summaryTitleStyle.Render(fmt.Sprintf("%s vs %s (%s sweep)",
		model.ConfigSummary.ModelName, model.Metadata.Attack, model.Metadata.VariableParamName)))

	profile := model.Metadata.ProblemTypeProfile.Name
	if profile == "" {
		profile = "generic"
	}
	fmt.Fprintf(out, "%s%s\n\n",
		summaryHeadStyle.Render(fmt.Sprintf("problem type: %s", model.ConfigSummary.ProblemType)),
		profileBadgeStyle.Render(profile+" profile"))

	for _, g := range model.Groups {
		fmt.Fprintln(out, renderGroupLine(g))
	}

	if len(model.Warnings) > 0 {
		fmt.Fprintln(out)
		for _, w := range model.Warnings {
			WarnLine(out, w.Message)
		}
	}
}

func renderGroupLine(g engine.MetricGroup) string {
	var b strings.Builder
	b.WriteString(summaryHeadStyle.Render(fmt.Sprintf("%s:", g.Key)))

	var cells []string
	for _, s := range g.PerSweepValues {
		cells = append(cells, fmt.Sprintf("%s=%s", s.Sweep, formatMetric(s.Value)))
	}
	if len(cells) == 0 {
		for _, s := range g.CleanReferenceValues {
			cells = append(cells, fmt.Sprintf("%s=%s", s.Sweep, formatMetric(s.Value)))
		}
	}
	b.WriteString(" " + summaryDimStyle.Render(strings.Join(cells, "  ")))

	if len(g.CleanReferenceValues) > 0 && len(g.PerSweepValues) > 0 {
		b.WriteString(cleanBadgeStyle.Render("clean " + formatMetric(g.CleanReferenceValues[0].Value)))
	}
	if !g.IsUserMetric {
		b.WriteString(summaryDimStyle.Render(" [framework]"))
	}
	for _, w := range g.Warnings {
		b.WriteString("\n  " + summaryWarnStyle.Render("⚠ "+w.Message))
	}
	return b.String()
}
