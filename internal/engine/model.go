// internal/engine/model.go
package engine

import (
	"github.com/robustlab/advreport/internal/experiment"
	"github.com/robustlab/advreport/internal/profiles"
)

// WarningKind enumerates the advisory conditions the engine can surface.
type WarningKind string

const (
	WarnCleanDrift          WarningKind = "clean_reference_drift"
	WarnUnknownProblemType  WarningKind = "unknown_problem_type"
	WarnRegistryUnavailable WarningKind = "registry_unavailable"
)

// Warning is a non-fatal condition attached to the report model. The engine
// never prints these; the surrounding tool decides how to display them.
type Warning struct {
	Kind    WarningKind `json:"kind"`
	Metric  string      `json:"metric,omitempty"`
	Message string      `json:"message"`
}

// Sample pairs one sweep value with one metric reading. Slices of Sample are
// the ordered mappings of the report model.
type Sample struct {
	Sweep string  `json:"sweep"`
	Value float64 `json:"value"`
}

// MetricGroup is one display unit of the report: a metric's own series
// across the sweep plus, when present, the series of its co-named
// clean-reference metric.
type MetricGroup struct {
	Key                  string                `json:"key"`
	IsUserMetric         bool                  `json:"is_user_metric"`
	PerSweepValues       []Sample              `json:"per_sweep_values"`
	CleanReferenceValues []Sample              `json:"clean_reference_values,omitempty"`
	Hint                 *profiles.DisplayHint `json:"hint,omitempty"`
	Warnings             []Warning             `json:"warnings,omitempty"`

	// bucketKey is the grouping identity the members were bucketed under.
	// Kept for warning attachment; not part of the rendered model.
	bucketKey string
}

// Metadata carries the sweep-level facts the renderer needs alongside the
// groups.
type Metadata struct {
	Attack             string               `json:"attack"`
	VariableParamName  string               `json:"variable_param_name"`
	FixedAttackParams  experiment.ScalarMap `json:"fixed_attack_params,omitempty"`
	ProblemTypeProfile profiles.Profile     `json:"problem_type_profile"`
}

// ReportModel is the engine's output: everything a renderer needs, already
// classified, validated, grouped, and ordered. It is built once per report,
// immutable after construction.
type ReportModel struct {
	ConfigSummary experiment.Description `json:"config_summary"`
	Groups        []MetricGroup          `json:"groups"`
	Warnings      []Warning              `json:"warnings,omitempty"`
	Metadata      Metadata               `json:"metadata"`
}
