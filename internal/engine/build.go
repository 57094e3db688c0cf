// internal/engine/build.go
package engine

import (
	"strings"

	"github.com/robustlab/advreport/internal/experiment"
	"github.com/robustlab/advreport/internal/profiles"
)

// Build assembles the report model from a parsed document, a resolved
// problem-type profile, and any warnings collected while resolving it. It is
// a pure composition: inputs are never mutated, identical input yields an
// identical model, and the caller receives either a complete model or a
// structural error, never a partial one.
func Build(desc experiment.Description, set experiment.Set, prof profiles.Profile, resolverWarnings []Warning) (*ReportModel, error) {
	if err := checkMetricKeySets(set.Points); err != nil {
		return nil, err
	}

	groups, err := GroupMetrics(set.Points)
	if err != nil {
		return nil, err
	}

	driftWarnings := CheckCleanConsistency(set.Points)
	attachGroupWarnings(groups, driftWarnings)
	attachHints(groups, prof)

	warnings := make([]Warning, 0, len(resolverWarnings)+len(driftWarnings))
	warnings = append(warnings, resolverWarnings...)
	warnings = append(warnings, driftWarnings...)

	return &ReportModel{
		ConfigSummary: desc,
		Groups:        groups,
		Warnings:      warnings,
		Metadata: Metadata{
			Attack:             set.Attack,
			VariableParamName:  set.VariableParamName,
			FixedAttackParams:  set.FixedAttackParams,
			ProblemTypeProfile: prof,
		},
	}, nil
}

// checkMetricKeySets enforces that every sweep point carries the identical
// set of metric names, with no name repeated within a point. A violation is
// a structural error carrying the sweep value and the expected vs. actual
// name sets. Distinct-name counts are compared, so a duplicated name can
// never mask a missing one.
func checkMetricKeySets(points []experiment.SweepPoint) error {
	if len(points) == 0 {
		return nil
	}

	expected, err := distinctNames(points[0])
	if err != nil {
		return err
	}

	for _, p := range points[1:] {
		actual, err := distinctNames(p)
		if err != nil {
			return err
		}
		for _, m := range p.Metrics {
			if _, ok := expected[m.Name]; !ok {
				return experiment.Structuralf(
					"sweep point %q carries unexpected metric %q (expected set: %s)",
					p.Sweep, m.Name, nameSet(points[0].Metrics))
			}
		}
		if len(actual) != len(expected) {
			for _, m := range points[0].Metrics {
				if _, ok := actual[m.Name]; !ok {
					return experiment.Structuralf(
						"sweep point %q is missing metric %q (expected set: %s, actual set: %s)",
						p.Sweep, m.Name, nameSet(points[0].Metrics), nameSet(p.Metrics))
				}
			}
		}
	}
	return nil
}

func distinctNames(p experiment.SweepPoint) (map[string]struct{}, error) {
	names := make(map[string]struct{}, len(p.Metrics))
	for _, m := range p.Metrics {
		if _, dup := names[m.Name]; dup {
			return nil, experiment.Structuralf(
				"sweep point %q lists metric %q more than once", p.Sweep, m.Name)
		}
		names[m.Name] = struct{}{}
	}
	return names, nil
}

func nameSet(samples []experiment.MetricSample) string {
	names := make([]string, 0, len(samples))
	for _, s := range samples {
		names = append(names, s.Name)
	}
	return "{" + strings.Join(names, ", ") + "}"
}

// attachGroupWarnings copies each drift warning onto the group whose clean
// member it names.
func attachGroupWarnings(groups []MetricGroup, warnings []Warning) {
	for _, w := range warnings {
		key := groupKey(w.Metric)
		for i := range groups {
			if groups[i].bucketKey == key {
				groups[i].Warnings = append(groups[i].Warnings, w)
				break
			}
		}
	}
}

// attachHints stamps each group with its profile display hint, when one
// exists for the group key.
func attachHints(groups []MetricGroup, prof profiles.Profile) {
	for i := range groups {
		if hint, ok := prof.Hint(groups[i].Key); ok {
			h := hint
			groups[i].Hint = &h
		}
	}
}
