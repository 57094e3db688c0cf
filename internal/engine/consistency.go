// internal/engine/consistency.go
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/robustlab/advreport/internal/experiment"
)

// CheckCleanConsistency verifies that every clean-reference metric holds the
// same value at every sweep point. Clean metrics measure unperturbed-input
// performance and should not depend on the varied attack parameter, but real
// pipelines can produce small numeric drift, so violations are advisory: one
// warning per offending metric, never an error. A sweep with zero or one
// point trivially passes.
func CheckCleanConsistency(points []experiment.SweepPoint) []Warning {
	if len(points) < 2 {
		return nil
	}

	var warnings []Warning
	for _, sample := range points[0].Metrics {
		if !Classify(sample.Name).CleanReference {
			continue
		}

		distinct := false
		for _, p := range points[1:] {
			if v, ok := p.Value(sample.Name); ok && v != sample.Value {
				distinct = true
				break
			}
		}
		if !distinct {
			continue
		}

		var observed []string
		for _, p := range points {
			if v, ok := p.Value(sample.Name); ok {
				observed = append(observed, fmt.Sprintf("%s=%s", p.Sweep, formatValue(v)))
			}
		}
		warnings = append(warnings, Warning{
			Kind:   WarnCleanDrift,
			Metric: sample.Name,
			Message: fmt.Sprintf("clean-reference metric %q is not constant across the sweep: %s",
				sample.Name, strings.Join(observed, ", ")),
		})
	}
	return warnings
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
