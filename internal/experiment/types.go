// internal/experiment/types.go
// Package experiment defines the robustness-evaluation input document and its
// order-preserving JSON decoding.
package experiment

// Description captures the model and dataloader configuration block. It is
// passed through to the report verbatim; the only structural requirement is
// that parameter trees are exactly two levels deep with scalar leaves.
type Description struct {
	ProblemType          string               `json:"problem_type"`
	ModelName            string               `json:"model_name"`
	ModelParameters      map[string]ScalarMap `json:"model_parameters"`
	DatasetLoaderName    string               `json:"dataset_loader_name"`
	DataloaderParameters map[string]ScalarMap `json:"dataloader_parameters"`
}

// MetricSample is one named metric reading inside a sweep point.
type MetricSample struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// SweepPoint holds the metric readings recorded at one value of the varied
// attack parameter. Samples keep the order they had in the input document.
type SweepPoint struct {
	Sweep   string         `json:"sweep"`
	Metrics []MetricSample `json:"metrics"`
}

// Set describes one attack sweep: the attack method, its fixed parameters,
// the name of the varied parameter, and the ordered sweep points.
type Set struct {
	Attack            string       `json:"attack"`
	VariableParamName string       `json:"variable_param_name"`
	FixedAttackParams ScalarMap    `json:"fixed_attack_params"`
	Points            []SweepPoint `json:"metrics"`
}

// Document is the parsed top-level input file.
type Document struct {
	Desc        Description `json:"desc"`
	Experiments Set         `json:"experiments"`
}

// MetricNames returns the metric names of the first sweep point in input
// order, or nil for an empty sweep. Later points are required to carry the
// identical name set, so this is the canonical first-seen ordering.
func (s Set) MetricNames() []string {
	if len(s.Points) == 0 {
		return nil
	}
	names := make([]string, 0, len(s.Points[0].Metrics))
	for _, m := range s.Points[0].Metrics {
		names = append(names, m.Name)
	}
	return names
}

// Value looks up a metric by name within the point.
func (p SweepPoint) Value(name string) (float64, bool) {
	for _, m := range p.Metrics {
		if m.Name == name {
			return m.Value, true
		}
	}
	return 0, false
}
