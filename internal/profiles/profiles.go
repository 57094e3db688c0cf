// internal/profiles/profiles.go
// Package profiles resolves a declared problem type to domain-specific
// presentation hints for the report renderer.
package profiles

import (
	"sort"
	"strings"
)

// DisplayHint tells the renderer how to treat one metric within a profile.
type DisplayHint struct {
	Primary        bool   `json:"primary"`
	Label          string `json:"label,omitempty"`
	HigherIsBetter bool   `json:"higher_is_better,omitempty"`
}

// Profile bundles the display hints for one problem type. The zero value is
// the generic fallback: no hints, nothing highlighted.
type Profile struct {
	Name         string                 `json:"name,omitempty"`
	DisplayHints map[string]DisplayHint `json:"display_hints,omitempty"`
}

// Default returns the generic profile used when a problem type is unknown or
// the registry cannot be read.
func Default() Profile {
	return Profile{}
}

// Hint looks up the hint for a metric group key. Hint keys are matched
// case-insensitively because group keys keep the casing of the input names.
func (p Profile) Hint(metricKey string) (DisplayHint, bool) {
	if hint, ok := p.DisplayHints[metricKey]; ok {
		return hint, true
	}
	for key, hint := range p.DisplayHints {
		if strings.EqualFold(key, metricKey) {
			return hint, true
		}
	}
	return DisplayHint{}, false
}

// Resolver is the capability the report builder depends on. Alternate
// sources (a remote service, an embedded table) can stand in for the
// registry without the engine noticing.
type Resolver interface {
	Resolve(problemType string) (Profile, bool)
}

// Registry is the in-process Resolver: a mapping of problem-type name to
// profile, optionally extended from an external JSON file.
type Registry struct {
	profiles map[string]Profile
}

// Resolve looks up problemType case-sensitively. The second return value is
// false when the type is not registered; callers fall back to Default.
func (r *Registry) Resolve(problemType string) (Profile, bool) {
	if r == nil {
		return Default(), false
	}
	prof, ok := r.profiles[problemType]
	if !ok {
		return Default(), false
	}
	if prof.Name == "" {
		prof.Name = problemType
	}
	return prof, true
}

// Names lists the registered problem types in sorted order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.profiles))
	for name := range r.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Builtin returns the registry shipped with the tool. An external registry
// file merges on top of these entries.
func Builtin() *Registry {
	return &Registry{profiles: map[string]Profile{
		"classification": {
			Name: "classification",
			DisplayHints: map[string]DisplayHint{
				"accuracy": {Primary: true, Label: "Accuracy", HigherIsBetter: true},
				"f1":       {Primary: true, Label: "F1 Score", HigherIsBetter: true},
				"asr":      {Label: "Attack Success Rate"},
				"loss":     {Label: "Loss"},
			},
		},
		"detection": {
			Name: "detection",
			DisplayHints: map[string]DisplayHint{
				"map":    {Primary: true, Label: "mAP", HigherIsBetter: true},
				"recall": {Label: "Recall", HigherIsBetter: true},
			},
		},
		"segmentation": {
			Name: "segmentation",
			DisplayHints: map[string]DisplayHint{
				"miou": {Primary: true, Label: "mIoU", HigherIsBetter: true},
				"dice": {Label: "Dice", HigherIsBetter: true},
			},
		},
	}}
}
