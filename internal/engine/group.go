// internal/engine/group.go
package engine

import (
	"github.com/robustlab/advreport/internal/experiment"
)

// bucket accumulates the members of one metric group while scanning names in
// first-seen order.
type bucket struct {
	primary string // non-clean member, "" if absent
	clean   string // clean-reference member, "" if absent
}

// GroupMetrics partitions the metric name space into display groups. A user
// metric and its clean-reference counterpart share a group; groups that
// contain a user-category metric come first, each partition in first-seen
// order. Two non-clean metrics landing in one bucket is a naming-convention
// violation upstream, so the grouper fails fast instead of dropping data.
func GroupMetrics(points []experiment.SweepPoint) ([]MetricGroup, error) {
	if len(points) == 0 {
		return nil, nil
	}

	buckets := make(map[string]*bucket)
	var order []string
	for _, p := range points {
		for _, sample := range p.Metrics {
			key := groupKey(sample.Name)
			b, seen := buckets[key]
			if !seen {
				b = &bucket{}
				buckets[key] = b
				order = append(order, key)
			}

			c := Classify(sample.Name)
			if c.CleanReference {
				if b.clean != "" && b.clean != sample.Name {
					return nil, experiment.Structuralf(
						"metric naming collision: clean-reference metrics %q and %q both resolve to group %q",
						b.clean, sample.Name, key)
				}
				b.clean = sample.Name
				continue
			}
			if b.primary != "" && b.primary != sample.Name {
				return nil, experiment.Structuralf(
					"metric naming collision: %q and %q both resolve to group %q",
					b.primary, sample.Name, key)
			}
			b.primary = sample.Name
		}
	}

	var user, framework []MetricGroup
	for _, key := range order {
		g := buildGroup(buckets[key], points)
		if g.IsUserMetric {
			user = append(user, g)
		} else {
			framework = append(framework, g)
		}
	}
	return append(user, framework...), nil
}

func buildGroup(b *bucket, points []experiment.SweepPoint) MetricGroup {
	name := b.primary
	if name == "" {
		name = b.clean
	}
	c := Classify(name)

	g := MetricGroup{
		Key:          c.BaseKey,
		IsUserMetric: c.Category == CategoryUser,
		bucketKey:    groupKey(name),
	}
	if b.primary != "" {
		g.PerSweepValues = series(points, b.primary)
	}
	if b.clean != "" {
		g.CleanReferenceValues = series(points, b.clean)
	}
	return g
}

func series(points []experiment.SweepPoint, name string) []Sample {
	out := make([]Sample, 0, len(points))
	for _, p := range points {
		if v, ok := p.Value(name); ok {
			out = append(out, Sample{Sweep: p.Sweep, Value: v})
		}
	}
	return out
}
