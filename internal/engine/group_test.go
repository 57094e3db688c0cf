// internal/engine/group_test.go
package engine

import (
	"testing"

	"github.com/robustlab/advreport/internal/experiment"
)

func point(sweep string, metrics ...experiment.MetricSample) experiment.SweepPoint {
	return experiment.SweepPoint{Sweep: sweep, Metrics: metrics}
}

func sample(name string, value float64) experiment.MetricSample {
	return experiment.MetricSample{Name: name, Value: value}
}

func TestGroupMetricsJoinsCleanReference(t *testing.T) {
	t.Parallel()

	points := []experiment.SweepPoint{
		point("0.1", sample("Accuracy", 0.83), sample("Clean_Accuracy", 0.99)),
		point("0.2", sample("Accuracy", 0.61), sample("Clean_Accuracy", 0.99)),
	}

	groups, err := GroupMetrics(points)
	if err != nil {
		t.Fatalf("GroupMetrics returned error: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}

	g := groups[0]
	if g.Key != "Accuracy" || !g.IsUserMetric {
		t.Fatalf("unexpected group identity: %+v", g)
	}
	if len(g.PerSweepValues) != 2 || g.PerSweepValues[0] != (Sample{Sweep: "0.1", Value: 0.83}) {
		t.Fatalf("unexpected per-sweep values: %+v", g.PerSweepValues)
	}
	if len(g.CleanReferenceValues) != 2 || g.CleanReferenceValues[1] != (Sample{Sweep: "0.2", Value: 0.99}) {
		t.Fatalf("unexpected clean reference values: %+v", g.CleanReferenceValues)
	}
}

func TestGroupMetricsOrdersUserGroupsFirst(t *testing.T) {
	t.Parallel()

	points := []experiment.SweepPoint{
		point("0.1",
			sample("Loss_", 0.3),
			sample("Accuracy", 0.8),
			sample("ASR", 0.1),
			sample("Clean_Accuracy", 0.9),
		),
	}

	groups, err := GroupMetrics(points)
	if err != nil {
		t.Fatalf("GroupMetrics returned error: %v", err)
	}

	var keys []string
	for _, g := range groups {
		keys = append(keys, g.Key)
	}
	want := []string{"Accuracy", "ASR", "Loss"}
	if len(keys) != len(want) {
		t.Fatalf("expected groups %v, got %v", want, keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("expected groups %v, got %v", want, keys)
		}
	}
	if groups[2].IsUserMetric {
		t.Fatalf("Loss_ group should be framework-category")
	}
}

func TestGroupMetricsKeepsUserAndFrameworkSeparate(t *testing.T) {
	t.Parallel()

	points := []experiment.SweepPoint{
		point("0.1", sample("Accuracy", 0.8), sample("Accuracy_", 0.7)),
	}

	groups, err := GroupMetrics(points)
	if err != nil {
		t.Fatalf("shared stripped name alone must not collide: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 separate groups, got %d", len(groups))
	}
}

func TestGroupMetricsCollisionFailsFast(t *testing.T) {
	t.Parallel()

	points := []experiment.SweepPoint{
		point("0.1", sample("Acc", 0.8), sample("ACC", 0.7)),
	}

	_, err := GroupMetrics(points)
	if err == nil {
		t.Fatalf("expected a structural error for the naming collision")
	}
	if !experiment.IsStructural(err) {
		t.Fatalf("collision error should be structural, got %T: %v", err, err)
	}
}

func TestGroupMetricsCleanOnlyGroup(t *testing.T) {
	t.Parallel()

	points := []experiment.SweepPoint{
		point("0.1", sample("Clean_Precision", 0.95)),
		point("0.2", sample("Clean_Precision", 0.95)),
	}

	groups, err := GroupMetrics(points)
	if err != nil {
		t.Fatalf("GroupMetrics returned error: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	g := groups[0]
	if g.Key != "Precision" || len(g.PerSweepValues) != 0 || len(g.CleanReferenceValues) != 2 {
		t.Fatalf("unexpected clean-only group: %+v", g)
	}
}
