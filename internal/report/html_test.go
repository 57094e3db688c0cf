// internal/report/html_test.go
package report

import (
	"reflect"
	"strings"
	"testing"

	"github.com/robustlab/advreport/internal/engine"
	"github.com/robustlab/advreport/internal/experiment"
	"github.com/robustlab/advreport/internal/profiles"
)

func testModel(t *testing.T) *engine.ReportModel {
	t.Helper()

	desc := experiment.Description{
		ProblemType: "classification",
		ModelName:   "resnet50",
	}
	set := experiment.Set{
		Attack:            "pgd",
		VariableParamName: "eps",
		Points: []experiment.SweepPoint{
			{Sweep: "0.01", Metrics: []experiment.MetricSample{
				{Name: "Accuracy", Value: 0.91},
				{Name: "Clean_Accuracy", Value: 0.99},
				{Name: "ASR", Value: 0.05},
			}},
			{Sweep: "0.05", Metrics: []experiment.MetricSample{
				{Name: "Accuracy", Value: 0.74},
				{Name: "Clean_Accuracy", Value: 0.99},
				{Name: "ASR", Value: 0.31},
			}},
		},
	}

	prof, _ := profiles.Builtin().Resolve("classification")
	model, err := engine.Build(desc, set, prof, nil)
	if err != nil {
		t.Fatalf("engine.Build returned error: %v", err)
	}
	return model
}

func TestRenderHTML(t *testing.T) {
	t.Parallel()

	html, err := RenderHTML(testModel(t), "")
	if err != nil {
		t.Fatalf("RenderHTML returned error: %v", err)
	}

	for _, fragment := range []string{
		"<title>" + defaultTitle + "</title>",
		"resnet50",
		"pgd",
		`id="metricChart0"`,
		`id="metricChart1"`,
		"const payload =",
		`"variable_param":"eps"`,
		"chart.js",
		"bootstrap",
	} {
		if !strings.Contains(html, fragment) {
			t.Fatalf("rendered report should contain %q", fragment)
		}
	}
}

func TestRenderHTMLCustomTitle(t *testing.T) {
	t.Parallel()

	html, err := RenderHTML(testModel(t), "Nightly PGD Sweep")
	if err != nil {
		t.Fatalf("RenderHTML returned error: %v", err)
	}
	if !strings.Contains(html, "<title>Nightly PGD Sweep</title>") {
		t.Fatalf("custom title not applied")
	}
}

func TestBuildGroupViewUsesHintLabel(t *testing.T) {
	t.Parallel()

	g := engine.MetricGroup{
		Key:          "Accuracy",
		IsUserMetric: true,
		PerSweepValues: []engine.Sample{
			{Sweep: "0.01", Value: 0.91},
		},
		CleanReferenceValues: []engine.Sample{
			{Sweep: "0.01", Value: 0.99},
		},
		Hint: &profiles.DisplayHint{Primary: true, Label: "Top-1 Accuracy"},
	}

	gv := buildGroupView(g, 3)
	if gv.Label != "Top-1 Accuracy" || !gv.Primary {
		t.Fatalf("hint not applied to group view: %+v", gv)
	}
	if gv.CanvasID != "metricChart3" {
		t.Fatalf("unexpected canvas id %q", gv.CanvasID)
	}
	if len(gv.Rows) != 1 || gv.Rows[0].Value != "0.910" || gv.Rows[0].Clean != "0.990" {
		t.Fatalf("unexpected rows: %+v", gv.Rows)
	}
}

func TestCompleteTable(t *testing.T) {
	t.Parallel()

	groups := []engine.MetricGroup{
		{
			Key: "Accuracy",
			PerSweepValues: []engine.Sample{
				{Sweep: "0.01", Value: 0.91},
				{Sweep: "0.05", Value: 0.74},
			},
			CleanReferenceValues: []engine.Sample{
				{Sweep: "0.01", Value: 0.99},
				{Sweep: "0.05", Value: 0.99},
			},
		},
		{
			Key: "ASR",
			PerSweepValues: []engine.Sample{
				{Sweep: "0.01", Value: 0.05},
				{Sweep: "0.05", Value: 0.31},
			},
		},
	}

	header, rows := completeTable(groups)
	wantHeader := []string{"Sweep", "Accuracy", "Accuracy (clean)", "ASR"}
	if !reflect.DeepEqual(header, wantHeader) {
		t.Fatalf("header = %v, want %v", header, wantHeader)
	}
	wantRows := [][]string{
		{"0.01", "0.910", "0.990", "0.050"},
		{"0.05", "0.740", "0.990", "0.310"},
	}
	if !reflect.DeepEqual(rows, wantRows) {
		t.Fatalf("rows = %v, want %v", rows, wantRows)
	}
}

func TestScalarPairsSortedAndFormatted(t *testing.T) {
	t.Parallel()

	pairs := scalarPairs(experiment.ScalarMap{
		"steps": jsonNumber(t, "40"),
		"norm":  "linf",
		"decay": jsonNumber(t, "0.99"),
	})

	want := []kv{
		{Name: "decay", Value: "0.99"},
		{Name: "norm", Value: "linf"},
		{Name: "steps", Value: "40"},
	}
	if !reflect.DeepEqual(pairs, want) {
		t.Fatalf("scalarPairs = %v, want %v", pairs, want)
	}
}
