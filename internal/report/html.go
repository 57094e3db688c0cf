// internal/report/html.go
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"sort"
	"time"

	"github.com/robustlab/advreport/internal/engine"
	"github.com/robustlab/advreport/internal/experiment"
)

const defaultTitle = "Model Robustness Evaluation Report"

type reportView struct {
	Title         string
	GeneratedAt   string
	ProblemType   string
	ProfileName   string
	ModelName     string
	DatasetLoader string
	Attack        string
	VariableParam string

	FixedParams      []kv
	ModelParams      []paramGroup
	DataloaderParams []paramGroup

	CompleteHeader []string
	CompleteRows   [][]string

	Groups   []groupView
	Warnings []string

	PayloadJSON template.JS
}

type kv struct {
	Name  string
	Value string
}

type paramGroup struct {
	Name   string
	Params []kv
}

type groupView struct {
	Key      string
	Label    string
	CanvasID string
	Primary  bool
	IsUser   bool
	HasClean bool
	Rows     []groupRow
	Warnings []string
}

type groupRow struct {
	Sweep string
	Value string
	Clean string
}

type chartPayload struct {
	VariableParam string       `json:"variable_param"`
	Groups        []chartGroup `json:"groups"`
}

type chartGroup struct {
	Key      string    `json:"key"`
	Label    string    `json:"label"`
	CanvasID string    `json:"canvas_id"`
	Sweeps   []string  `json:"sweeps"`
	Values   []float64 `json:"values"`
	Clean    []float64 `json:"clean,omitempty"`
	Primary  bool      `json:"primary"`
}

// RenderHTML renders the report model into a standalone HTML page. The chart
// data rides along as a JSON payload consumed by the inline script.
func RenderHTML(model *engine.ReportModel, title string) (string, error) {
	if title == "" {
		title = defaultTitle
	}

	view, err := buildView(model, title)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func buildView(model *engine.ReportModel, title string) (*reportView, error) {
	view := &reportView{
		Title:         title,
		GeneratedAt:   time.Now().Format("2006-01-02 15:04:05"),
		ProblemType:   model.ConfigSummary.ProblemType,
		ProfileName:   model.Metadata.ProblemTypeProfile.Name,
		ModelName:     model.ConfigSummary.ModelName,
		DatasetLoader: model.ConfigSummary.DatasetLoaderName,
		Attack:        model.Metadata.Attack,
		VariableParam: model.Metadata.VariableParamName,

		FixedParams:      scalarPairs(model.Metadata.FixedAttackParams),
		ModelParams:      paramGroups(model.ConfigSummary.ModelParameters),
		DataloaderParams: paramGroups(model.ConfigSummary.DataloaderParameters),
	}

	for _, w := range model.Warnings {
		view.Warnings = append(view.Warnings, w.Message)
	}

	payload := chartPayload{VariableParam: model.Metadata.VariableParamName}
	for i, g := range model.Groups {
		gv := buildGroupView(g, i)
		view.Groups = append(view.Groups, gv)

		cg := chartGroup{
			Key:      g.Key,
			Label:    gv.Label,
			CanvasID: gv.CanvasID,
			Primary:  gv.Primary,
		}
		for _, s := range g.PerSweepValues {
			cg.Sweeps = append(cg.Sweeps, s.Sweep)
			cg.Values = append(cg.Values, s.Value)
		}
		if len(cg.Sweeps) == 0 {
			for _, s := range g.CleanReferenceValues {
				cg.Sweeps = append(cg.Sweeps, s.Sweep)
			}
		}
		for _, s := range g.CleanReferenceValues {
			cg.Clean = append(cg.Clean, s.Value)
		}
		payload.Groups = append(payload.Groups, cg)
	}

	view.CompleteHeader, view.CompleteRows = completeTable(model.Groups)

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("unable to marshal chart payload: %w", err)
	}
	view.PayloadJSON = template.JS(data)
	return view, nil
}

func buildGroupView(g engine.MetricGroup, index int) groupView {
	gv := groupView{
		Key:      g.Key,
		Label:    g.Key,
		CanvasID: fmt.Sprintf("metricChart%d", index),
		IsUser:   g.IsUserMetric,
		HasClean: len(g.CleanReferenceValues) > 0,
	}
	if g.Hint != nil {
		gv.Primary = g.Hint.Primary
		if g.Hint.Label != "" {
			gv.Label = g.Hint.Label
		}
	}
	for _, w := range g.Warnings {
		gv.Warnings = append(gv.Warnings, w.Message)
	}

	clean := make(map[string]string, len(g.CleanReferenceValues))
	for _, s := range g.CleanReferenceValues {
		clean[s.Sweep] = formatMetric(s.Value)
	}

	series := g.PerSweepValues
	if len(series) == 0 {
		series = g.CleanReferenceValues
	}
	for _, s := range series {
		row := groupRow{Sweep: s.Sweep, Clean: clean[s.Sweep]}
		if len(g.PerSweepValues) > 0 {
			row.Value = formatMetric(s.Value)
		}
		gv.Rows = append(gv.Rows, row)
	}
	return gv
}

// completeTable flattens every group into one results table: one row per
// sweep value, one column per metric series (clean references included).
func completeTable(groups []engine.MetricGroup) ([]string, [][]string) {
	if len(groups) == 0 {
		return nil, nil
	}

	var sweeps []string
	seen := make(map[string]struct{})
	note := func(sweep string) {
		if _, ok := seen[sweep]; !ok {
			seen[sweep] = struct{}{}
			sweeps = append(sweeps, sweep)
		}
	}
	for _, g := range groups {
		for _, s := range g.PerSweepValues {
			note(s.Sweep)
		}
		for _, s := range g.CleanReferenceValues {
			note(s.Sweep)
		}
	}

	header := []string{"Sweep"}
	type column struct {
		values map[string]string
	}
	var cols []column
	for _, g := range groups {
		if len(g.PerSweepValues) > 0 {
			header = append(header, g.Key)
			col := column{values: make(map[string]string)}
			for _, s := range g.PerSweepValues {
				col.values[s.Sweep] = formatMetric(s.Value)
			}
			cols = append(cols, col)
		}
		if len(g.CleanReferenceValues) > 0 {
			header = append(header, g.Key+" (clean)")
			col := column{values: make(map[string]string)}
			for _, s := range g.CleanReferenceValues {
				col.values[s.Sweep] = formatMetric(s.Value)
			}
			cols = append(cols, col)
		}
	}

	rows := make([][]string, 0, len(sweeps))
	for _, sweep := range sweeps {
		row := []string{sweep}
		for _, col := range cols {
			row = append(row, col.values[sweep])
		}
		rows = append(rows, row)
	}
	return header, rows
}

func paramGroups(tree map[string]experiment.ScalarMap) []paramGroup {
	names := make([]string, 0, len(tree))
	for name := range tree {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]paramGroup, 0, len(names))
	for _, name := range names {
		out = append(out, paramGroup{Name: name, Params: scalarPairs(tree[name])})
	}
	return out
}

func scalarPairs(m experiment.ScalarMap) []kv {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]kv, 0, len(names))
	for _, name := range names {
		out = append(out, kv{Name: name, Value: formatScalar(m[name])})
	}
	return out
}

func formatScalar(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case json.Number:
		return val.String()
	case string:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}

func formatMetric(v float64) string {
	return fmt.Sprintf("%.3f", v)
}

var reportTemplate = template.Must(template.New("robustness-report").Parse(reportTemplateHTML))

const reportTemplateHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{ .Title }}</title>
  <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css">
  <style>
    body {
      background-color: #f1f5f9;
    }
    .section-title {
      border-bottom: 2px solid #e2e8f0;
      padding-bottom: .5rem;
      margin-bottom: 1rem;
    }
    .chart-card {
      border-radius: .75rem;
    }
    .chart-canvas {
      position: relative;
      height: 320px;
    }
    .metric-value {
      font-variant-numeric: tabular-nums;
      font-weight: 600;
      color: #1d4ed8;
    }
    .clean-value {
      font-variant-numeric: tabular-nums;
      font-weight: 600;
      color: #15803d;
    }
    .badge-primary-metric {
      background-color: #1d4ed8;
    }
    .badge-framework {
      background-color: #64748b;
    }
    @media print {
      .chart-card, .card {
        page-break-inside: avoid;
      }
    }
  </style>
</head>
<body>
  <nav class="navbar navbar-dark bg-dark">
    <div class="container">
      <span class="navbar-brand mb-0 h1">{{ .Title }}</span>
      <span class="navbar-text">Generated {{ .GeneratedAt }}</span>
    </div>
  </nav>

  <div class="container my-4">
    <section class="mb-5">
      <h2 class="section-title">1. Model &amp; Experiment Configuration</h2>
      <div class="row g-3">
        <div class="col-md-6">
          <div class="card shadow-sm h-100">
            <div class="card-body">
              <h5 class="card-title">Model</h5>
              <dl class="row mb-0">
                <dt class="col-sm-5">Name</dt><dd class="col-sm-7">{{ .ModelName }}</dd>
                <dt class="col-sm-5">Problem type</dt>
                <dd class="col-sm-7">{{ .ProblemType }}{{ if .ProfileName }} <span class="badge bg-success">{{ .ProfileName }} profile</span>{{ end }}</dd>
                <dt class="col-sm-5">Dataset loader</dt><dd class="col-sm-7">{{ .DatasetLoader }}</dd>
              </dl>
              {{ range .ModelParams }}
              <h6 class="mt-3">{{ .Name }}</h6>
              <ul class="list-unstyled mb-0">
                {{ range .Params }}<li><strong>{{ .Name }}:</strong> {{ .Value }}</li>{{ end }}
              </ul>
              {{ end }}
              {{ range .DataloaderParams }}
              <h6 class="mt-3">{{ .Name }} (dataloader)</h6>
              <ul class="list-unstyled mb-0">
                {{ range .Params }}<li><strong>{{ .Name }}:</strong> {{ .Value }}</li>{{ end }}
              </ul>
              {{ end }}
            </div>
          </div>
        </div>
        <div class="col-md-6">
          <div class="card shadow-sm h-100">
            <div class="card-body">
              <h5 class="card-title">Attack</h5>
              <dl class="row mb-0">
                <dt class="col-sm-5">Method</dt><dd class="col-sm-7">{{ .Attack }}</dd>
                <dt class="col-sm-5">Varied parameter</dt><dd class="col-sm-7">{{ .VariableParam }}</dd>
              </dl>
              {{ if .FixedParams }}
              <h6 class="mt-3">Fixed parameters</h6>
              <ul class="list-unstyled mb-0">
                {{ range .FixedParams }}<li><strong>{{ .Name }}:</strong> {{ .Value }}</li>{{ end }}
              </ul>
              {{ end }}
            </div>
          </div>
        </div>
      </div>
    </section>

    <section class="mb-5">
      <h2 class="section-title">2. Metric Charts</h2>
      <div class="row g-3">
        {{ range .Groups }}
        <div class="col-lg-6">
          <div class="card shadow-sm chart-card">
            <div class="card-body">
              <h5 class="card-title">
                {{ .Label }}
                {{ if .Primary }}<span class="badge badge-primary-metric">primary</span>{{ end }}
                {{ if not .IsUser }}<span class="badge badge-framework">framework</span>{{ end }}
              </h5>
              <div class="chart-canvas">
                <canvas id="{{ .CanvasID }}" aria-label="{{ .Label }} chart" role="img"></canvas>
              </div>
            </div>
          </div>
        </div>
        {{ end }}
      </div>
    </section>

    <section class="mb-5">
      <h2 class="section-title">3. Results</h2>
      {{ if .CompleteRows }}
      <h5>Complete results</h5>
      <div class="table-responsive">
        <table class="table table-striped table-hover bg-white shadow-sm">
          <thead class="table-dark">
            <tr>{{ range .CompleteHeader }}<th>{{ . }}</th>{{ end }}</tr>
          </thead>
          <tbody>
            {{ range .CompleteRows }}
            <tr>{{ range $i, $cell := . }}{{ if eq $i 0 }}<td>{{ $cell }}</td>{{ else }}<td class="metric-value">{{ $cell }}</td>{{ end }}{{ end }}</tr>
            {{ end }}
          </tbody>
        </table>
      </div>
      {{ end }}

      {{ range .Groups }}
      <h5 class="mt-4">{{ .Label }}</h5>
      <div class="table-responsive">
        <table class="table table-sm table-striped bg-white shadow-sm">
          <thead class="table-dark">
            <tr><th>{{ $.VariableParam }}</th><th>{{ .Label }}</th>{{ if .HasClean }}<th>Clean reference</th>{{ end }}</tr>
          </thead>
          <tbody>
            {{ $g := . }}
            {{ range .Rows }}
            <tr>
              <td>{{ .Sweep }}</td>
              <td class="metric-value">{{ .Value }}</td>
              {{ if $g.HasClean }}<td class="clean-value">{{ .Clean }}</td>{{ end }}
            </tr>
            {{ end }}
          </tbody>
        </table>
      </div>
      {{ range .Warnings }}
      <div class="alert alert-warning py-2">{{ . }}</div>
      {{ end }}
      {{ end }}
    </section>

    {{ if .Warnings }}
    <section class="mb-5">
      <h2 class="section-title">4. Warnings</h2>
      {{ range .Warnings }}
      <div class="alert alert-warning py-2">{{ . }}</div>
      {{ end }}
    </section>
    {{ end }}

    <footer class="text-center text-muted py-4 border-top">
      <p class="mb-0">Generated by advreport — model robustness evaluation reporting</p>
    </footer>
  </div>

  <script src="https://cdn.jsdelivr.net/npm/chart.js@4.4.2/dist/chart.umd.min.js"></script>
  <script>
    const payload = {{ .PayloadJSON }};

    payload.groups.forEach((group) => {
      const canvas = document.getElementById(group.canvas_id);
      if (!canvas) {
        return;
      }

      const datasets = [];
      if (group.values && group.values.length) {
        datasets.push({
          label: group.label,
          data: group.values,
          borderColor: group.primary ? '#1d4ed8' : '#3b82f6',
          backgroundColor: 'rgba(59, 130, 246, 0.15)',
          borderWidth: 3,
          pointRadius: 4,
          tension: 0.15,
        });
      }
      if (group.clean && group.clean.length) {
        datasets.push({
          label: group.label + ' (clean)',
          data: group.clean,
          borderColor: '#15803d',
          borderDash: [6, 4],
          borderWidth: 3,
          pointRadius: 4,
        });
      }

      new Chart(canvas, {
        type: 'line',
        data: { labels: group.sweeps, datasets },
        options: {
          responsive: true,
          maintainAspectRatio: false,
          scales: {
            x: { title: { display: true, text: payload.variable_param } },
            y: { title: { display: true, text: group.label } },
          },
          plugins: {
            legend: { position: 'bottom' },
          },
        },
      });
    });
  </script>
</body>
</html>
`
