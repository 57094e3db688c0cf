// internal/experiment/decode.go
package experiment

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ScalarMap is a flat mapping of name -> scalar (number, string, or bool).
// Numbers stay json.Number so the input formatting survives into the report.
// Decoding fails with a StructuralError when a value is itself a container.
type ScalarMap map[string]any

// UnmarshalJSON enforces the scalar-leaves invariant while decoding.
func (m *ScalarMap) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(ScalarMap, len(raw))
	for key, val := range raw {
		v, err := decodeScalar(val)
		if err != nil {
			return Structuralf("parameter %q: %v", key, err)
		}
		out[key] = v
	}
	*m = out
	return nil
}

func decodeScalar(raw json.RawMessage) (any, error) {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return nil, fmt.Errorf("nested container %s where a scalar is required", abbreviate(raw))
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func abbreviate(raw json.RawMessage) string {
	s := string(bytes.Join(bytes.Fields(raw), []byte(" ")))
	if len(s) > 40 {
		s = s[:40] + "…"
	}
	return s
}

// ParseDocument decodes the top-level input file. Syntax errors surface as
// plain decode errors; invariant violations surface as StructuralError.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		if IsStructural(err) {
			return nil, err
		}
		return nil, fmt.Errorf("parse input document: %w", err)
	}
	return &doc, nil
}

// UnmarshalJSON decodes the experiment set, walking the metrics block with a
// token decoder so sweep points and metric names keep their input order.
func (s *Set) UnmarshalJSON(data []byte) error {
	var aux struct {
		Attack            string          `json:"attack"`
		VariableParamName string          `json:"variable_param_name"`
		FixedAttackParams ScalarMap       `json:"fixed_attack_params"`
		Metrics           json.RawMessage `json:"metrics"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	points, err := decodeSweepPoints(aux.Metrics)
	if err != nil {
		return err
	}

	s.Attack = aux.Attack
	s.VariableParamName = aux.VariableParamName
	s.FixedAttackParams = aux.FixedAttackParams
	s.Points = points
	return nil
}

func decodeSweepPoints(raw json.RawMessage) ([]SweepPoint, error) {
	if len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("metrics block: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("metrics block: expected an object keyed by sweep value, got %v", tok)
	}

	var points []SweepPoint
	seen := make(map[string]struct{})
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("metrics block: %w", err)
		}
		sweep := keyTok.(string)
		if _, dup := seen[sweep]; dup {
			return nil, Structuralf("metrics block lists sweep value %q more than once", sweep)
		}
		seen[sweep] = struct{}{}

		samples, err := decodeMetricObject(dec, sweep)
		if err != nil {
			return nil, err
		}
		points = append(points, SweepPoint{Sweep: sweep, Metrics: samples})
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("metrics block: %w", err)
	}
	return points, nil
}

func decodeMetricObject(dec *json.Decoder, sweep string) ([]MetricSample, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("sweep point %q: %w", sweep, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("sweep point %q: expected an object of metric values, got %v", sweep, tok)
	}

	var samples []MetricSample
	seen := make(map[string]struct{})
	for dec.More() {
		nameTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("sweep point %q: %w", sweep, err)
		}
		name := nameTok.(string)
		if _, dup := seen[name]; dup {
			return nil, Structuralf("sweep point %q lists metric %q more than once", sweep, name)
		}
		seen[name] = struct{}{}

		valTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("sweep point %q: metric %q: %w", sweep, name, err)
		}
		num, ok := valTok.(json.Number)
		if !ok {
			return nil, Structuralf("sweep point %q: metric %q must be a number, got %v", sweep, name, valTok)
		}
		value, err := num.Float64()
		if err != nil {
			return nil, fmt.Errorf("sweep point %q: metric %q: %w", sweep, name, err)
		}
		samples = append(samples, MetricSample{Name: name, Value: value})
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("sweep point %q: %w", sweep, err)
	}
	return samples, nil
}
