// internal/experiment/schema.go
package experiment

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// scalarSchema matches a single scalar parameter value.
var scalarSchema = map[string]any{
	"type": []string{"number", "string", "boolean", "integer"},
}

// DocumentSchema returns the JSON Schema for the input document.
func DocumentSchema() map[string]any {
	paramTree := map[string]any{
		"type": "object",
		"additionalProperties": map[string]any{
			"type":                 "object",
			"additionalProperties": scalarSchema,
		},
	}

	return map[string]any{
		"type":     "object",
		"required": []string{"desc", "experiments"},
		"properties": map[string]any{
			"desc": map[string]any{
				"type":     "object",
				"required": []string{"problem_type", "model_name"},
				"properties": map[string]any{
					"problem_type":          map[string]any{"type": "string"},
					"model_name":            map[string]any{"type": "string"},
					"model_parameters":      paramTree,
					"dataset_loader_name":   map[string]any{"type": "string"},
					"dataloader_parameters": paramTree,
				},
			},
			"experiments": map[string]any{
				"type":     "object",
				"required": []string{"attack", "variable_param_name", "metrics"},
				"properties": map[string]any{
					"attack":              map[string]any{"type": "string"},
					"variable_param_name": map[string]any{"type": "string"},
					"fixed_attack_params": map[string]any{
						"type":                 "object",
						"additionalProperties": scalarSchema,
					},
					"metrics": map[string]any{
						"type": "object",
						"additionalProperties": map[string]any{
							"type":                 "object",
							"additionalProperties": map[string]any{"type": "number"},
						},
					},
				},
			},
		},
	}
}

// ValidateDocument checks raw JSON against DocumentSchema and returns a
// single error listing every violation.
func ValidateDocument(data []byte) error {
	schemaLoader := gojsonschema.NewGoLoader(DocumentSchema())
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var errs []string
	for _, desc := range result.Errors() {
		errs = append(errs, desc.String())
	}
	return fmt.Errorf("input document failed schema validation: %s", strings.Join(errs, "; "))
}
