package content

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// dataSchema pairs a schema name with its definition for compilation.
type dataSchema struct {
	Name       string
	Definition map[string]any
}

var questionListSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{"type": "string", "minLength": 1},
			"options": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string", "minLength": 1},
				"minItems": 2,
			},
		},
		"required":             []any{"question", "options"},
		"additionalProperties": false,
	},
}

// quizSchema constrains the question datasets: both instruments present,
// MBTI with exactly 21 questions and DISC with exactly 20.
var quizSchema = &dataSchema{
	Name: "quizzes",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"MBTI": merge(questionListSchema, map[string]any{"minItems": 21, "maxItems": 21}),
			"DISC": merge(questionListSchema, map[string]any{"minItems": 20, "maxItems": 20}),
		},
		"required":             []any{"MBTI", "DISC"},
		"additionalProperties": false,
	},
}

// catalogSchema constrains the personality catalog: codes map to entries
// with a display name, description, and image reference.
var catalogSchema = &dataSchema{
	Name: "personality-types",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"MBTI": map[string]any{
				"type": "object",
				"patternProperties": map[string]any{
					"^[IE][NS][TF][JP]$": catalogEntrySchema,
				},
				"additionalProperties": false,
			},
			"DISC": map[string]any{
				"type": "object",
				"patternProperties": map[string]any{
					"^D?I?S?C?$": catalogEntrySchema,
				},
				"additionalProperties": false,
			},
		},
		"required":             []any{"MBTI", "DISC"},
		"additionalProperties": false,
	},
}

var catalogEntrySchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"name":        map[string]any{"type": "string", "minLength": 1},
		"description": map[string]any{"type": "string", "minLength": 1},
		"imageUrl":    map[string]any{"type": "string", "minLength": 1},
	},
	"required":             []any{"name", "description", "imageUrl"},
	"additionalProperties": false,
}

func merge(base map[string]any, extra map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

// schemaCache caches compiled schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// validate checks raw JSON against the given schema definition.
func validate(schema *dataSchema, raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := compiledSchema(schema)
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", schema.Name, err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// compiledSchema returns a cached compiled schema or compiles and caches it.
func compiledSchema(schema *dataSchema) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(schema.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The jsonschema library expects a parsed JSON value (any), not raw bytes.
	defBytes, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", schema.Name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(schema.Name, compiled)
	return compiled, nil
}
