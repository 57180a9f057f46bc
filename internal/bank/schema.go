package bank

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://question-bank.json"

// documentSchema is the JSON schema every bank file must satisfy before it
// is decoded. Structural rules that JSON schema cannot express (id
// uniqueness) live in validateModules.
var documentSchema = map[string]any{
	"type":     "object",
	"required": []any{"version", "modules"},
	"properties": map[string]any{
		"version": map[string]any{"type": "string"},
		"title":   map[string]any{"type": "string"},
		"modules": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items":    moduleSchema,
		},
	},
	"additionalProperties": false,
}

var moduleSchema = map[string]any{
	"type":     "object",
	"required": []any{"id", "title", "questions"},
	"properties": map[string]any{
		"id":    map[string]any{"type": "string", "minLength": 1},
		"title": map[string]any{"type": "string"},
		"intro": map[string]any{"type": "string"},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items":    questionSchema,
		},
	},
	"additionalProperties": false,
}

var questionSchema = map[string]any{
	"type":     "object",
	"required": []any{"id", "prompt", "options"},
	"properties": map[string]any{
		"id":     map[string]any{"type": "string", "minLength": 1},
		"prompt": map[string]any{"type": "string"},
		"options": map[string]any{
			"type":     "array",
			"minItems": MinOptions,
			"items":    optionSchema,
		},
	},
	"additionalProperties": false,
}

var optionSchema = map[string]any{
	"type":     "object",
	"required": []any{"text", "trust", "team"},
	"properties": map[string]any{
		"text":   map[string]any{"type": "string", "minLength": 1},
		"result": map[string]any{"type": "string"},
		"trust":  map[string]any{"type": "integer"},
		"team":   map[string]any{"type": "integer"},
		"hint":   map[string]any{"type": "string"},
		"case":   map[string]any{"type": "string"},
		"links": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
	},
	"additionalProperties": false,
}

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	// The compiler wants plain JSON values, so round-trip the Go maps.
	raw, err := json.Marshal(documentSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var def any
	if err := json.Unmarshal(raw, &def); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
})

// validateSchema checks a generic decoded document against documentSchema.
func validateSchema(doc any) error {
	sch, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile bank schema: %w", err)
	}
	// yaml.v3 produces Go ints and nested interface maps; normalise to the
	// JSON value model the validator expects.
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	var normalised any
	if err := json.Unmarshal(raw, &normalised); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := sch.Validate(normalised); err != nil {
		return fmt.Errorf("%w: schema validation failed: %v", ErrMalformed, err)
	}
	return nil
}
