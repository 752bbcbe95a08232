package deck

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// deckSchema describes the on-disk deck shape for JSON decks. TOML and YAML
// decks rely on the same post-decode validation in parse.go; JSON decks are
// additionally checked against this schema before decoding so authors get
// structural errors with JSON Pointer locations.
var deckSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"format": map[string]any{
			"type":        "string",
			"description": "Deck format version, e.g. v1.0.0",
		},
		"title": map[string]any{
			"type":        "string",
			"description": "Human-readable chapter/topic title",
		},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":   map[string]any{"type": "string"},
					"type": map[string]any{"enum": []any{"MultipleChoice", "Tracing"}},
					"prompt": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"prompt":  map[string]any{"type": "string"},
							"code":    map[string]any{"type": "string"},
							"program": map[string]any{"type": "string"},
						},
						"additionalProperties": false,
					},
					"answer": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"answer": map[string]any{"type": "string"},
							"distractors": map[string]any{
								"type":  "array",
								"items": map[string]any{"type": "string"},
							},
							"doesCompile": map[string]any{"type": "boolean"},
							"lineNumber":  map[string]any{"type": "integer"},
							"stdout":      map[string]any{"type": "string"},
						},
						"additionalProperties": false,
					},
					"context": map[string]any{"type": "string"},
				},
				"required":             []any{"id", "type", "prompt", "answer"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"format", "questions"},
	"additionalProperties": false,
}

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// compiledDeckSchema compiles deckSchema once and caches the result.
func compiledDeckSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not Go maps
		// holding typed values. Round-trip through encoding/json to get a
		// clean representation.
		raw, err := json.Marshal(deckSchema)
		if err != nil {
			schemaErr = fmt.Errorf("marshal deck schema: %w", err)
			return
		}
		var parsed any
		if err := json.Unmarshal(raw, &parsed); err != nil {
			schemaErr = fmt.Errorf("parse deck schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://bookquiz-deck.json"
		if err := c.AddResource(url, parsed); err != nil {
			schemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(url)
	})
	return compiledSchema, schemaErr
}

// validateJSON checks a raw JSON deck against the deck schema.
func validateJSON(data []byte) error {
	schema, err := compiledDeckSchema()
	if err != nil {
		return err
	}
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("deck schema: %w", err)
	}
	return nil
}
