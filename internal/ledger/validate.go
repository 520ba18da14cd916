package ledger

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/tidebooks/tidebooks/constants"
)

// entrySchema guards the manual-entry and manual-correction flows: records
// arriving as JSON must look like a ledger entry before they are projected.
var entrySchema = map[string]any{
	"type":                 "object",
	"additionalProperties": false,
	"required":             []any{"company_name", "date", "store_name", "total", "items"},
	"properties": map[string]any{
		"company_name": map[string]any{"type": "string", "minLength": 1},
		"date":         map[string]any{"type": "string", "minLength": 1},
		"store_name":   map[string]any{"type": "string", "minLength": 1},
		"total":        map[string]any{"type": "number", "minimum": 0},
		"needs_review": map[string]any{"type": "boolean"},
		"items": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"required":             []any{"name", "price"},
				"properties": map[string]any{
					"name":     map[string]any{"type": "string", "minLength": 1},
					"price":    map[string]any{"type": "string", "pattern": `^\$?\d+(\.\d{2})?$`},
					"category": map[string]any{"type": "string", "enum": toAnySlice(constants.AsStringSlice())},
				},
			},
		},
	},
}

func toAnySlice(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

// ValidateEntryJSON validates a manual-entry record against the entry schema.
func ValidateEntryJSON(data []byte) error {
	b, err := json.Marshal(entrySchema)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("entry.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("entry.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal entry: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("entry does not match schema: %w", err)
	}
	return nil
}
