package domain

import (
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"
)

// Numeric properties admit strings so integer-like and string-numeric payloads
// reach the binder, which owns the lossless-coercion check.
var numericTypes = []string{"number", "integer", "string"}

// BuildInputSchema derives the JSON Schema for a tool's argument payload from
// its property list. The same schema is served on the listing endpoint and
// compiled for shape validation at registration time.
func BuildInputSchema(def ToolDefinition) *jsonschema.Schema {
	properties := make(map[string]*jsonschema.Schema, len(def.Properties))
	required := make([]string, 0, len(def.Properties))

	for _, prop := range def.Properties {
		properties[prop.Key] = propertySchema(prop)

		if prop.Required {
			required = append(required, prop.Key)
		}
	}

	return &jsonschema.Schema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
}

func propertySchema(prop ToolProperty) *jsonschema.Schema {
	sch := &jsonschema.Schema{
		Description: prop.Description,
	}

	switch prop.Type {
	case ToolPropertyType_Array:
		sch.Type = "array"
		sch.Items = &jsonschema.Schema{Types: numericTypes}
	default:
		sch.Types = numericTypes
	}

	if prop.Default != nil {
		if raw, err := json.Marshal(prop.Default); err == nil {
			sch.Default = json.RawMessage(raw)
		}
	}

	return sch
}
