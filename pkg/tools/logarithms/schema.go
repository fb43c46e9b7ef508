package logarithms

import (
	"github.com/mathdeck/mathdeck/pkg/domain"
)

const (
	ToolName_Logarithm  domain.ToolName = "logarithm"
	ToolName_NaturalLog domain.ToolName = "natural_log"
)

func logProperties() []domain.ToolProperty {
	return []domain.ToolProperty{
		{
			Key:         "value",
			Name:        "Value",
			Description: "The value to take the logarithm of",
			Required:    true,
			Type:        domain.ToolPropertyType_Number,
		},
		{
			Key:         "base",
			Name:        "Base",
			Description: "The logarithm base",
			Required:    false,
			Type:        domain.ToolPropertyType_Number,
			Default:     10,
		},
	}
}

func singleProperties() []domain.ToolProperty {
	return []domain.ToolProperty{
		{
			Key:         "a",
			Name:        "A",
			Description: "Input number",
			Required:    true,
			Type:        domain.ToolPropertyType_Number,
		},
	}
}

var (
	Schema = schema

	schema domain.Toolset = domain.Toolset{
		ID:          domain.ToolsetType_Logarithms,
		Name:        "Logarithms",
		Description: "Logarithms in an arbitrary base and the natural logarithm",
		Tools: []domain.ToolDefinition{
			{
				ID:          string(ToolName_Logarithm),
				ToolName:    ToolName_Logarithm,
				Name:        "Logarithm",
				Description: "Calculates the logarithm of a value in the given base (default 10)",
				Properties:  logProperties(),
			},
			{
				ID:          string(ToolName_NaturalLog),
				ToolName:    ToolName_NaturalLog,
				Name:        "Natural Logarithm",
				Description: "Calculates the natural logarithm of a positive number",
				Properties:  singleProperties(),
			},
		},
	}
)
