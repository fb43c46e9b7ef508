package integers

import (
	"github.com/mathdeck/mathdeck/pkg/domain"
)

const (
	ToolName_Factorial domain.ToolName = "factorial"
	ToolName_GCD       domain.ToolName = "gcd"
	ToolName_LCM       domain.ToolName = "lcm"
)

func pairProperties() []domain.ToolProperty {
	return []domain.ToolProperty{
		{
			Key:         "a",
			Name:        "A",
			Description: "First number",
			Required:    true,
			Type:        domain.ToolPropertyType_Number,
		},
		{
			Key:         "b",
			Name:        "B",
			Description: "Second number",
			Required:    true,
			Type:        domain.ToolPropertyType_Number,
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
		ID:          domain.ToolsetType_Integers,
		Name:        "Integers",
		Description: "Exact integer operations with arbitrary-precision results",
		Tools: []domain.ToolDefinition{
			{
				ID:          string(ToolName_Factorial),
				ToolName:    ToolName_Factorial,
				Name:        "Factorial",
				Description: "Calculates the exact factorial of a non-negative integer",
				Properties:  singleProperties(),
			},
			{
				ID:          string(ToolName_GCD),
				ToolName:    ToolName_GCD,
				Name:        "Greatest Common Divisor",
				Description: "Calculates the greatest common divisor of two integers",
				Properties:  pairProperties(),
			},
			{
				ID:          string(ToolName_LCM),
				ToolName:    ToolName_LCM,
				Name:        "Least Common Multiple",
				Description: "Calculates the least common multiple of two integers",
				Properties:  pairProperties(),
			},
		},
	}
)
