package arithmetic

import (
	"github.com/mathdeck/mathdeck/pkg/domain"
)

const (
	ToolName_Add      domain.ToolName = "add"
	ToolName_Subtract domain.ToolName = "subtract"
	ToolName_Multiply domain.ToolName = "multiply"
	ToolName_Divide   domain.ToolName = "divide"
	ToolName_Modulus  domain.ToolName = "modulus"
	ToolName_Power    domain.ToolName = "power"
	ToolName_Square   domain.ToolName = "square"
	ToolName_Sqrt     domain.ToolName = "sqrt"
	ToolName_Absolute domain.ToolName = "absolute"
	ToolName_Ceiling  domain.ToolName = "ceiling"
	ToolName_Floor    domain.ToolName = "floor"
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

func powerProperties() []domain.ToolProperty {
	return []domain.ToolProperty{
		{
			Key:         "base",
			Name:        "Base",
			Description: "The base value",
			Required:    true,
			Type:        domain.ToolPropertyType_Number,
		},
		{
			Key:         "exponent",
			Name:        "Exponent",
			Description: "The exponent value",
			Required:    true,
			Type:        domain.ToolPropertyType_Number,
		},
	}
}

var (
	Schema = schema

	schema domain.Toolset = domain.Toolset{
		ID:          domain.ToolsetType_Arithmetic,
		Name:        "Arithmetic",
		Description: "Basic arithmetic operations on real numbers",
		Tools: []domain.ToolDefinition{
			{
				ID:          string(ToolName_Add),
				ToolName:    ToolName_Add,
				Name:        "Add",
				Description: "Adds two numbers",
				Properties:  pairProperties(),
			},
			{
				ID:          string(ToolName_Subtract),
				ToolName:    ToolName_Subtract,
				Name:        "Subtract",
				Description: "Subtracts the second number from the first",
				Properties:  pairProperties(),
			},
			{
				ID:          string(ToolName_Multiply),
				ToolName:    ToolName_Multiply,
				Name:        "Multiply",
				Description: "Multiplies two numbers",
				Properties:  pairProperties(),
			},
			{
				ID:          string(ToolName_Divide),
				ToolName:    ToolName_Divide,
				Name:        "Divide",
				Description: "Divides the first number by the second",
				Properties:  pairProperties(),
			},
			{
				ID:          string(ToolName_Modulus),
				ToolName:    ToolName_Modulus,
				Name:        "Modulus",
				Description: "Calculates the remainder of dividing the first number by the second",
				Properties:  pairProperties(),
			},
			{
				ID:          string(ToolName_Power),
				ToolName:    ToolName_Power,
				Name:        "Power",
				Description: "Raises a base to an exponent",
				Properties:  powerProperties(),
			},
			{
				ID:          string(ToolName_Square),
				ToolName:    ToolName_Square,
				Name:        "Square",
				Description: "Squares a number",
				Properties:  singleProperties(),
			},
			{
				ID:          string(ToolName_Sqrt),
				ToolName:    ToolName_Sqrt,
				Name:        "Square Root",
				Description: "Calculates the square root of a non-negative number",
				Properties:  singleProperties(),
			},
			{
				ID:          string(ToolName_Absolute),
				ToolName:    ToolName_Absolute,
				Name:        "Absolute Value",
				Description: "Calculates the absolute value of a number",
				Properties:  singleProperties(),
			},
			{
				ID:          string(ToolName_Ceiling),
				ToolName:    ToolName_Ceiling,
				Name:        "Ceiling",
				Description: "Rounds a number up to the nearest integer",
				Properties:  singleProperties(),
			},
			{
				ID:          string(ToolName_Floor),
				ToolName:    ToolName_Floor,
				Name:        "Floor",
				Description: "Rounds a number down to the nearest integer",
				Properties:  singleProperties(),
			},
		},
	}
)
