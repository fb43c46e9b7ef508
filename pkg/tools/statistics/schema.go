package statistics

import (
	"github.com/mathdeck/mathdeck/pkg/domain"
)

const (
	ToolName_Mean              domain.ToolName = "mean"
	ToolName_Median            domain.ToolName = "median"
	ToolName_StandardDeviation domain.ToolName = "standard_deviation"
)

func listProperties() []domain.ToolProperty {
	return []domain.ToolProperty{
		{
			Key:         "numbers",
			Name:        "Numbers",
			Description: "The list of numbers",
			Required:    true,
			Type:        domain.ToolPropertyType_Array,
			ItemType:    domain.ToolPropertyType_Number,
		},
	}
}

var (
	Schema = schema

	schema domain.Toolset = domain.Toolset{
		ID:          domain.ToolsetType_Statistics,
		Name:        "Statistics",
		Description: "Descriptive statistics over a list of numbers",
		Tools: []domain.ToolDefinition{
			{
				ID:          string(ToolName_Mean),
				ToolName:    ToolName_Mean,
				Name:        "Mean",
				Description: "Calculates the arithmetic mean of a list of numbers",
				Properties:  listProperties(),
			},
			{
				ID:          string(ToolName_Median),
				ToolName:    ToolName_Median,
				Name:        "Median",
				Description: "Calculates the median of a list of numbers",
				Properties:  listProperties(),
			},
			{
				ID:          string(ToolName_StandardDeviation),
				ToolName:    ToolName_StandardDeviation,
				Name:        "Standard Deviation",
				Description: "Calculates the sample standard deviation of a list of numbers",
				Properties:  listProperties(),
			},
		},
	}
)
