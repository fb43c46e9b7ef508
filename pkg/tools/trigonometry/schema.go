package trigonometry

import (
	"github.com/mathdeck/mathdeck/pkg/domain"
)

const (
	ToolName_Sine    domain.ToolName = "sine"
	ToolName_Cosine  domain.ToolName = "cosine"
	ToolName_Tangent domain.ToolName = "tangent"
)

func angleProperties() []domain.ToolProperty {
	return []domain.ToolProperty{
		{
			Key:         "angle",
			Name:        "Angle",
			Description: "The angle in degrees",
			Required:    true,
			Type:        domain.ToolPropertyType_Number,
		},
	}
}

var (
	Schema = schema

	schema domain.Toolset = domain.Toolset{
		ID:          domain.ToolsetType_Trigonometry,
		Name:        "Trigonometry",
		Description: "Trigonometric functions of angles given in degrees",
		Tools: []domain.ToolDefinition{
			{
				ID:          string(ToolName_Sine),
				ToolName:    ToolName_Sine,
				Name:        "Sine",
				Description: "Calculates the sine of an angle in degrees",
				Properties:  angleProperties(),
			},
			{
				ID:          string(ToolName_Cosine),
				ToolName:    ToolName_Cosine,
				Name:        "Cosine",
				Description: "Calculates the cosine of an angle in degrees",
				Properties:  angleProperties(),
			},
			{
				ID:          string(ToolName_Tangent),
				ToolName:    ToolName_Tangent,
				Name:        "Tangent",
				Description: "Calculates the tangent of an angle in degrees",
				Properties:  angleProperties(),
			},
		},
	}
)
