package trigonometry

import (
	"context"
	"math"

	"github.com/mathdeck/mathdeck/pkg/domain"

	"github.com/rs/zerolog"
)

type TrigonometryTools struct {
	binder      domain.ToolParameterBinder
	logger      zerolog.Logger
	callManager *domain.ToolCallManager
}

func NewTrigonometryTools(deps domain.ToolsetDeps) (*TrigonometryTools, error) {
	tools := &TrigonometryTools{
		binder: deps.ParameterBinder,
		logger: deps.Logger,
	}

	callManager := domain.NewToolCallManager().
		Add(ToolName_Sine, tools.Sine).
		Add(ToolName_Cosine, tools.Cosine).
		Add(ToolName_Tangent, tools.Tangent)

	tools.callManager = callManager

	return tools, nil
}

func (t *TrigonometryTools) Execute(ctx context.Context, input domain.ToolInput) (any, error) {
	return t.callManager.Run(ctx, input.ToolName, input)
}

func (t *TrigonometryTools) Sine(ctx context.Context, input domain.ToolInput) (any, error) {
	p := domain.AngleInput{}

	if err := t.binder.BindToStruct(ctx, input.Arguments, &p, angleProperties()); err != nil {
		return nil, err
	}

	result := math.Sin(radians(p.Angle.Float()))
	t.logger.Info().Msgf("SIN | sin(%v°) = %v", p.Angle.Float(), result)

	return result, nil
}

func (t *TrigonometryTools) Cosine(ctx context.Context, input domain.ToolInput) (any, error) {
	p := domain.AngleInput{}

	if err := t.binder.BindToStruct(ctx, input.Arguments, &p, angleProperties()); err != nil {
		return nil, err
	}

	result := math.Cos(radians(p.Angle.Float()))
	t.logger.Info().Msgf("COS | cos(%v°) = %v", p.Angle.Float(), result)

	return result, nil
}

// Tangent is undefined at odd multiples of 90°. The radian conversion is
// inexact there, so math.Tan returns a very large finite value instead of an
// error; that value is passed through as-is.
func (t *TrigonometryTools) Tangent(ctx context.Context, input domain.ToolInput) (any, error) {
	p := domain.AngleInput{}

	if err := t.binder.BindToStruct(ctx, input.Arguments, &p, angleProperties()); err != nil {
		return nil, err
	}

	result := math.Tan(radians(p.Angle.Float()))
	t.logger.Info().Msgf("TAN | tan(%v°) = %v", p.Angle.Float(), result)

	return result, nil
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
