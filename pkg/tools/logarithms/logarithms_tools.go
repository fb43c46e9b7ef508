package logarithms

import (
	"context"
	"math"

	"github.com/mathdeck/mathdeck/pkg/domain"

	"github.com/rs/zerolog"
)

type LogarithmTools struct {
	binder      domain.ToolParameterBinder
	logger      zerolog.Logger
	callManager *domain.ToolCallManager
}

func NewLogarithmTools(deps domain.ToolsetDeps) (*LogarithmTools, error) {
	tools := &LogarithmTools{
		binder: deps.ParameterBinder,
		logger: deps.Logger,
	}

	callManager := domain.NewToolCallManager().
		Add(ToolName_Logarithm, tools.Logarithm).
		Add(ToolName_NaturalLog, tools.NaturalLog)

	tools.callManager = callManager

	return tools, nil
}

func (t *LogarithmTools) Execute(ctx context.Context, input domain.ToolInput) (any, error) {
	return t.callManager.Run(ctx, input.ToolName, input)
}

func (t *LogarithmTools) Logarithm(ctx context.Context, input domain.ToolInput) (any, error) {
	p := domain.LogInput{}

	if err := t.binder.BindToStruct(ctx, input.Arguments, &p, logProperties()); err != nil {
		return nil, err
	}

	if p.Value <= 0 {
		return nil, domain.NewDomainError("Logarithm is only defined for positive values.")
	}

	if p.Base <= 0 || p.Base == 1 {
		return nil, domain.NewDomainError("Logarithm base must be positive and not equal to 1.")
	}

	result := math.Log(p.Value.Float()) / math.Log(p.Base.Float())
	t.logger.Info().Msgf("LOG | log_%v(%v) = %v", p.Base.Float(), p.Value.Float(), result)

	return result, nil
}

func (t *LogarithmTools) NaturalLog(ctx context.Context, input domain.ToolInput) (any, error) {
	p := domain.SingleInput{}

	if err := t.binder.BindToStruct(ctx, input.Arguments, &p, singleProperties()); err != nil {
		return nil, err
	}

	if p.A <= 0 {
		return nil, domain.NewDomainError("Natural log is only defined for positive values.")
	}

	result := math.Log(p.A.Float())
	t.logger.Info().Msgf("LN | ln(%v) = %v", p.A.Float(), result)

	return result, nil
}
