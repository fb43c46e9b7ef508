package arithmetic

import (
	"context"
	"math"

	"github.com/mathdeck/mathdeck/pkg/domain"

	"github.com/rs/zerolog"
)

type ArithmeticTools struct {
	binder      domain.ToolParameterBinder
	logger      zerolog.Logger
	callManager *domain.ToolCallManager
}

func NewArithmeticTools(deps domain.ToolsetDeps) (*ArithmeticTools, error) {
	tools := &ArithmeticTools{
		binder: deps.ParameterBinder,
		logger: deps.Logger,
	}

	callManager := domain.NewToolCallManager().
		Add(ToolName_Add, tools.Add).
		Add(ToolName_Subtract, tools.Subtract).
		Add(ToolName_Multiply, tools.Multiply).
		Add(ToolName_Divide, tools.Divide).
		Add(ToolName_Modulus, tools.Modulus).
		Add(ToolName_Power, tools.Power).
		Add(ToolName_Square, tools.Square).
		Add(ToolName_Sqrt, tools.Sqrt).
		Add(ToolName_Absolute, tools.Absolute).
		Add(ToolName_Ceiling, tools.Ceiling).
		Add(ToolName_Floor, tools.Floor)

	tools.callManager = callManager

	return tools, nil
}

func (t *ArithmeticTools) Execute(ctx context.Context, input domain.ToolInput) (any, error) {
	return t.callManager.Run(ctx, input.ToolName, input)
}

func (t *ArithmeticTools) Add(ctx context.Context, input domain.ToolInput) (any, error) {
	p := domain.PairInput{}

	if err := t.binder.BindToStruct(ctx, input.Arguments, &p, pairProperties()); err != nil {
		return nil, err
	}

	result := p.A.Float() + p.B.Float()
	t.logger.Info().Msgf("ADD | %v + %v = %v", p.A.Float(), p.B.Float(), result)

	return result, nil
}

func (t *ArithmeticTools) Subtract(ctx context.Context, input domain.ToolInput) (any, error) {
	p := domain.PairInput{}

	if err := t.binder.BindToStruct(ctx, input.Arguments, &p, pairProperties()); err != nil {
		return nil, err
	}

	result := p.A.Float() - p.B.Float()
	t.logger.Info().Msgf("SUB | %v - %v = %v", p.A.Float(), p.B.Float(), result)

	return result, nil
}

func (t *ArithmeticTools) Multiply(ctx context.Context, input domain.ToolInput) (any, error) {
	p := domain.PairInput{}

	if err := t.binder.BindToStruct(ctx, input.Arguments, &p, pairProperties()); err != nil {
		return nil, err
	}

	result := p.A.Float() * p.B.Float()
	t.logger.Info().Msgf("MUL | %v * %v = %v", p.A.Float(), p.B.Float(), result)

	return result, nil
}

func (t *ArithmeticTools) Divide(ctx context.Context, input domain.ToolInput) (any, error) {
	p := domain.PairInput{}

	if err := t.binder.BindToStruct(ctx, input.Arguments, &p, pairProperties()); err != nil {
		return nil, err
	}

	if p.B == 0 {
		return nil, domain.NewDomainError("Division by zero is not allowed.")
	}

	result := p.A.Float() / p.B.Float()
	t.logger.Info().Msgf("DIV | %v / %v = %v", p.A.Float(), p.B.Float(), result)

	return result, nil
}

// Modulus uses Go's math.Mod convention: the result keeps the sign of the
// dividend.
func (t *ArithmeticTools) Modulus(ctx context.Context, input domain.ToolInput) (any, error) {
	p := domain.PairInput{}

	if err := t.binder.BindToStruct(ctx, input.Arguments, &p, pairProperties()); err != nil {
		return nil, err
	}

	if p.B == 0 {
		return nil, domain.NewDomainError("Modulus by zero is not allowed.")
	}

	result := math.Mod(p.A.Float(), p.B.Float())
	t.logger.Info().Msgf("MOD | %v %% %v = %v", p.A.Float(), p.B.Float(), result)

	return result, nil
}

func (t *ArithmeticTools) Power(ctx context.Context, input domain.ToolInput) (any, error) {
	p := domain.PowerInput{}

	if err := t.binder.BindToStruct(ctx, input.Arguments, &p, powerProperties()); err != nil {
		return nil, err
	}

	result := math.Pow(p.Base.Float(), p.Exponent.Float())
	t.logger.Info().Msgf("POW | %v ^ %v = %v", p.Base.Float(), p.Exponent.Float(), result)

	return result, nil
}

func (t *ArithmeticTools) Square(ctx context.Context, input domain.ToolInput) (any, error) {
	p := domain.SingleInput{}

	if err := t.binder.BindToStruct(ctx, input.Arguments, &p, singleProperties()); err != nil {
		return nil, err
	}

	result := p.A.Float() * p.A.Float()
	t.logger.Info().Msgf("SQUARE | %v^2 = %v", p.A.Float(), result)

	return result, nil
}

func (t *ArithmeticTools) Sqrt(ctx context.Context, input domain.ToolInput) (any, error) {
	p := domain.SingleInput{}

	if err := t.binder.BindToStruct(ctx, input.Arguments, &p, singleProperties()); err != nil {
		return nil, err
	}

	if p.A < 0 {
		return nil, domain.NewDomainError("Square root of negative number is not allowed.")
	}

	result := math.Sqrt(p.A.Float())
	t.logger.Info().Msgf("SQRT | √%v = %v", p.A.Float(), result)

	return result, nil
}

func (t *ArithmeticTools) Absolute(ctx context.Context, input domain.ToolInput) (any, error) {
	p := domain.SingleInput{}

	if err := t.binder.BindToStruct(ctx, input.Arguments, &p, singleProperties()); err != nil {
		return nil, err
	}

	result := math.Abs(p.A.Float())
	t.logger.Info().Msgf("ABS | |%v| = %v", p.A.Float(), result)

	return result, nil
}

func (t *ArithmeticTools) Ceiling(ctx context.Context, input domain.ToolInput) (any, error) {
	p := domain.SingleInput{}

	if err := t.binder.BindToStruct(ctx, input.Arguments, &p, singleProperties()); err != nil {
		return nil, err
	}

	result := math.Ceil(p.A.Float())
	t.logger.Info().Msgf("CEIL | ceil(%v) = %v", p.A.Float(), result)

	return result, nil
}

func (t *ArithmeticTools) Floor(ctx context.Context, input domain.ToolInput) (any, error) {
	p := domain.SingleInput{}

	if err := t.binder.BindToStruct(ctx, input.Arguments, &p, singleProperties()); err != nil {
		return nil, err
	}

	result := math.Floor(p.A.Float())
	t.logger.Info().Msgf("FLOOR | floor(%v) = %v", p.A.Float(), result)

	return result, nil
}
