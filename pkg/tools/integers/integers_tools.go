package integers

import (
	"context"
	"math/big"

	"github.com/mathdeck/mathdeck/pkg/domain"

	"github.com/rs/zerolog"
)

type IntegerTools struct {
	binder      domain.ToolParameterBinder
	logger      zerolog.Logger
	callManager *domain.ToolCallManager
}

func NewIntegerTools(deps domain.ToolsetDeps) (*IntegerTools, error) {
	tools := &IntegerTools{
		binder: deps.ParameterBinder,
		logger: deps.Logger,
	}

	callManager := domain.NewToolCallManager().
		Add(ToolName_Factorial, tools.Factorial).
		Add(ToolName_GCD, tools.GCD).
		Add(ToolName_LCM, tools.LCM)

	tools.callManager = callManager

	return tools, nil
}

func (t *IntegerTools) Execute(ctx context.Context, input domain.ToolInput) (any, error) {
	return t.callManager.Run(ctx, input.ToolName, input)
}

func (t *IntegerTools) Factorial(ctx context.Context, input domain.ToolInput) (any, error) {
	p := domain.SingleInput{}

	if err := t.binder.BindToStruct(ctx, input.Arguments, &p, singleProperties()); err != nil {
		return nil, err
	}

	if p.A < 0 {
		return nil, domain.NewDomainError("Factorial of negative number is not allowed.")
	}

	if !p.A.IsIntegral() {
		return nil, domain.NewDomainError("Factorial is only defined for integers.")
	}

	value := integral(p.A)
	if !value.IsInt64() {
		return nil, domain.NewDomainError("Factorial input is too large.")
	}

	// MulRange of an empty range is 1, which covers 0!.
	result := new(big.Int).MulRange(1, value.Int64())
	t.logger.Info().Msgf("FACTORIAL | %s! = %s", value.String(), result.String())

	return result, nil
}

func (t *IntegerTools) GCD(ctx context.Context, input domain.ToolInput) (any, error) {
	p := domain.PairInput{}

	if err := t.binder.BindToStruct(ctx, input.Arguments, &p, pairProperties()); err != nil {
		return nil, err
	}

	if !p.A.IsIntegral() || !p.B.IsIntegral() {
		return nil, domain.NewDomainError("GCD is only defined for integers.")
	}

	a := integral(p.A)
	b := integral(p.B)

	result := new(big.Int).GCD(nil, nil, a, b)
	t.logger.Info().Msgf("GCD | gcd(%s, %s) = %s", a.String(), b.String(), result.String())

	return result, nil
}

func (t *IntegerTools) LCM(ctx context.Context, input domain.ToolInput) (any, error) {
	p := domain.PairInput{}

	if err := t.binder.BindToStruct(ctx, input.Arguments, &p, pairProperties()); err != nil {
		return nil, err
	}

	if !p.A.IsIntegral() || !p.B.IsIntegral() {
		return nil, domain.NewDomainError("LCM is only defined for integers.")
	}

	a := integral(p.A)
	b := integral(p.B)

	result := lcm(a, b)
	t.logger.Info().Msgf("LCM | lcm(%s, %s) = %s", a.String(), b.String(), result.String())

	return result, nil
}

// integral converts a whole-valued Number to a big.Int. Going through
// big.Float keeps values beyond the int64 range exact.
func integral(n domain.Number) *big.Int {
	i, _ := new(big.Float).SetFloat64(n.Float()).Int(nil)
	return i
}

// lcm computes |a*b| / gcd(a, b), with lcm(0, 0) = 0.
func lcm(a, b *big.Int) *big.Int {
	g := new(big.Int).GCD(nil, nil, a, b)
	if g.Sign() == 0 {
		return new(big.Int)
	}

	result := new(big.Int).Quo(a, g)
	result.Mul(result, b)

	return result.Abs(result)
}
