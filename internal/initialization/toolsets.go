package initialization

import (
	"context"

	"github.com/mathdeck/mathdeck/pkg/domain"
	"github.com/mathdeck/mathdeck/pkg/tools/arithmetic"
	"github.com/mathdeck/mathdeck/pkg/tools/integers"
	"github.com/mathdeck/mathdeck/pkg/tools/logarithms"
	"github.com/mathdeck/mathdeck/pkg/tools/statistics"
	"github.com/mathdeck/mathdeck/pkg/tools/trigonometry"

	"github.com/rs/zerolog/log"
)

type ToolsetRegisterParams struct {
	Schema      domain.Toolset
	NewExecutor func(deps domain.ToolsetDeps) (domain.ToolExecutor, error)
}

var toolsetRegisterParams = []ToolsetRegisterParams{
	{
		Schema: arithmetic.Schema,
		NewExecutor: func(deps domain.ToolsetDeps) (domain.ToolExecutor, error) {
			return arithmetic.NewArithmeticTools(deps)
		},
	},
	{
		Schema: logarithms.Schema,
		NewExecutor: func(deps domain.ToolsetDeps) (domain.ToolExecutor, error) {
			return logarithms.NewLogarithmTools(deps)
		},
	},
	{
		Schema: trigonometry.Schema,
		NewExecutor: func(deps domain.ToolsetDeps) (domain.ToolExecutor, error) {
			return trigonometry.NewTrigonometryTools(deps)
		},
	},
	{
		Schema: integers.Schema,
		NewExecutor: func(deps domain.ToolsetDeps) (domain.ToolExecutor, error) {
			return integers.NewIntegerTools(deps)
		},
	},
	{
		Schema: statistics.Schema,
		NewExecutor: func(deps domain.ToolsetDeps) (domain.ToolExecutor, error) {
			return statistics.NewStatisticsTools(deps)
		},
	},
}

type RegisterToolsetsParams struct {
	Registry *domain.ToolRegistry
	Deps     domain.ToolsetDeps
}

func RegisterToolsets(ctx context.Context, p RegisterToolsetsParams) error {
	for _, params := range toolsetRegisterParams {
		log.Info().Msgf("Registering toolset %s with %d tools", params.Schema.ID, len(params.Schema.Tools))

		executor, err := params.NewExecutor(p.Deps)
		if err != nil {
			return err
		}

		if err := p.Registry.RegisterToolset(params.Schema, executor); err != nil {
			return err
		}
	}

	return nil
}
