package statistics

import (
	"context"
	"math"
	"sort"

	"github.com/mathdeck/mathdeck/pkg/domain"

	"github.com/rs/zerolog"
)

type StatisticsTools struct {
	binder      domain.ToolParameterBinder
	logger      zerolog.Logger
	callManager *domain.ToolCallManager
}

func NewStatisticsTools(deps domain.ToolsetDeps) (*StatisticsTools, error) {
	tools := &StatisticsTools{
		binder: deps.ParameterBinder,
		logger: deps.Logger,
	}

	callManager := domain.NewToolCallManager().
		Add(ToolName_Mean, tools.Mean).
		Add(ToolName_Median, tools.Median).
		Add(ToolName_StandardDeviation, tools.StandardDeviation)

	tools.callManager = callManager

	return tools, nil
}

func (t *StatisticsTools) Execute(ctx context.Context, input domain.ToolInput) (any, error) {
	return t.callManager.Run(ctx, input.ToolName, input)
}

func (t *StatisticsTools) Mean(ctx context.Context, input domain.ToolInput) (any, error) {
	p := domain.ListInput{}

	if err := t.binder.BindToStruct(ctx, input.Arguments, &p, listProperties()); err != nil {
		return nil, err
	}

	numbers := p.Floats()
	if len(numbers) == 0 {
		return nil, domain.NewDomainError("Cannot calculate mean of an empty list.")
	}

	result := sum(numbers) / float64(len(numbers))
	t.logger.Info().Msgf("MEAN | mean(%v) = %v", numbers, result)

	return result, nil
}

func (t *StatisticsTools) Median(ctx context.Context, input domain.ToolInput) (any, error) {
	p := domain.ListInput{}

	if err := t.binder.BindToStruct(ctx, input.Arguments, &p, listProperties()); err != nil {
		return nil, err
	}

	numbers := p.Floats()
	if len(numbers) == 0 {
		return nil, domain.NewDomainError("Cannot calculate median of an empty list.")
	}

	sorted := make([]float64, len(numbers))
	copy(sorted, numbers)
	sort.Float64s(sorted)

	middle := len(sorted) / 2

	var result float64
	if len(sorted)%2 == 0 {
		result = (sorted[middle-1] + sorted[middle]) / 2
	} else {
		result = sorted[middle]
	}

	t.logger.Info().Msgf("MEDIAN | median(%v) = %v", numbers, result)

	return result, nil
}

// StandardDeviation computes the sample standard deviation (n-1 denominator).
func (t *StatisticsTools) StandardDeviation(ctx context.Context, input domain.ToolInput) (any, error) {
	p := domain.ListInput{}

	if err := t.binder.BindToStruct(ctx, input.Arguments, &p, listProperties()); err != nil {
		return nil, err
	}

	numbers := p.Floats()
	if len(numbers) < 2 {
		return nil, domain.NewDomainError("Standard deviation requires at least 2 numbers.")
	}

	mean := sum(numbers) / float64(len(numbers))

	var squaredDiffs float64
	for _, n := range numbers {
		squaredDiffs += (n - mean) * (n - mean)
	}

	result := math.Sqrt(squaredDiffs / float64(len(numbers)-1))
	t.logger.Info().Msgf("STDDEV | stddev(%v) = %v", numbers, result)

	return result, nil
}

func sum(numbers []float64) float64 {
	var total float64
	for _, n := range numbers {
		total += n
	}

	return total
}
