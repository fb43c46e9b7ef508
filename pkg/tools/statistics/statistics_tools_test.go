package statistics

import (
	"context"
	"testing"

	"github.com/mathdeck/mathdeck/pkg/binders"
	"github.com/mathdeck/mathdeck/pkg/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T) *domain.ToolRegistry {
	t.Helper()

	binder := binders.NewJSONParameterBinder(binders.DefaultJSONParameterBinderOptions())

	tools, err := NewStatisticsTools(domain.ToolsetDeps{
		ParameterBinder: binder,
		Logger:          zerolog.Nop(),
	})
	require.NoError(t, err)

	registry := domain.NewToolRegistry()
	require.NoError(t, registry.RegisterToolset(Schema, tools))

	return registry
}

func numberList(values ...float64) map[string]any {
	list := make([]any, 0, len(values))
	for _, v := range values {
		list = append(list, v)
	}

	return map[string]any{"numbers": list}
}

func TestStatisticsTools_Mean(t *testing.T) {
	registry := newTestRegistry(t)
	ctx := context.Background()

	t.Run("mean of a list", func(t *testing.T) {
		response, err := registry.Call(ctx, ToolName_Mean, numberList(1, 2, 3, 4))
		require.NoError(t, err)

		require.Equal(t, domain.ResponseStatus_Success, response.Status)
		assert.Equal(t, 2.5, response.Result)
	})

	t.Run("mean of a single element", func(t *testing.T) {
		response, err := registry.Call(ctx, ToolName_Mean, numberList(7))
		require.NoError(t, err)

		require.Equal(t, domain.ResponseStatus_Success, response.Status)
		assert.Equal(t, 7.0, response.Result)
	})

	t.Run("empty list is a domain error", func(t *testing.T) {
		response, err := registry.Call(ctx, ToolName_Mean, numberList())
		require.NoError(t, err)

		assert.Equal(t, domain.ResponseStatus_Error, response.Status)
		assert.Equal(t, "Cannot calculate mean of an empty list.", response.Message)
	})
}

func TestStatisticsTools_Median(t *testing.T) {
	registry := newTestRegistry(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{name: "even count averages the middle pair", values: []float64{1, 2, 3, 4}, expected: 2.5},
		{name: "odd count picks the middle element", values: []float64{1, 3, 5}, expected: 3},
		{name: "unsorted input", values: []float64{5, 1, 3}, expected: 3},
		{name: "single element", values: []float64{9}, expected: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response, err := registry.Call(ctx, ToolName_Median, numberList(tt.values...))
			require.NoError(t, err)

			require.Equal(t, domain.ResponseStatus_Success, response.Status)
			assert.Equal(t, tt.expected, response.Result)
		})
	}

	t.Run("empty list is a domain error", func(t *testing.T) {
		response, err := registry.Call(ctx, ToolName_Median, numberList())
		require.NoError(t, err)

		assert.Equal(t, domain.ResponseStatus_Error, response.Status)
		assert.Equal(t, "Cannot calculate median of an empty list.", response.Message)
	})

	t.Run("median does not mutate the input order", func(t *testing.T) {
		args := numberList(5, 1, 3)

		_, err := registry.Call(ctx, ToolName_Median, args)
		require.NoError(t, err)

		assert.Equal(t, []any{5.0, 1.0, 3.0}, args["numbers"])
	})
}

func TestStatisticsTools_StandardDeviation(t *testing.T) {
	registry := newTestRegistry(t)
	ctx := context.Background()

	t.Run("sample standard deviation", func(t *testing.T) {
		response, err := registry.Call(ctx, ToolName_StandardDeviation, numberList(2, 4, 4, 4, 5, 5, 7, 9))
		require.NoError(t, err)

		require.Equal(t, domain.ResponseStatus_Success, response.Status)
		assert.InDelta(t, 2.138089935, response.Result.(float64), 1e-6)
	})

	t.Run("identical values have zero deviation", func(t *testing.T) {
		response, err := registry.Call(ctx, ToolName_StandardDeviation, numberList(3, 3, 3))
		require.NoError(t, err)

		require.Equal(t, domain.ResponseStatus_Success, response.Status)
		assert.Equal(t, 0.0, response.Result)
	})

	t.Run("fewer than two numbers is a domain error", func(t *testing.T) {
		response, err := registry.Call(ctx, ToolName_StandardDeviation, numberList(5))
		require.NoError(t, err)

		assert.Equal(t, domain.ResponseStatus_Error, response.Status)
		assert.Equal(t, "Standard deviation requires at least 2 numbers.", response.Message)
	})
}
