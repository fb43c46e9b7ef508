package logarithms

import (
	"context"
	"math"
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

	tools, err := NewLogarithmTools(domain.ToolsetDeps{
		ParameterBinder: binder,
		Logger:          zerolog.Nop(),
	})
	require.NoError(t, err)

	registry := domain.NewToolRegistry()
	require.NoError(t, registry.RegisterToolset(Schema, tools))

	return registry
}

func TestLogarithmTools_Logarithm(t *testing.T) {
	registry := newTestRegistry(t)
	ctx := context.Background()

	t.Run("base defaults to 10", func(t *testing.T) {
		response, err := registry.Call(ctx, ToolName_Logarithm, map[string]any{"value": 100.0})
		require.NoError(t, err)

		require.Equal(t, domain.ResponseStatus_Success, response.Status)
		assert.InDelta(t, 2.0, response.Result.(float64), 1e-12)
	})

	t.Run("explicit base", func(t *testing.T) {
		response, err := registry.Call(ctx, ToolName_Logarithm, map[string]any{"value": 8.0, "base": 2.0})
		require.NoError(t, err)

		require.Equal(t, domain.ResponseStatus_Success, response.Status)
		assert.InDelta(t, 3.0, response.Result.(float64), 1e-12)
	})

	t.Run("zero value is a domain error", func(t *testing.T) {
		response, err := registry.Call(ctx, ToolName_Logarithm, map[string]any{"value": 0.0, "base": 10.0})
		require.NoError(t, err)

		assert.Equal(t, domain.ResponseStatus_Error, response.Status)
		assert.Equal(t, "Logarithm is only defined for positive values.", response.Message)
	})

	t.Run("negative value is a domain error", func(t *testing.T) {
		response, err := registry.Call(ctx, ToolName_Logarithm, map[string]any{"value": -10.0})
		require.NoError(t, err)

		assert.Equal(t, domain.ResponseStatus_Error, response.Status)
	})

	t.Run("base 1 is a domain error", func(t *testing.T) {
		response, err := registry.Call(ctx, ToolName_Logarithm, map[string]any{"value": 10.0, "base": 1.0})
		require.NoError(t, err)

		assert.Equal(t, domain.ResponseStatus_Error, response.Status)
		assert.Equal(t, "Logarithm base must be positive and not equal to 1.", response.Message)
	})

	t.Run("negative base is a domain error", func(t *testing.T) {
		response, err := registry.Call(ctx, ToolName_Logarithm, map[string]any{"value": 10.0, "base": -2.0})
		require.NoError(t, err)

		assert.Equal(t, domain.ResponseStatus_Error, response.Status)
	})
}

func TestLogarithmTools_NaturalLog(t *testing.T) {
	registry := newTestRegistry(t)
	ctx := context.Background()

	t.Run("ln of e", func(t *testing.T) {
		response, err := registry.Call(ctx, ToolName_NaturalLog, map[string]any{"a": math.E})
		require.NoError(t, err)

		require.Equal(t, domain.ResponseStatus_Success, response.Status)
		assert.InDelta(t, 1.0, response.Result.(float64), 1e-12)
	})

	t.Run("ln of 1 is zero", func(t *testing.T) {
		response, err := registry.Call(ctx, ToolName_NaturalLog, map[string]any{"a": 1.0})
		require.NoError(t, err)

		require.Equal(t, domain.ResponseStatus_Success, response.Status)
		assert.Equal(t, 0.0, response.Result)
	})

	t.Run("non-positive input is a domain error", func(t *testing.T) {
		response, err := registry.Call(ctx, ToolName_NaturalLog, map[string]any{"a": -1.0})
		require.NoError(t, err)

		assert.Equal(t, domain.ResponseStatus_Error, response.Status)
		assert.Equal(t, "Natural log is only defined for positive values.", response.Message)
	})
}
