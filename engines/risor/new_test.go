package risor

import (
	"context"
	"log/slog"
	"testing"

	"github.com/robbyt/go-calcscript/platform/script/loader"
	"github.com/robbyt/go-calcscript/scripts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRisorLoader(t *testing.T) {
	t.Parallel()

	ldr, err := loader.NewFromString(scripts.Risor)
	require.NoError(t, err)

	e, err := FromRisorLoader(slog.DiscardHandler, ldr)
	require.NoError(t, err)

	ctx, err := e.AddDataToContext(context.Background(),
		map[string]any{"arg1": 3, "arg2": 4, "operation": "mult"})
	require.NoError(t, err)

	result, err := e.Eval(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12.0, result.Interface())
	assert.Equal(t, ldr.GetSourceURL().String(), result.GetScriptExeID())
}

func TestFromRisorLoaderWithData(t *testing.T) {
	t.Parallel()

	ldr, err := loader.NewFromString(scripts.Risor)
	require.NoError(t, err)

	e, err := FromRisorLoaderWithData(slog.DiscardHandler, ldr, map[string]any{"operation": "inc"})
	require.NoError(t, err)

	t.Run("static operation", func(t *testing.T) {
		t.Parallel()
		ctx, err := e.AddDataToContext(context.Background(), map[string]any{"arg1": 5})
		require.NoError(t, err)

		result, err := e.Eval(ctx)
		require.NoError(t, err)
		assert.Equal(t, 6.0, result.Interface())
	})

	t.Run("runtime data overrides static", func(t *testing.T) {
		t.Parallel()
		ctx, err := e.AddDataToContext(context.Background(),
			map[string]any{"arg1": 5, "operation": "dec"})
		require.NoError(t, err)

		result, err := e.Eval(ctx)
		require.NoError(t, err)
		assert.Equal(t, 4.0, result.Interface())
	})
}

func TestNewEvaluator_Errors(t *testing.T) {
	t.Parallel()

	ldr, err := loader.NewFromString("func (")
	require.NoError(t, err)

	_, err = FromRisorLoader(slog.DiscardHandler, ldr)
	require.Error(t, err)

	_, err = NewEvaluator(slog.DiscardHandler, ldr, nil)
	require.Error(t, err)

	_, err = FromRisorLoader(slog.DiscardHandler, nil)
	require.Error(t, err)
}
