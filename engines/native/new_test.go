package native

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	t.Parallel()

	e, err := FromContext(slog.DiscardHandler)
	require.NoError(t, err)

	ctx, err := e.AddDataToContext(context.Background(),
		map[string]any{"arg1": 3, "arg2": 4, "operation": "mult"})
	require.NoError(t, err)

	result, err := e.Eval(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12.0, result.Interface())
}

func TestFromContextWithData(t *testing.T) {
	t.Parallel()

	e, err := FromContextWithData(slog.DiscardHandler, map[string]any{"operation": "inc"})
	require.NoError(t, err)

	ctx, err := e.AddDataToContext(context.Background(), map[string]any{"arg1": 41})
	require.NoError(t, err)

	result, err := e.Eval(ctx)
	require.NoError(t, err)
	assert.Equal(t, 42.0, result.Interface())

	ctx, err = e.AddDataToContext(context.Background(),
		map[string]any{"arg1": 10, "arg2": 2, "operation": "div"})
	require.NoError(t, err)

	result, err = e.Eval(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5.0, result.Interface())
}
