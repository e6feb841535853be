package evaluator

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/robbyt/go-calcscript/engines/starlark/compiler"
	"github.com/robbyt/go-calcscript/engines/types"
	"github.com/robbyt/go-calcscript/platform/constants"
	"github.com/robbyt/go-calcscript/platform/data"
	"github.com/robbyt/go-calcscript/platform/script"
	"github.com/robbyt/go-calcscript/platform/script/loader"
	"github.com/robbyt/go-calcscript/scripts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	starlarkLib "go.starlark.net/starlark"
)

type mockProvider struct {
	mock.Mock
}

func (m *mockProvider) GetData(ctx context.Context) (map[string]any, error) {
	args := m.Called(ctx)
	if d, ok := args.Get(0).(map[string]any); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProvider) AddDataToContext(ctx context.Context, d ...map[string]any) (context.Context, error) {
	args := m.Called(ctx, d)
	if c, ok := args.Get(0).(context.Context); ok {
		return c, args.Error(1)
	}
	return ctx, args.Error(1)
}

type stubContent struct {
	byteCode any
}

func (s *stubContent) GetSource() string         { return "" }
func (s *stubContent) GetByteCode() any          { return s.byteCode }
func (s *stubContent) GetEngineType() types.Type { return types.Starlark }

func createTestExecutable(t *testing.T, src string, provider data.Provider) *script.ExecutableUnit {
	t.Helper()
	handler := slog.DiscardHandler

	c, err := compiler.New(compiler.WithCtxGlobal(), compiler.WithLogHandler(handler))
	require.NoError(t, err)

	ldr, err := loader.NewFromString(src)
	require.NoError(t, err)

	unit, err := script.NewExecutableUnit(handler, "test-id", ldr, c, provider)
	require.NoError(t, err)
	return unit
}

func TestEvaluator_Eval(t *testing.T) {
	t.Parallel()

	provider := data.NewContextProvider(constants.EvalData)
	e := New(slog.DiscardHandler, createTestExecutable(t, scripts.Starlark, provider))

	t.Run("operations", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name     string
			input    map[string]any
			expected float64
		}{
			{name: "inc", input: map[string]any{"arg1": 5, "operation": "inc"}, expected: 6},
			{name: "dec", input: map[string]any{"arg1": 5, "operation": "dec"}, expected: 4},
			{name: "add", input: map[string]any{"arg1": 3, "arg2": 4, "operation": "add"}, expected: 7},
			{name: "sub", input: map[string]any{"arg1": 10, "arg2": 4, "operation": "sub"}, expected: 6},
			{name: "mult", input: map[string]any{"arg1": 3, "arg2": 4, "operation": "mult"}, expected: 12},
			{name: "div", input: map[string]any{"arg1": 10, "arg2": 2, "operation": "div"}, expected: 5},
			{name: "fractional div", input: map[string]any{"arg1": 1, "arg2": 4, "operation": "div"}, expected: 0.25},
			{name: "float input", input: map[string]any{"arg1": 2.5, "arg2": 2.0, "operation": "mult"}, expected: 5},
			{name: "dec ignores arg2", input: map[string]any{"arg1": 1, "arg2": 100, "operation": "dec"}, expected: 0},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()
				ctx, err := e.AddDataToContext(context.Background(), tt.input)
				require.NoError(t, err)

				result, err := e.Eval(ctx)
				require.NoError(t, err)
				require.NotNil(t, result)

				assert.Equal(t, data.FLOAT, result.Type())
				assert.Equal(t, tt.expected, result.Interface())
				assert.Equal(t, "test-id", result.GetScriptExeID())
				assert.NotEmpty(t, result.GetExecTime())
			})
		}
	})

	t.Run("invalid operation", func(t *testing.T) {
		t.Parallel()
		ctx, err := e.AddDataToContext(context.Background(),
			map[string]any{"arg1": 1, "operation": "unknown"})
		require.NoError(t, err)

		_, err = e.Eval(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid operation: unknown")

		var evalErr *starlarkLib.EvalError
		assert.ErrorAs(t, err, &evalErr)
	})

	t.Run("missing arguments", func(t *testing.T) {
		t.Parallel()
		ctx, err := e.AddDataToContext(context.Background(),
			map[string]any{"arg1": 1, "operation": "mult"})
		require.NoError(t, err)

		_, err = e.Eval(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Missing argument: arg2 for operation mult")

		ctx, err = e.AddDataToContext(context.Background(), map[string]any{"operation": "dec"})
		require.NoError(t, err)

		_, err = e.Eval(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Missing argument: arg1")
	})
}

func TestEvaluator_ResultVariable(t *testing.T) {
	t.Parallel()

	e := New(slog.DiscardHandler, createTestExecutable(t, "result = 1 + 1", nil))
	result, err := e.Eval(context.Background())
	require.NoError(t, err)
	assert.Equal(t, data.INT, result.Type())
	assert.Equal(t, int64(2), result.Interface())
	assert.Equal(t, "2", result.Inspect())
}

func TestEvaluator_CallableResult(t *testing.T) {
	t.Parallel()

	src := "def answer():\n    return 42\n\n_ = answer\n"
	e := New(slog.DiscardHandler, createTestExecutable(t, src, nil))
	result, err := e.Eval(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), result.Interface())
	assert.Equal(t, "test-id", result.GetScriptExeID())
}

func TestEvaluator_Cancellation(t *testing.T) {
	t.Parallel()

	src := "def spin():\n    for i in range(1000000000):\n        pass\n\n_ = spin()\n"
	e := New(slog.DiscardHandler, createTestExecutable(t, src, nil))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := e.Eval(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "context deadline exceeded")
}

func TestEvaluator_Errors(t *testing.T) {
	t.Parallel()

	handler := slog.DiscardHandler

	t.Run("nil executable unit", func(t *testing.T) {
		t.Parallel()
		_, err := New(handler, nil).Eval(context.Background())
		require.ErrorIs(t, err, ErrExecUnitNil)
	})

	t.Run("nil bytecode", func(t *testing.T) {
		t.Parallel()
		unit := &script.ExecutableUnit{ID: "test-id", Content: &stubContent{}}
		_, err := New(handler, unit).Eval(context.Background())
		require.ErrorIs(t, err, ErrBytecodeNil)
	})

	t.Run("wrong bytecode type", func(t *testing.T) {
		t.Parallel()
		unit := &script.ExecutableUnit{ID: "test-id", Content: &stubContent{byteCode: 42}}
		_, err := New(handler, unit).Eval(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid bytecode type")
	})

	t.Run("provider error", func(t *testing.T) {
		t.Parallel()
		provider := &mockProvider{}
		provider.On("GetData", mock.Anything).Return(nil, errors.New("provider down"))

		e := New(handler, createTestExecutable(t, scripts.Starlark, provider))
		_, err := e.Eval(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "provider down")
		provider.AssertExpectations(t)
	})

	t.Run("unconvertible input", func(t *testing.T) {
		t.Parallel()
		provider := &mockProvider{}
		provider.On("GetData", mock.Anything).Return(map[string]any{"arg1": struct{}{}}, nil)

		e := New(handler, createTestExecutable(t, scripts.Starlark, provider))
		_, err := e.Eval(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to convert input data")
	})

	t.Run("add data without provider", func(t *testing.T) {
		t.Parallel()
		e := New(handler, createTestExecutable(t, "_ = 1", nil))
		_, err := e.AddDataToContext(context.Background(), map[string]any{"arg1": 1})
		require.ErrorIs(t, err, data.ErrNoProvider)
		assert.Equal(t, "starlark.Evaluator", e.String())
	})
}
