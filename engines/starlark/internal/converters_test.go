package internal

import (
	"testing"

	"github.com/robbyt/go-calcscript/platform/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	starlarkLib "go.starlark.net/starlark"
)

func TestConvertToStarlarkFormat(t *testing.T) {
	t.Parallel()

	t.Run("invocation context", func(t *testing.T) {
		t.Parallel()
		globals, err := ConvertToStarlarkFormat(map[string]any{
			"arg1":      5,
			"arg2":      2.5,
			"operation": "add",
		})
		require.NoError(t, err)

		ctxDict, ok := globals[constants.Ctx].(*starlarkLib.Dict)
		require.True(t, ok)
		assert.Equal(t, 3, ctxDict.Len())

		v, found, err := ctxDict.Get(starlarkLib.String("arg1"))
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "5", v.String())

		v, found, err = ctxDict.Get(starlarkLib.String("arg2"))
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, starlarkLib.Float(2.5), v)
	})

	t.Run("unsupported value", func(t *testing.T) {
		t.Parallel()
		_, err := ConvertToStarlarkFormat(map[string]any{"bad": struct{}{}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"bad"`)
	})
}

func TestConvertToStarlarkValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    any
		expected starlarkLib.Value
	}{
		{name: "nil", input: nil, expected: starlarkLib.None},
		{name: "bool", input: true, expected: starlarkLib.True},
		{name: "int8", input: int8(-3), expected: starlarkLib.MakeInt64(-3)},
		{name: "int64", input: int64(7), expected: starlarkLib.MakeInt64(7)},
		{name: "uint32", input: uint32(9), expected: starlarkLib.MakeUint64(9)},
		{name: "float32", input: float32(0.5), expected: starlarkLib.Float(0.5)},
		{name: "string", input: "inc", expected: starlarkLib.String("inc")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ConvertToStarlarkValue(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected.Type(), got.Type())

			eq, err := starlarkLib.Equal(tt.expected, got)
			require.NoError(t, err)
			assert.True(t, eq, "expected %s, got %s", tt.expected, got)
		})
	}
}

func TestConvertStarlarkValueToInterface(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		input := map[string]any{
			"arg1":   int64(3),
			"arg2":   1.5,
			"op":     "sub",
			"flag":   false,
			"list":   []any{int64(1), "two"},
			"nested": map[string]any{"none": nil},
		}
		sv, err := ConvertToStarlarkValue(input)
		require.NoError(t, err)

		back, err := ConvertStarlarkValueToInterface(sv)
		require.NoError(t, err)
		assert.Equal(t, input, back)
	})

	t.Run("tuple", func(t *testing.T) {
		t.Parallel()
		got, err := ConvertStarlarkValueToInterface(starlarkLib.Tuple{starlarkLib.MakeInt(1), starlarkLib.String("a")})
		require.NoError(t, err)
		assert.Equal(t, []any{int64(1), "a"}, got)
	})

	t.Run("unsupported", func(t *testing.T) {
		t.Parallel()
		_, err := ConvertStarlarkValueToInterface(starlarkLib.NewSet(0))
		require.Error(t, err)
	})
}

func TestStarlarkModules(t *testing.T) {
	t.Parallel()

	modules := StarlarkModules()
	for _, name := range []string{"json", "math", "time", "float", "fail"} {
		assert.True(t, modules.Has(name), name)
	}
	assert.False(t, starlarkLib.Universe.Has("json"), "universe must not be modified")
}
