package calc

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	t.Parallel()

	t.Run("scenarios", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name     string
			input    Context
			expected float64
		}{
			{name: "inc", input: NewUnary("inc", 5), expected: 6},
			{name: "dec", input: NewUnary("dec", 5), expected: 4},
			{name: "add", input: NewBinary("add", 3, 4), expected: 7},
			{name: "sub", input: NewBinary("sub", 10, 4), expected: 6},
			{name: "mult", input: NewBinary("mult", 3, 4), expected: 12},
			{name: "div", input: NewBinary("div", 10, 2), expected: 5},
			{name: "inc ignores arg2", input: NewBinary("inc", 1, 100), expected: 2},
			{name: "dec ignores arg2", input: NewBinary("dec", 1, 100), expected: 0},
			{name: "fractional div", input: NewBinary("div", 1, 4), expected: 0.25},
			{name: "negative sub", input: NewBinary("sub", -2, 3), expected: -5},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()
				got, err := Evaluate(tt.input)
				require.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			})
		}
	})

	t.Run("properties over sample values", func(t *testing.T) {
		t.Parallel()

		samples := []float64{0, 1, -1, 2.5, -7.25, 1e9, -3e-4, 42}
		for _, a := range samples {
			got, err := Evaluate(NewUnary("inc", a))
			require.NoError(t, err)
			assert.Equal(t, a+1, got)

			got, err = Evaluate(NewUnary("dec", a))
			require.NoError(t, err)
			assert.Equal(t, a-1, got)

			for _, b := range samples {
				got, err = Evaluate(NewBinary("add", a, b))
				require.NoError(t, err)
				assert.Equal(t, a+b, got)

				got, err = Evaluate(NewBinary("sub", a, b))
				require.NoError(t, err)
				assert.Equal(t, a-b, got)

				got, err = Evaluate(NewBinary("mult", a, b))
				require.NoError(t, err)
				assert.Equal(t, a*b, got)

				if b != 0 {
					got, err = Evaluate(NewBinary("div", a, b))
					require.NoError(t, err)
					assert.Equal(t, a/b, got)
				}
			}
		}
	})

	t.Run("division by zero", func(t *testing.T) {
		t.Parallel()

		got, err := Evaluate(NewBinary("div", 1, 0))
		require.NoError(t, err)
		assert.True(t, math.IsInf(got, 1))

		got, err = Evaluate(NewBinary("div", -1, 0))
		require.NoError(t, err)
		assert.True(t, math.IsInf(got, -1))

		got, err = Evaluate(NewBinary("div", 0, 0))
		require.NoError(t, err)
		assert.True(t, math.IsNaN(got))
	})

	t.Run("invalid operation", func(t *testing.T) {
		t.Parallel()

		for _, op := range []string{"unknown", "", "INC", "Add", "mul", "divide", " inc"} {
			_, err := Evaluate(NewUnary(op, 1))
			require.Error(t, err)
			assert.Equal(t, "Invalid operation: "+op, err.Error())
			assert.ErrorIs(t, err, ErrInvalidOperation)

			var opErr *InvalidOperationError
			require.ErrorAs(t, err, &opErr)
			assert.Equal(t, op, opErr.Operation)
		}
	})

	t.Run("invalid operation message", func(t *testing.T) {
		t.Parallel()

		_, err := Evaluate(NewUnary("unknown", 1))
		require.EqualError(t, err, "Invalid operation: unknown")
	})

	t.Run("missing arg2", func(t *testing.T) {
		t.Parallel()

		for _, op := range []string{"add", "sub", "mult", "div"} {
			_, err := Evaluate(NewUnary(op, 1))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMissingArgument)
			assert.NotErrorIs(t, err, ErrInvalidOperation)
			assert.Equal(t, "Missing argument: arg2 for operation "+op, err.Error())
		}
	})

	t.Run("invalid operation wins over missing arg2", func(t *testing.T) {
		t.Parallel()

		_, err := Evaluate(Context{Operation: "pow", Arg1: 2})
		assert.ErrorIs(t, err, ErrInvalidOperation)
	})
}

func TestParseOperation(t *testing.T) {
	t.Parallel()

	for _, op := range Operations {
		parsed, err := ParseOperation(op.String())
		require.NoError(t, err)
		assert.Equal(t, op, parsed)
	}

	_, err := ParseOperation("modulo")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidOperation)
}

func TestOperation_IsBinary(t *testing.T) {
	t.Parallel()

	assert.False(t, Inc.IsBinary())
	assert.False(t, Dec.IsBinary())
	assert.True(t, Add.IsBinary())
	assert.True(t, Sub.IsBinary())
	assert.True(t, Mult.IsBinary())
	assert.True(t, Div.IsBinary())
	assert.False(t, Operation("nope").IsBinary())
}

func TestOperation_ApplyPanicsOnUnparsed(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		Operation("nope").Apply(1, 2)
	})
}

func TestContextFromMap(t *testing.T) {
	t.Parallel()

	t.Run("numeric kinds", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name string
			arg1 any
			arg2 any
		}{
			{name: "int", arg1: 10, arg2: 2},
			{name: "int64", arg1: int64(10), arg2: int64(2)},
			{name: "int32", arg1: int32(10), arg2: int8(2)},
			{name: "uint", arg1: uint(10), arg2: uint64(2)},
			{name: "float32", arg1: float32(10), arg2: float32(2)},
			{name: "float64", arg1: 10.0, arg2: 2.0},
			{name: "json.Number", arg1: json.Number("10"), arg2: json.Number("2")},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()
				got, err := EvaluateMap(map[string]any{
					KeyArg1:      tt.arg1,
					KeyArg2:      tt.arg2,
					KeyOperation: "div",
				})
				require.NoError(t, err)
				assert.Equal(t, 5.0, got)
			})
		}
	})

	t.Run("unary without arg2", func(t *testing.T) {
		t.Parallel()

		c, err := ContextFromMap(map[string]any{KeyArg1: 5, KeyOperation: "inc"})
		require.NoError(t, err)
		assert.Nil(t, c.Arg2)
		assert.Equal(t, "inc", c.Operation)
		assert.Equal(t, 5.0, c.Arg1)
	})

	t.Run("nil arg2 is unset", func(t *testing.T) {
		t.Parallel()

		c, err := ContextFromMap(map[string]any{KeyArg1: 5, KeyArg2: nil, KeyOperation: "add"})
		require.NoError(t, err)
		assert.Nil(t, c.Arg2)

		_, err = Evaluate(c)
		assert.ErrorIs(t, err, ErrMissingArgument)
	})

	t.Run("missing arg1", func(t *testing.T) {
		t.Parallel()

		_, err := ContextFromMap(map[string]any{KeyOperation: "inc"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingArgument)
		assert.Equal(t, "Missing argument: arg1", err.Error())
	})

	t.Run("invalid operation wins over missing arg1", func(t *testing.T) {
		t.Parallel()

		_, err := EvaluateMap(map[string]any{KeyOperation: "unknown"})
		require.EqualError(t, err, "Invalid operation: unknown")
	})

	t.Run("missing operation is invalid", func(t *testing.T) {
		t.Parallel()

		_, err := EvaluateMap(map[string]any{KeyArg1: 1})
		assert.ErrorIs(t, err, ErrInvalidOperation)
	})

	t.Run("non numeric argument", func(t *testing.T) {
		t.Parallel()

		_, err := ContextFromMap(map[string]any{KeyArg1: "five", KeyOperation: "inc"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotNumeric)

		_, err = ContextFromMap(map[string]any{KeyArg1: 1, KeyArg2: true, KeyOperation: "add"})
		assert.ErrorIs(t, err, ErrNotNumeric)

		_, err = ContextFromMap(map[string]any{KeyArg1: json.Number("x"), KeyOperation: "inc"})
		assert.ErrorIs(t, err, ErrNotNumeric)
	})

	t.Run("non string operation", func(t *testing.T) {
		t.Parallel()

		_, err := ContextFromMap(map[string]any{KeyArg1: 1, KeyOperation: 3})
		require.Error(t, err)
		assert.False(t, errors.Is(err, ErrInvalidOperation))
	})
}

func TestContext_ToMap(t *testing.T) {
	t.Parallel()

	unary := NewUnary("inc", 5).ToMap()
	assert.Equal(t, map[string]any{KeyOperation: "inc", KeyArg1: 5.0}, unary)

	binary := NewBinary("add", 3, 4).ToMap()
	assert.Equal(t, map[string]any{KeyOperation: "add", KeyArg1: 3.0, KeyArg2: 4.0}, binary)

	roundTrip, err := ContextFromMap(binary)
	require.NoError(t, err)
	assert.Equal(t, NewBinary("add", 3, 4), roundTrip)
}

func TestContext_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "calc.Context{Operation: inc, Arg1: 5}", NewUnary("inc", 5).String())
	assert.Equal(t, "calc.Context{Operation: add, Arg1: 3, Arg2: 4}", NewBinary("add", 3, 4).String())
}
