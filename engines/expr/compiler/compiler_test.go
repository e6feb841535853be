package compiler

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/Knetic/govaluate"
	"github.com/robbyt/go-calcscript/engines/types"
	"github.com/robbyt/go-calcscript/scripts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCompiler(t *testing.T, opts ...FunctionalOption) *Compiler {
	t.Helper()
	c, err := New(append([]FunctionalOption{WithLogHandler(slog.DiscardHandler)}, opts...)...)
	require.NoError(t, err)
	return c
}

func reader(src string) io.ReadCloser {
	return io.NopCloser(strings.NewReader(src))
}

func compileExecutable(t *testing.T, c *Compiler, src string) *Executable {
	t.Helper()
	content, err := c.Compile(reader(src))
	require.NoError(t, err)
	exe, ok := content.GetByteCode().(*Executable)
	require.True(t, ok)
	return exe
}

func TestCompiler_Compile(t *testing.T) {
	t.Parallel()

	t.Run("operation table", func(t *testing.T) {
		t.Parallel()
		content, err := newTestCompiler(t).Compile(reader(scripts.Expr))
		require.NoError(t, err)
		assert.Equal(t, types.Expr, content.GetEngineType())
		assert.Equal(t, scripts.Expr, content.GetSource())

		exe, ok := content.GetByteCode().(*Executable)
		require.True(t, ok)
		assert.Equal(t, []string{"add", "dec", "div", "inc", "mult", "sub"}, exe.Names())

		expr, ok := exe.Lookup("mult")
		require.True(t, ok)
		got, err := expr.Evaluate(map[string]any{"arg1": 3.0, "arg2": 4.0})
		require.NoError(t, err)
		assert.Equal(t, 12.0, got)

		_, ok = exe.Lookup("pow")
		assert.False(t, ok)
	})

	t.Run("bare expression applies to every operation", func(t *testing.T) {
		t.Parallel()
		exe := compileExecutable(t, newTestCompiler(t), "# double\narg1 * 2\n")
		assert.Equal(t, []string{DefaultEntry}, exe.Names())

		expr, ok := exe.Lookup("anything")
		require.True(t, ok)
		got, err := expr.Evaluate(map[string]any{"arg1": 21.0})
		require.NoError(t, err)
		assert.Equal(t, 42.0, got)
	})

	t.Run("ternary is not read as an entry", func(t *testing.T) {
		t.Parallel()
		exe := compileExecutable(t, newTestCompiler(t), "arg1 > 0 ? arg1 : 0")
		assert.Equal(t, []string{DefaultEntry}, exe.Names())
	})

	t.Run("default entry alongside named entries", func(t *testing.T) {
		t.Parallel()
		exe := compileExecutable(t, newTestCompiler(t), "inc: arg1 + 1\n*: arg1")
		assert.Equal(t, []string{DefaultEntry, "inc"}, exe.Names())

		expr, ok := exe.Lookup("dec")
		require.True(t, ok)
		got, err := expr.Evaluate(map[string]any{"arg1": 7.0})
		require.NoError(t, err)
		assert.Equal(t, 7.0, got)
	})

	t.Run("built-in functions", func(t *testing.T) {
		t.Parallel()
		exe := compileExecutable(t, newTestCompiler(t), "pow: pow(arg1, arg2)\nroot: sqrt(abs(arg1))")

		expr, _ := exe.Lookup("pow")
		got, err := expr.Evaluate(map[string]any{"arg1": 2.0, "arg2": 10.0})
		require.NoError(t, err)
		assert.Equal(t, 1024.0, got)

		expr, _ = exe.Lookup("root")
		got, err = expr.Evaluate(map[string]any{"arg1": -16.0})
		require.NoError(t, err)
		assert.Equal(t, 4.0, got)
	})

	t.Run("custom functions", func(t *testing.T) {
		t.Parallel()
		half := func(args ...any) (any, error) {
			return args[0].(float64) / 2, nil
		}
		c := newTestCompiler(t, WithFunctions(map[string]govaluate.ExpressionFunction{"half": half}))
		exe := compileExecutable(t, c, "half: half(arg1)")

		expr, _ := exe.Lookup("half")
		got, err := expr.Evaluate(map[string]any{"arg1": 9.0})
		require.NoError(t, err)
		assert.Equal(t, 4.5, got)
	})
}

func TestCompiler_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want error
	}{
		{name: "empty", src: "", want: ErrContentNil},
		{name: "whitespace", src: "  \n\t", want: ErrNoInstructions},
		{name: "comments only", src: "# nothing\n# here", want: ErrNoInstructions},
		{name: "syntax error", src: "inc: arg1 +", want: ErrValidationFailed},
		{name: "unknown function", src: "inc: cube(arg1)", want: ErrValidationFailed},
		{name: "duplicate entry", src: "inc: arg1 + 1\ninc: arg1 + 2", want: ErrDuplicateEntry},
		{name: "mixed bare lines", src: "inc: arg1 + 1\narg1 - 1", want: ErrValidationFailed},
		{name: "several bare lines", src: "arg1 + 1\narg1 - 1", want: ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := newTestCompiler(t).Compile(reader(tt.src))
			require.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("nil reader", func(t *testing.T) {
		t.Parallel()
		_, err := newTestCompiler(t).Compile(nil)
		require.ErrorIs(t, err, ErrContentNil)
	})
}

func TestFunctions_Arguments(t *testing.T) {
	t.Parallel()

	_, err := Functions["pow"](2.0)
	require.Error(t, err)

	_, err = Functions["abs"]("x")
	require.Error(t, err)

	got, err := Functions["floor"](2.7)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)
}

func TestNew_Options(t *testing.T) {
	t.Parallel()

	_, err := New(WithLogHandler(nil))
	require.Error(t, err)

	_, err = New(WithLogger(nil))
	require.Error(t, err)

	_, err = New(WithFunctions(map[string]govaluate.ExpressionFunction{"nope": nil}))
	require.Error(t, err)

	c, err := New(WithLogger(slog.New(slog.DiscardHandler)))
	require.NoError(t, err)
	assert.Equal(t, "expr.Compiler", c.String())
	assert.Len(t, c.functions, len(Functions))
}
