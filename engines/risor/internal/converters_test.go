package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMap(t *testing.T) {
	t.Parallel()

	input := map[string]any{
		"arg1":      3,
		"arg2":      float32(0.5),
		"operation": "add",
		"nested":    map[string]any{"n": uint8(7)},
		"list":      []any{int32(1), 2.5, "x"},
		"big":       uint64(9),
		"nil":       nil,
	}

	got := NormalizeMap(input)
	assert.Equal(t, map[string]any{
		"arg1":      int64(3),
		"arg2":      float64(0.5),
		"operation": "add",
		"nested":    map[string]any{"n": int64(7)},
		"list":      []any{int64(1), 2.5, "x"},
		"big":       int64(9),
		"nil":       nil,
	}, got)

	assert.Equal(t, 3, input["arg1"], "input must not be modified")
}

func TestConvertToRisorOptions(t *testing.T) {
	t.Parallel()

	opts := ConvertToRisorOptions("ctx", map[string]any{"arg1": 1})
	assert.Len(t, opts, 1)
}
