package internal

import (
	risorLib "github.com/risor-io/risor"
)

// ConvertToRisorOptions wraps inputData in a single global named ctxKey.
//
// For example, if inputData is {"arg1": 3, "operation": "inc"}, the result is
//
//	[]risorLib.Option{
//	  risorLib.WithGlobal("ctx", map[string]any{
//	    "arg1":      int64(3),
//	    "operation": "inc",
//	  }),
//	}
func ConvertToRisorOptions(ctxKey string, inputData map[string]any) []risorLib.Option {
	return []risorLib.Option{
		risorLib.WithGlobal(ctxKey, NormalizeMap(inputData)),
	}
}

// NormalizeMap returns a copy of m with numbers widened to int64 or float64,
// the two numeric kinds Risor converts from Go.
func NormalizeMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = normalizeValue(v)
	}
	return out
}

func normalizeValue(v any) any {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int8:
		return int64(n)
	case int16:
		return int64(n)
	case int32:
		return int64(n)
	case uint:
		return int64(n)
	case uint8:
		return int64(n)
	case uint16:
		return int64(n)
	case uint32:
		return int64(n)
	case uint64:
		return int64(n)
	case float32:
		return float64(n)
	case map[string]any:
		return NormalizeMap(n)
	case []any:
		out := make([]any, len(n))
		for i, elem := range n {
			out[i] = normalizeValue(elem)
		}
		return out
	default:
		return v
	}
}
