package internal

import (
	"errors"
	"fmt"

	"github.com/robbyt/go-calcscript/platform/constants"
	starlarkLib "go.starlark.net/starlark"
)

// ConvertToStarlarkFormat wraps inputData in a single ctx dict global.
func ConvertToStarlarkFormat(inputData map[string]any) (starlarkLib.StringDict, error) {
	ctxDict := starlarkLib.NewDict(len(inputData))

	var errz []error
	for k, v := range inputData {
		starlarkVal, err := ConvertToStarlarkValue(v)
		if err != nil {
			errz = append(errz, fmt.Errorf("failed to convert input value for key %q: %w", k, err))
			continue
		}
		if err := ctxDict.SetKey(starlarkLib.String(k), starlarkVal); err != nil {
			errz = append(errz, fmt.Errorf("failed to set ctx dict key %q: %w", k, err))
		}
	}

	if len(errz) > 0 {
		return nil, fmt.Errorf("failed to convert input data: %w", errors.Join(errz...))
	}

	return starlarkLib.StringDict{constants.Ctx: ctxDict}, nil
}

// ConvertToStarlarkValue converts a Go value to its Starlark equivalent.
// Integers of every width become Starlark ints, floats become floats.
func ConvertToStarlarkValue(v any) (starlarkLib.Value, error) {
	switch val := v.(type) {
	case nil:
		return starlarkLib.None, nil
	case bool:
		return starlarkLib.Bool(val), nil
	case int:
		return starlarkLib.MakeInt(val), nil
	case int8:
		return starlarkLib.MakeInt64(int64(val)), nil
	case int16:
		return starlarkLib.MakeInt64(int64(val)), nil
	case int32:
		return starlarkLib.MakeInt64(int64(val)), nil
	case int64:
		return starlarkLib.MakeInt64(val), nil
	case uint:
		return starlarkLib.MakeUint(val), nil
	case uint8:
		return starlarkLib.MakeUint64(uint64(val)), nil
	case uint16:
		return starlarkLib.MakeUint64(uint64(val)), nil
	case uint32:
		return starlarkLib.MakeUint64(uint64(val)), nil
	case uint64:
		return starlarkLib.MakeUint64(val), nil
	case float32:
		return starlarkLib.Float(val), nil
	case float64:
		return starlarkLib.Float(val), nil
	case string:
		return starlarkLib.String(val), nil
	case []any:
		elements := make([]starlarkLib.Value, len(val))
		for i, elem := range val {
			sv, err := ConvertToStarlarkValue(elem)
			if err != nil {
				return nil, fmt.Errorf("failed to convert list element: %w", err)
			}
			elements[i] = sv
		}
		return starlarkLib.NewList(elements), nil
	case map[string]any:
		dict := starlarkLib.NewDict(len(val))
		for k, elem := range val {
			sv, err := ConvertToStarlarkValue(elem)
			if err != nil {
				return nil, fmt.Errorf("failed to convert dict value: %w", err)
			}
			if err := dict.SetKey(starlarkLib.String(k), sv); err != nil {
				return nil, fmt.Errorf("failed to set dict key: %w", err)
			}
		}
		return dict, nil
	default:
		return nil, fmt.Errorf("unsupported type %T", v)
	}
}

// ConvertStarlarkValueToInterface converts a Starlark value back to Go.
func ConvertStarlarkValueToInterface(v starlarkLib.Value) (any, error) {
	switch v := v.(type) {
	case nil, starlarkLib.NoneType:
		return nil, nil
	case starlarkLib.Bool:
		return bool(v), nil
	case starlarkLib.Int:
		i, ok := v.Int64()
		if !ok {
			return nil, fmt.Errorf("int %s overflows int64", v.String())
		}
		return i, nil
	case starlarkLib.Float:
		return float64(v), nil
	case starlarkLib.String:
		return string(v), nil
	case *starlarkLib.List:
		list := make([]any, 0, v.Len())
		for i := range v.Len() {
			elem, err := ConvertStarlarkValueToInterface(v.Index(i))
			if err != nil {
				return nil, fmt.Errorf("failed to convert list element: %w", err)
			}
			list = append(list, elem)
		}
		return list, nil
	case starlarkLib.Tuple:
		list := make([]any, 0, len(v))
		for _, item := range v {
			elem, err := ConvertStarlarkValueToInterface(item)
			if err != nil {
				return nil, fmt.Errorf("failed to convert tuple element: %w", err)
			}
			list = append(list, elem)
		}
		return list, nil
	case *starlarkLib.Dict:
		dict := make(map[string]any, v.Len())
		for _, item := range v.Items() {
			key, ok := item[0].(starlarkLib.String)
			if !ok {
				key = starlarkLib.String(item[0].String())
			}
			val, err := ConvertStarlarkValueToInterface(item[1])
			if err != nil {
				return nil, fmt.Errorf("failed to convert dict value: %w", err)
			}
			dict[string(key)] = val
		}
		return dict, nil
	default:
		return nil, fmt.Errorf("unsupported Starlark type %T", v)
	}
}
