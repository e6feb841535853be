package mocks

import (
	"github.com/robbyt/go-calcscript/platform/data"
	"github.com/stretchr/testify/mock"
)

// EvaluatorResponse is a mock implementation of platform.EvaluatorResponse.
type EvaluatorResponse struct {
	mock.Mock
}

// Type infers the data type from the mocked value, or returns it directly when
// the mock was set up with a data.Types.
func (m *EvaluatorResponse) Type() data.Types {
	args := m.Called()
	val := args.Get(0)

	switch val.(type) {
	case bool:
		return data.BOOL
	case int, int64:
		return data.INT
	case float64:
		return data.FLOAT
	case map[string]any, map[any]any:
		return data.MAP
	case []any:
		return data.LIST
	case string:
		return data.STRING
	case nil:
		return data.NONE
	default:
		if t, ok := val.(data.Types); ok {
			return t
		}
		panic("unknown type")
	}
}

func (m *EvaluatorResponse) Inspect() string {
	args := m.Called()
	return args.String(0)
}

// Interface returns the mocked value, which must be type asserted.
func (m *EvaluatorResponse) Interface() any {
	args := m.Called()
	return args.Get(0)
}

func (m *EvaluatorResponse) GetScriptExeID() string {
	args := m.Called()
	return args.String(0)
}

func (m *EvaluatorResponse) GetExecTime() string {
	args := m.Called()
	return args.String(0)
}
