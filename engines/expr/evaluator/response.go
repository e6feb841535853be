package evaluator

import (
	"fmt"
	"reflect"
	"time"

	"github.com/robbyt/go-calcscript/platform/data"
)

// execResult wraps the Go value returned by an expression.
type execResult struct {
	value       any
	execTime    time.Duration
	scriptExeID string
}

func newEvalResult(value any, execTime time.Duration, versionID string) *execResult {
	return &execResult{
		value:       value,
		execTime:    execTime,
		scriptExeID: versionID,
	}
}

func (r *execResult) String() string {
	return fmt.Sprintf(
		"ExecResult{Type: %s, Value: %v, ExecTime: %s, ScriptExeID: %s}",
		r.Type(), r.value, r.GetExecTime(), r.GetScriptExeID())
}

// Type maps the reflect kind of the value onto data.Types.
func (r *execResult) Type() data.Types {
	if r.value == nil {
		return data.NONE
	}
	if _, ok := r.value.(error); ok {
		return data.ERROR
	}

	switch reflect.TypeOf(r.value).Kind() {
	case reflect.Bool:
		return data.BOOL
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return data.INT
	case reflect.Float32, reflect.Float64:
		return data.FLOAT
	case reflect.String:
		return data.STRING
	case reflect.Map:
		return data.MAP
	case reflect.Slice, reflect.Array:
		return data.LIST
	case reflect.Func:
		return data.FUNCTION
	default:
		return data.ERROR
	}
}

func (r *execResult) Inspect() string {
	if r.value == nil {
		return "nil"
	}
	return fmt.Sprint(r.value)
}

func (r *execResult) Interface() any {
	return r.value
}

func (r *execResult) GetScriptExeID() string {
	return r.scriptExeID
}

func (r *execResult) GetExecTime() string {
	return r.execTime.String()
}
