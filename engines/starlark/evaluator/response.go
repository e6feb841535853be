package evaluator

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/robbyt/go-calcscript/engines/starlark/internal"
	"github.com/robbyt/go-calcscript/internal/helpers"
	"github.com/robbyt/go-calcscript/platform/data"
	starlarkLib "go.starlark.net/starlark"
)

// execResult wraps a Starlark value as a platform.EvaluatorResponse.
type execResult struct {
	starlarkLib.Value
	execTime    time.Duration
	scriptExeID string
	logger      *slog.Logger
}

func newEvalResult(
	handler slog.Handler,
	obj starlarkLib.Value,
	execTime time.Duration,
	versionID string,
) *execResult {
	_, logger := helpers.SetupLogger(handler, "starlark", "execResult")

	if obj == nil {
		obj = starlarkLib.None
	}

	return &execResult{
		Value:       obj,
		execTime:    execTime,
		scriptExeID: versionID,
		logger:      logger,
	}
}

func (r *execResult) String() string {
	return fmt.Sprintf(
		"ExecResult{Type: %s, Value: %v, ExecTime: %s, ScriptExeID: %s}",
		r.Type(), r.Value, r.GetExecTime(), r.GetScriptExeID())
}

// Type maps Starlark type names onto data.Types.
func (r *execResult) Type() data.Types {
	switch r.Value.Type() {
	case "NoneType":
		return data.NONE
	case "bool":
		return data.BOOL
	case "int":
		return data.INT
	case "float":
		return data.FLOAT
	case "string":
		return data.STRING
	case "list":
		return data.LIST
	case "tuple":
		return data.TUPLE
	case "dict":
		return data.MAP
	case "set":
		return data.SET
	case "function", "builtin_function_or_method":
		return data.FUNCTION
	default:
		r.logger.Error("Unknown type", "type", r.Value.Type())
		return data.ERROR
	}
}

func (r *execResult) GetScriptExeID() string {
	return r.scriptExeID
}

func (r *execResult) GetExecTime() string {
	return r.execTime.String()
}

func (r *execResult) Inspect() string {
	return r.Value.String()
}

// Interface returns the Go value, or nil if it cannot be converted.
func (r *execResult) Interface() any {
	v, err := internal.ConvertStarlarkValueToInterface(r.Value)
	if err != nil {
		r.logger.Error("Failed to convert Starlark value to interface", "error", err)
		return nil
	}
	return v
}
