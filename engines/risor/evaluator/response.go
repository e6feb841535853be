package evaluator

import (
	"fmt"
	"log/slog"
	"time"

	risorObject "github.com/risor-io/risor/object"
	"github.com/robbyt/go-calcscript/internal/helpers"
	"github.com/robbyt/go-calcscript/platform/data"
)

// execResult wraps a Risor object as a platform.EvaluatorResponse.
type execResult struct {
	risorObject.Object
	execTime    time.Duration
	scriptExeID string
	logger      *slog.Logger
}

func newEvalResult(
	handler slog.Handler,
	obj risorObject.Object,
	execTime time.Duration,
	versionID string,
) *execResult {
	_, logger := helpers.SetupLogger(handler, "risor", "execResult")

	return &execResult{
		Object:      obj,
		execTime:    execTime,
		scriptExeID: versionID,
		logger:      logger,
	}
}

func (r *execResult) String() string {
	return fmt.Sprintf(
		"ExecResult{Type: %s, Value: %v, ExecTime: %s, ScriptExeID: %s}",
		r.Type(), r.Object, r.GetExecTime(), r.GetScriptExeID())
}

func (r *execResult) Type() data.Types {
	if r.Object == nil {
		return data.NONE
	}
	return data.Types(r.Object.Type())
}

func (r *execResult) Inspect() string {
	if r.Object == nil {
		return "nil"
	}
	return r.Object.Inspect()
}

func (r *execResult) Interface() any {
	if r.Object == nil {
		return nil
	}
	return r.Object.Interface()
}

func (r *execResult) GetScriptExeID() string {
	return r.scriptExeID
}

func (r *execResult) GetExecTime() string {
	return r.execTime.String()
}
