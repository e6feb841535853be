package evaluator

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/robbyt/go-calcscript/platform/data"
)

// execResult is the float produced by calc.Evaluate.
type execResult struct {
	value       float64
	execTime    time.Duration
	scriptExeID string
}

func newEvalResult(value float64, execTime time.Duration, exeID string) *execResult {
	return &execResult{
		value:       value,
		execTime:    execTime,
		scriptExeID: exeID,
	}
}

func (r *execResult) String() string {
	return fmt.Sprintf(
		"ExecResult{Type: %s, Value: %s, ExecTime: %s, ScriptExeID: %s}",
		r.Type(), r.Inspect(), r.GetExecTime(), r.GetScriptExeID())
}

func (r *execResult) Type() data.Types {
	return data.FLOAT
}

// Inspect formats the value the shortest way that round-trips. Infinities and
// NaN print as +Inf, -Inf and NaN.
func (r *execResult) Inspect() string {
	if math.IsInf(r.value, 0) || math.IsNaN(r.value) {
		return fmt.Sprint(r.value)
	}
	return strconv.FormatFloat(r.value, 'g', -1, 64)
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
