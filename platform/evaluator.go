// Package platform defines the engine independent evaluator API: an evaluator
// binds an invocation context into a context.Context and evaluates a compiled
// operation against it.
package platform

import (
	"context"

	"github.com/robbyt/go-calcscript/platform/data"
)

// EvalOnly evaluates a pre-compiled operation.
type EvalOnly interface {
	// Eval evaluates with the data stored in ctx by AddDataToContext. The
	// operation was compiled when the evaluator was created, so repeated calls
	// only pay for execution.
	Eval(ctx context.Context) (EvaluatorResponse, error)
}

// Evaluator combines data preparation and evaluation.
type Evaluator interface {
	EvalOnly
	data.Setter
}
