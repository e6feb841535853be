package calcscript

import (
	"context"
	"errors"
	"fmt"

	"github.com/robbyt/go-calcscript/calc"
	"github.com/robbyt/go-calcscript/platform"
)

// Call binds c to the context, evaluates it with evaluator and returns the
// numeric result. Errors raised by the operation are returned as the
// evaluator reported them.
func Call(ctx context.Context, evaluator platform.Evaluator, c calc.Context) (float64, error) {
	if evaluator == nil {
		return 0, ErrEvaluatorNil
	}

	evalCtx, err := evaluator.AddDataToContext(ctx, c.ToMap())
	if err != nil {
		return 0, fmt.Errorf("failed to add invocation context: %w", err)
	}

	resp, err := evaluator.Eval(evalCtx)
	if err != nil {
		return 0, err
	}
	if resp == nil {
		return 0, ErrNilResponse
	}

	return ResultToFloat(resp)
}

// ResultToFloat converts a numeric evaluator response to float64.
func ResultToFloat(resp platform.EvaluatorResponse) (float64, error) {
	v := resp.Interface()
	f, err := calc.ToFloat(v)
	if err != nil {
		if errors.Is(err, calc.ErrNotNumeric) {
			return 0, fmt.Errorf("%w: %s (%s)", ErrNonNumericResult, resp.Inspect(), resp.Type())
		}
		return 0, err
	}
	return f, nil
}
