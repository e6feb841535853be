// Package evaluator runs expression tables compiled by the expr compiler.
// The operation tag in the input data selects which expression runs.
package evaluator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robbyt/go-calcscript/calc"
	"github.com/robbyt/go-calcscript/engines/expr/compiler"
	"github.com/robbyt/go-calcscript/internal/helpers"
	"github.com/robbyt/go-calcscript/platform"
	"github.com/robbyt/go-calcscript/platform/data"
	"github.com/robbyt/go-calcscript/platform/script"
)

// Evaluator evaluates one table entry per call.
type Evaluator struct {
	execUnit *script.ExecutableUnit

	logHandler slog.Handler
	logger     *slog.Logger
}

// New creates an Evaluator for execUnit.
func New(handler slog.Handler, execUnit *script.ExecutableUnit) *Evaluator {
	handler, logger := helpers.SetupLogger(handler, "expr", "Evaluator")

	return &Evaluator{
		execUnit:   execUnit,
		logHandler: handler,
		logger:     logger,
	}
}

func (be *Evaluator) String() string {
	return "expr.Evaluator"
}

func (be *Evaluator) loadInputData(ctx context.Context) (map[string]any, error) {
	logger := be.logger.WithGroup("loadInputData")

	if be.execUnit.GetDataProvider() == nil {
		logger.WarnContext(ctx, "no data provider available, using empty data")
		return make(map[string]any), nil
	}

	inputData, err := be.execUnit.GetDataProvider().GetData(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to get input data from provider", "error", err)
		return nil, err
	}
	logger.DebugContext(ctx, "input data loaded from provider", "inputData", inputData)
	return inputData, nil
}

// exec selects the entry for the input operation and evaluates it. An
// operation with no entry, and no default entry, is reported as
// *calc.InvalidOperationError.
func (be *Evaluator) exec(exe *compiler.Executable, input map[string]any) (*execResult, error) {
	startTime := time.Now()

	operation, err := operationOf(input)
	if err != nil {
		return nil, err
	}

	expr, ok := exe.Lookup(operation)
	if !ok {
		return nil, &calc.InvalidOperationError{Operation: operation}
	}

	params, err := parameters(expr, operation, input)
	if err != nil {
		return nil, err
	}

	value, err := expr.Evaluate(params)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrScriptFailed, operation, err)
	}
	return newEvalResult(value, time.Since(startTime), ""), nil
}

// Eval evaluates the entry selected by the data stored in ctx. Operation and
// argument errors are returned as the calc error types, unwrapped.
func (be *Evaluator) Eval(ctx context.Context) (platform.EvaluatorResponse, error) {
	logger := be.logger.WithGroup("Eval")
	if be.execUnit == nil {
		return nil, ErrExecUnitNil
	}

	if be.execUnit.GetContent() == nil {
		return nil, fmt.Errorf("content is nil")
	}

	bytecode := be.execUnit.GetContent().GetByteCode()
	if bytecode == nil {
		return nil, ErrBytecodeNil
	}

	exeID := be.execUnit.GetID()
	if exeID == "" {
		return nil, fmt.Errorf("exeID is empty")
	}
	logger = logger.With("exeID", exeID)

	exe, ok := bytecode.(*compiler.Executable)
	if !ok {
		return nil, fmt.Errorf(
			"invalid bytecode type: expected *compiler.Executable, got %T",
			bytecode,
		)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	input, err := be.loadInputData(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get input data: %w", err)
	}

	result, err := be.exec(exe, input)
	if err != nil {
		logger.DebugContext(ctx, "exec failed", "error", err)
		return nil, err
	}
	logger.DebugContext(ctx, "exec complete", "result", result)

	result.scriptExeID = exeID
	return result, nil
}

// AddDataToContext implements data.Setter by storing d through the unit's
// data provider.
func (be *Evaluator) AddDataToContext(
	ctx context.Context,
	d ...map[string]any,
) (context.Context, error) {
	logger := be.logger.WithGroup("AddDataToContext")

	if be.execUnit == nil || be.execUnit.GetDataProvider() == nil {
		return ctx, data.ErrNoProvider
	}

	return data.AddDataToContextHelper(ctx, logger, be.execUnit.GetDataProvider(), d...)
}
