// Package evaluator runs interpreted Go scripts compiled by the yaegi
// compiler.
package evaluator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robbyt/go-calcscript/engines/yaegi/compiler"
	"github.com/robbyt/go-calcscript/internal/helpers"
	"github.com/robbyt/go-calcscript/platform"
	"github.com/robbyt/go-calcscript/platform/data"
	"github.com/robbyt/go-calcscript/platform/script"
)

// Evaluator calls the script entrypoint with the invocation context map.
type Evaluator struct {
	execUnit *script.ExecutableUnit

	logHandler slog.Handler
	logger     *slog.Logger
}

// New creates an Evaluator for execUnit.
func New(handler slog.Handler, execUnit *script.ExecutableUnit) *Evaluator {
	handler, logger := helpers.SetupLogger(handler, "yaegi", "Evaluator")

	return &Evaluator{
		execUnit:   execUnit,
		logHandler: handler,
		logger:     logger,
	}
}

func (be *Evaluator) String() string {
	return "yaegi.Evaluator"
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

	if len(inputData) == 0 {
		logger.WarnContext(ctx, "empty input data returned from provider")
	}
	logger.DebugContext(ctx, "input data loaded from provider", "inputData", inputData)
	return inputData, nil
}

type callResult struct {
	value any
	err   error
}

// exec calls the entrypoint on its own goroutine so a done ctx returns
// promptly. The interpreted call itself cannot be interrupted and finishes in
// the background.
func (be *Evaluator) exec(
	ctx context.Context,
	exe *compiler.Executable,
	input map[string]any,
) (*execResult, error) {
	startTime := time.Now()

	done := make(chan callResult, 1)
	go func() {
		v, err := exe.Call(input)
		done <- callResult{value: v, err: err}
	}()

	select {
	case res := <-done:
		execTime := time.Since(startTime)
		if res.err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScriptFailed, res.err)
		}
		return newEvalResult(res.value, execTime, ""), nil
	case <-ctx.Done():
		return nil, fmt.Errorf("yaegi execution cancelled: %w", context.Cause(ctx))
	}
}

// Eval calls the entrypoint with the data stored in ctx. An error returned by
// the script is wrapped in ErrScriptFailed and keeps its message.
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

	result, err := be.exec(ctx, exe, input)
	if err != nil {
		return nil, fmt.Errorf("exec error: %w", err)
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
