package evaluator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	risorLib "github.com/risor-io/risor"
	risorCompiler "github.com/risor-io/risor/compiler"
	"github.com/robbyt/go-calcscript/engines/risor/internal"
	"github.com/robbyt/go-calcscript/internal/helpers"
	"github.com/robbyt/go-calcscript/platform"
	"github.com/robbyt/go-calcscript/platform/constants"
	"github.com/robbyt/go-calcscript/platform/data"
	"github.com/robbyt/go-calcscript/platform/script"
)

// Evaluator runs compiled Risor bytecode with the invocation context bound to
// the ctx global.
type Evaluator struct {
	// ctxKey is the variable name scripts use to read input data
	ctxKey string

	execUnit *script.ExecutableUnit

	logHandler slog.Handler
	logger     *slog.Logger
}

// New creates an Evaluator for execUnit.
func New(handler slog.Handler, execUnit *script.ExecutableUnit) *Evaluator {
	handler, logger := helpers.SetupLogger(handler, "risor", "Evaluator")

	return &Evaluator{
		ctxKey:     constants.Ctx,
		execUnit:   execUnit,
		logHandler: handler,
		logger:     logger,
	}
}

func (be *Evaluator) String() string {
	return "risor.Evaluator"
}

// loadInputData reads the runtime data through the unit's data provider.
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

func (be *Evaluator) exec(
	ctx context.Context,
	bytecode *risorCompiler.Code,
	options ...risorLib.Option,
) (*execResult, error) {
	startTime := time.Now()
	result, err := risorLib.EvalCode(ctx, bytecode, options...)
	execTime := time.Since(startTime)

	if err != nil {
		return nil, fmt.Errorf("risor execution error: %w", err)
	}
	return newEvalResult(be.logHandler, result, execTime, ""), nil
}

// Eval runs the script against the data stored in ctx. A Risor error value
// returned by the script becomes a Go error wrapping ErrScriptError.
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

	risorByteCode, ok := bytecode.(*risorCompiler.Code)
	if !ok {
		return nil, fmt.Errorf(
			"unable to type assert bytecode into *risorCompiler.Code for ID: %s",
			exeID,
		)
	}

	rawInputData, err := be.loadInputData(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get input data: %w", err)
	}

	runtimeData := internal.ConvertToRisorOptions(be.ctxKey, rawInputData)

	result, err := be.exec(ctx, risorByteCode, runtimeData...)
	if err != nil {
		return nil, fmt.Errorf("exec error: %w", err)
	}
	logger.DebugContext(ctx, "exec complete", "result", result)

	result.scriptExeID = exeID

	if result.Object == nil {
		logger.WarnContext(ctx, "result object is nil")
		return result, nil
	}

	switch result.Type() {
	case data.ERROR:
		return result, fmt.Errorf("%w: %s", ErrScriptError, result.Inspect())
	case data.FUNCTION:
		return result, fmt.Errorf("function object returned from script: %s", result.Inspect())
	}

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
