package evaluator

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"time"

	"github.com/robbyt/go-calcscript/engines/starlark/internal"
	"github.com/robbyt/go-calcscript/internal/helpers"
	"github.com/robbyt/go-calcscript/platform"
	"github.com/robbyt/go-calcscript/platform/constants"
	"github.com/robbyt/go-calcscript/platform/data"
	"github.com/robbyt/go-calcscript/platform/script"
	starlarkLib "go.starlark.net/starlark"
)

// Evaluator runs a compiled Starlark program with the invocation context bound
// to the ctx global.
type Evaluator struct {
	// universe holds the predeclared names shared by every evaluation
	universe starlarkLib.StringDict

	execUnit *script.ExecutableUnit

	logHandler slog.Handler
	logger     *slog.Logger
}

// New creates an Evaluator for execUnit.
func New(handler slog.Handler, execUnit *script.ExecutableUnit) *Evaluator {
	handler, logger := helpers.SetupLogger(handler, "starlark", "Evaluator")

	universe := internal.StarlarkModules()
	universe[constants.Ctx] = starlarkLib.None

	return &Evaluator{
		universe:   universe,
		execUnit:   execUnit,
		logHandler: handler,
		logger:     logger,
	}
}

func (be *Evaluator) String() string {
	return "starlark.Evaluator"
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

// prepareGlobals overlays the per-call globals on a copy of the universe.
func (be *Evaluator) prepareGlobals(inputGlobals starlarkLib.StringDict) starlarkLib.StringDict {
	merged := make(starlarkLib.StringDict, len(be.universe)+len(inputGlobals))
	maps.Copy(merged, be.universe)
	maps.Copy(merged, inputGlobals)
	return merged
}

func (be *Evaluator) newThread(ctx context.Context, name string) *starlarkLib.Thread {
	logger := be.logger.WithGroup("thread")
	return &starlarkLib.Thread{
		Name: name,
		Print: func(thread *starlarkLib.Thread, msg string) {
			logger.InfoContext(ctx, msg, "starlark-thread", thread.Name)
		},
	}
}

// exec runs prog. The result is the "_" global, or "result" when "_" is unset.
// The thread is cancelled if ctx is done before the program finishes.
func (be *Evaluator) exec(
	ctx context.Context,
	prog *starlarkLib.Program,
	globals starlarkLib.StringDict,
) (*execResult, error) {
	logger := be.logger.WithGroup("exec")
	startTime := time.Now()

	thread := be.newThread(ctx, "eval")
	stop := context.AfterFunc(ctx, func() {
		thread.Cancel(context.Cause(ctx).Error())
	})
	defer stop()

	finalGlobals, err := prog.Init(thread, globals)
	execTime := time.Since(startTime)
	if err != nil {
		return nil, fmt.Errorf("starlark execution error: %w", err)
	}

	mainVal, ok := finalGlobals["_"]
	if !ok || mainVal == nil || mainVal == starlarkLib.None {
		if resultVal, ok := finalGlobals["result"]; ok {
			logger.DebugContext(ctx, "found explicit result variable", "result", resultVal)
			mainVal = resultVal
		}
	}

	return newEvalResult(be.logHandler, mainVal, execTime, ""), nil
}

// Eval runs the program against the data stored in ctx. A fail() in the script
// is returned as the error.
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

	prog, ok := bytecode.(*starlarkLib.Program)
	if !ok {
		return nil, fmt.Errorf(
			"invalid bytecode type: expected *starlark.Program, got %T",
			bytecode,
		)
	}

	rawInputData, err := be.loadInputData(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get input data: %w", err)
	}

	input, err := internal.ConvertToStarlarkFormat(rawInputData)
	if err != nil {
		return nil, fmt.Errorf("failed to convert input data: %w", err)
	}

	result, err := be.exec(ctx, prog, be.prepareGlobals(input))
	if err != nil {
		return nil, fmt.Errorf("exec error: %w", err)
	}
	logger.DebugContext(ctx, "exec complete", "result", result)

	result.scriptExeID = exeID

	// A script may leave a function as its result; call it with no arguments.
	if callable, ok := result.Value.(starlarkLib.Callable); ok {
		val, err := starlarkLib.Call(be.newThread(ctx, "func"), callable, nil, nil)
		if err != nil {
			return nil, fmt.Errorf("error calling function: %w", err)
		}
		val.Freeze()
		return newEvalResult(be.logHandler, val, result.execTime, exeID), nil
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
