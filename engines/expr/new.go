package expr

import (
	"fmt"
	"log/slog"

	"github.com/robbyt/go-calcscript/engines/expr/compiler"
	"github.com/robbyt/go-calcscript/engines/expr/evaluator"
	"github.com/robbyt/go-calcscript/platform/constants"
	"github.com/robbyt/go-calcscript/platform/data"
	"github.com/robbyt/go-calcscript/platform/script"
	"github.com/robbyt/go-calcscript/platform/script/loader"
)

// FromExprLoader creates an expression table evaluator whose runtime data
// comes only from the context. Each table line maps an operation name to a
// govaluate expression over arg1 and arg2.
func FromExprLoader(
	logHandler slog.Handler,
	ldr loader.Loader,
) (*evaluator.Evaluator, error) {
	return NewEvaluator(
		logHandler,
		ldr,
		data.NewContextProvider(constants.EvalData),
	)
}

// FromExprLoaderWithData creates an expression table evaluator with static
// defaults overridden by data added to the context.
func FromExprLoaderWithData(
	logHandler slog.Handler,
	ldr loader.Loader,
	staticData map[string]any,
) (*evaluator.Evaluator, error) {
	return NewEvaluator(
		logHandler,
		ldr,
		data.NewCompositeProvider(
			data.NewStaticProvider(staticData),
			data.NewContextProvider(constants.EvalData),
		),
	)
}

// NewCompiler creates an expression table compiler.
func NewCompiler(opts ...compiler.FunctionalOption) (*compiler.Compiler, error) {
	return compiler.New(opts...)
}

// NewEvaluator compiles the script from ldr and returns an evaluator ready to
// run it with data from dataProvider.
func NewEvaluator(
	logHandler slog.Handler,
	ldr loader.Loader,
	dataProvider data.Provider,
) (*evaluator.Evaluator, error) {
	if ldr == nil {
		return nil, fmt.Errorf("loader is nil")
	}
	if dataProvider == nil {
		return nil, fmt.Errorf("provider is nil")
	}

	var opts []compiler.FunctionalOption
	if logHandler != nil {
		opts = append(opts, compiler.WithLogHandler(logHandler))
	}
	c, err := NewCompiler(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create expr compiler: %w", err)
	}

	execUnitID := ""
	if sourceURL := ldr.GetSourceURL(); sourceURL != nil {
		execUnitID = sourceURL.String()
	}

	execUnit, err := script.NewExecutableUnit(logHandler, execUnitID, ldr, c, dataProvider)
	if err != nil {
		return nil, err
	}

	return evaluator.New(logHandler, execUnit), nil
}
