package risor

import (
	"fmt"
	"log/slog"

	"github.com/robbyt/go-calcscript/engines/risor/compiler"
	"github.com/robbyt/go-calcscript/engines/risor/evaluator"
	"github.com/robbyt/go-calcscript/platform/constants"
	"github.com/robbyt/go-calcscript/platform/data"
	"github.com/robbyt/go-calcscript/platform/script"
	"github.com/robbyt/go-calcscript/platform/script/loader"
)

// FromRisorLoader creates a Risor evaluator whose runtime data comes only from
// the context (a ContextProvider under constants.EvalData).
func FromRisorLoader(
	logHandler slog.Handler,
	ldr loader.Loader,
) (*evaluator.Evaluator, error) {
	return NewEvaluator(
		logHandler,
		ldr,
		data.NewContextProvider(constants.EvalData),
	)
}

// FromRisorLoaderWithData creates a Risor evaluator with static defaults, for
// example a fixed operation, overridden by data added to the context.
func FromRisorLoaderWithData(
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

// NewCompiler creates a Risor compiler.
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

	opts := []compiler.FunctionalOption{compiler.WithCtxGlobal()}
	if logHandler != nil {
		opts = append(opts, compiler.WithLogHandler(logHandler))
	}
	c, err := NewCompiler(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Risor compiler: %w", err)
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
