package yaegi

import (
	"fmt"
	"log/slog"

	"github.com/robbyt/go-calcscript/engines/yaegi/compiler"
	"github.com/robbyt/go-calcscript/engines/yaegi/evaluator"
	"github.com/robbyt/go-calcscript/platform/constants"
	"github.com/robbyt/go-calcscript/platform/data"
	"github.com/robbyt/go-calcscript/platform/script"
	"github.com/robbyt/go-calcscript/platform/script/loader"
)

// FromYaegiLoader creates a Yaegi evaluator whose runtime data comes only
// from the context. The script must define
// func Evaluate(ctx map[string]any) (any, error).
func FromYaegiLoader(
	logHandler slog.Handler,
	ldr loader.Loader,
) (*evaluator.Evaluator, error) {
	return NewEvaluator(
		logHandler,
		ldr,
		data.NewContextProvider(constants.EvalData),
	)
}

// FromYaegiLoaderWithData creates a Yaegi evaluator with static defaults
// overridden by data added to the context.
func FromYaegiLoaderWithData(
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

// NewCompiler creates a Yaegi compiler.
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
		return nil, fmt.Errorf("failed to create Yaegi compiler: %w", err)
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
