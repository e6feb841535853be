package native

import (
	"log/slog"

	"github.com/robbyt/go-calcscript/engines/native/evaluator"
	"github.com/robbyt/go-calcscript/platform/constants"
	"github.com/robbyt/go-calcscript/platform/data"
)

// FromContext creates a native evaluator whose invocation context is added
// per call with AddDataToContext.
func FromContext(logHandler slog.Handler) (*evaluator.Evaluator, error) {
	return NewEvaluator(logHandler, data.NewContextProvider(constants.EvalData))
}

// FromContextWithData creates a native evaluator with static defaults, such as
// a fixed operation, that per-call data overrides.
func FromContextWithData(
	logHandler slog.Handler,
	staticData map[string]any,
) (*evaluator.Evaluator, error) {
	return NewEvaluator(
		logHandler,
		data.NewCompositeProvider(
			data.NewStaticProvider(staticData),
			data.NewContextProvider(constants.EvalData),
		),
	)
}

// NewEvaluator creates a native evaluator reading from dataProvider.
func NewEvaluator(
	logHandler slog.Handler,
	dataProvider data.Provider,
) (*evaluator.Evaluator, error) {
	return evaluator.New(logHandler, dataProvider)
}
