// Package evaluator runs the arithmetic operation directly in Go, without a
// script engine.
package evaluator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robbyt/go-calcscript/calc"
	"github.com/robbyt/go-calcscript/internal/helpers"
	"github.com/robbyt/go-calcscript/platform"
	"github.com/robbyt/go-calcscript/platform/data"
)

// ExeID is reported by GetScriptExeID for every native result.
const ExeID = "native"

// Evaluator evaluates the invocation context stored by its data provider with
// calc.EvaluateMap.
type Evaluator struct {
	provider data.Provider

	logHandler slog.Handler
	logger     *slog.Logger
}

// New creates an Evaluator reading its data from provider.
func New(handler slog.Handler, provider data.Provider) (*Evaluator, error) {
	if provider == nil {
		return nil, ErrProviderNil
	}
	handler, logger := helpers.SetupLogger(handler, "native", "Evaluator")

	return &Evaluator{
		provider:   provider,
		logHandler: handler,
		logger:     logger,
	}, nil
}

func (be *Evaluator) String() string {
	return "native.Evaluator"
}

// Eval reads arg1, arg2 and operation from the provider and applies the
// operation. Errors from calc are returned unwrapped so callers can match
// *calc.InvalidOperationError and *calc.MissingArgumentError directly.
func (be *Evaluator) Eval(ctx context.Context) (platform.EvaluatorResponse, error) {
	logger := be.logger.WithGroup("Eval")
	startTime := time.Now()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	input, err := be.provider.GetData(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to get input data from provider", "error", err)
		return nil, fmt.Errorf("failed to get input data: %w", err)
	}
	logger.DebugContext(ctx, "input data loaded from provider", "inputData", input)

	result, err := calc.EvaluateMap(input)
	if err != nil {
		logger.DebugContext(ctx, "evaluation failed", "error", err)
		return nil, err
	}

	return newEvalResult(result, time.Since(startTime), ExeID), nil
}

// AddDataToContext implements data.Setter.
func (be *Evaluator) AddDataToContext(
	ctx context.Context,
	d ...map[string]any,
) (context.Context, error) {
	logger := be.logger.WithGroup("AddDataToContext")
	return data.AddDataToContextHelper(ctx, logger, be.provider, d...)
}
