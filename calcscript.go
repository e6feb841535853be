// Package calcscript evaluates the inc, dec, add, sub, mult and div operations
// through interchangeable evaluators: native Go, Risor, Starlark, Go
// interpreted by yaegi, or a table of govaluate expressions. Script evaluators
// are compiled once and can be evaluated many times with different invocation
// contexts.
package calcscript

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/robbyt/go-calcscript/engines/expr"
	"github.com/robbyt/go-calcscript/engines/native"
	"github.com/robbyt/go-calcscript/engines/risor"
	"github.com/robbyt/go-calcscript/engines/starlark"
	"github.com/robbyt/go-calcscript/engines/types"
	"github.com/robbyt/go-calcscript/engines/yaegi"
	"github.com/robbyt/go-calcscript/platform"
	"github.com/robbyt/go-calcscript/platform/script/loader"
	"github.com/robbyt/go-calcscript/scripts"
)

// FromRisorString compiles a Risor script. Runtime data is read from the
// context, so call AddDataToContext before Eval.
func FromRisorString(content string, logHandler slog.Handler) (platform.Evaluator, error) {
	l, err := loader.NewFromString(content)
	if err != nil {
		return nil, err
	}
	return risor.FromRisorLoader(logHandler, l)
}

// FromRisorStringWithData compiles a Risor script with static data that
// per-call context data overrides.
func FromRisorStringWithData(
	content string,
	staticData map[string]any,
	logHandler slog.Handler,
) (platform.Evaluator, error) {
	l, err := loader.NewFromString(content)
	if err != nil {
		return nil, err
	}
	return risor.FromRisorLoaderWithData(logHandler, l, staticData)
}

// FromRisorFile compiles the Risor script at the absolute path filePath.
func FromRisorFile(filePath string, logHandler slog.Handler) (platform.Evaluator, error) {
	l, err := loader.NewFromDisk(filePath)
	if err != nil {
		return nil, err
	}
	return risor.FromRisorLoader(logHandler, l)
}

// FromStarlarkString compiles a Starlark script. The script's result is the
// value of its "_" global.
func FromStarlarkString(content string, logHandler slog.Handler) (platform.Evaluator, error) {
	l, err := loader.NewFromString(content)
	if err != nil {
		return nil, err
	}
	return starlark.FromStarlarkLoader(logHandler, l)
}

// FromStarlarkStringWithData compiles a Starlark script with static data that
// per-call context data overrides.
func FromStarlarkStringWithData(
	content string,
	staticData map[string]any,
	logHandler slog.Handler,
) (platform.Evaluator, error) {
	l, err := loader.NewFromString(content)
	if err != nil {
		return nil, err
	}
	return starlark.FromStarlarkLoaderWithData(logHandler, l, staticData)
}

// FromStarlarkFile compiles the Starlark script at the absolute path filePath.
func FromStarlarkFile(filePath string, logHandler slog.Handler) (platform.Evaluator, error) {
	l, err := loader.NewFromDisk(filePath)
	if err != nil {
		return nil, err
	}
	return starlark.FromStarlarkLoader(logHandler, l)
}

// FromYaegiString interprets a Go script that defines
// func Evaluate(ctx map[string]any) (any, error).
func FromYaegiString(content string, logHandler slog.Handler) (platform.Evaluator, error) {
	l, err := loader.NewFromString(content)
	if err != nil {
		return nil, err
	}
	return yaegi.FromYaegiLoader(logHandler, l)
}

// FromYaegiFile interprets the Go script at the absolute path filePath.
func FromYaegiFile(filePath string, logHandler slog.Handler) (platform.Evaluator, error) {
	l, err := loader.NewFromDisk(filePath)
	if err != nil {
		return nil, err
	}
	return yaegi.FromYaegiLoader(logHandler, l)
}

// FromExprString compiles an expression table of "operation: expression"
// lines.
func FromExprString(content string, logHandler slog.Handler) (platform.Evaluator, error) {
	l, err := loader.NewFromString(content)
	if err != nil {
		return nil, err
	}
	return expr.FromExprLoader(logHandler, l)
}

// FromExprStringWithData compiles an expression table with static data that
// per-call context data overrides.
func FromExprStringWithData(
	content string,
	staticData map[string]any,
	logHandler slog.Handler,
) (platform.Evaluator, error) {
	l, err := loader.NewFromString(content)
	if err != nil {
		return nil, err
	}
	return expr.FromExprLoaderWithData(logHandler, l, staticData)
}

// FromExprFile compiles the expression table at the absolute path filePath.
func FromExprFile(filePath string, logHandler slog.Handler) (platform.Evaluator, error) {
	l, err := loader.NewFromDisk(filePath)
	if err != nil {
		return nil, err
	}
	return expr.FromExprLoader(logHandler, l)
}

// FromReader compiles a script for engine read from r, for example stdin.
// sourceName identifies the script in result IDs.
func FromReader(
	engine types.Type,
	r io.Reader,
	sourceName string,
	logHandler slog.Handler,
) (platform.Evaluator, error) {
	l, err := loader.NewFromReader(r, sourceName)
	if err != nil {
		return nil, err
	}

	switch engine {
	case types.Risor:
		return risor.FromRisorLoader(logHandler, l)
	case types.Starlark:
		return starlark.FromStarlarkLoader(logHandler, l)
	case types.Yaegi:
		return yaegi.FromYaegiLoader(logHandler, l)
	case types.Expr:
		return expr.FromExprLoader(logHandler, l)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedEngine, engine)
	}
}

// NewNativeEvaluator returns an evaluator that runs the operation in Go.
func NewNativeEvaluator(logHandler slog.Handler) (platform.Evaluator, error) {
	return native.FromContext(logHandler)
}

// NewOperationEvaluator returns an evaluator for the built-in operation table
// on the given engine. Script engines use the embedded operation scripts.
func NewOperationEvaluator(engine types.Type, logHandler slog.Handler) (platform.Evaluator, error) {
	switch engine {
	case types.Native:
		return NewNativeEvaluator(logHandler)
	case types.Risor:
		return FromRisorString(scripts.Risor, logHandler)
	case types.Starlark:
		return FromStarlarkString(scripts.Starlark, logHandler)
	case types.Yaegi:
		return FromYaegiString(scripts.Yaegi, logHandler)
	case types.Expr:
		return FromExprString(scripts.Expr, logHandler)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedEngine, engine)
	}
}
