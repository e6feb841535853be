package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"path/filepath"
	"strconv"

	"github.com/robbyt/go-calcscript"
	"github.com/robbyt/go-calcscript/calc"
	"github.com/robbyt/go-calcscript/engines/types"
	"github.com/robbyt/go-calcscript/platform"
	"github.com/spf13/cobra"
)

type evalOptions struct {
	engine     string
	scriptPath string
	operation  string
	arg1       float64
	arg2       float64
	jsonOutput bool
}

func newEvalCmd(flags *globalFlags) *cobra.Command {
	opts := &evalOptions{}

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate one operation",
		Example: `  calcscript eval --op add --arg1 3 --arg2 4
  calcscript eval --engine starlark --op inc --arg1 5
  cat custom.risor | calcscript eval --engine risor --script - --op div --arg1 10 --arg2 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input := calc.NewUnary(opts.operation, opts.arg1)
			if cmd.Flags().Changed("arg2") {
				input = calc.NewBinary(opts.operation, opts.arg1, opts.arg2)
			}
			return runEval(cmd, flags.logHandler(cmd), opts, input)
		},
	}

	cmd.Flags().StringVarP(&opts.engine, "engine", "e", types.Native.String(),
		fmt.Sprintf("evaluation engine %v", types.All))
	cmd.Flags().StringVarP(&opts.scriptPath, "script", "s", "",
		"script file to run instead of the built-in one, - reads stdin")
	cmd.Flags().StringVarP(&opts.operation, "op", "o", "", "operation: inc, dec, add, sub, mult or div")
	cmd.Flags().Float64Var(&opts.arg1, "arg1", 0, "first operand")
	cmd.Flags().Float64Var(&opts.arg2, "arg2", 0, "second operand, required by add, sub, mult and div")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "print the result as JSON")
	_ = cmd.MarkFlagRequired("op")
	_ = cmd.MarkFlagRequired("arg1")

	return cmd
}

func runEval(cmd *cobra.Command, handler slog.Handler, opts *evalOptions, input calc.Context) error {
	logger := slog.New(handler).With("engine", opts.engine)

	engine, err := types.Parse(opts.engine)
	if err != nil {
		return err
	}

	evaluator, err := newEvaluator(cmd, handler, engine, opts.scriptPath)
	if err != nil {
		return fmt.Errorf("failed to create evaluator: %w", err)
	}

	logger.Debug("evaluating", "input", input.String())
	result, err := calcscript.Call(cmd.Context(), evaluator, input)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.jsonOutput {
		return json.NewEncoder(out).Encode(map[string]any{
			"engine":    engine,
			"operation": input.Operation,
			"result":    jsonNumber(result),
		})
	}
	_, err = fmt.Fprintln(out, strconv.FormatFloat(result, 'g', -1, 64))
	return err
}

func newEvaluator(
	cmd *cobra.Command,
	handler slog.Handler,
	engine types.Type,
	scriptPath string,
) (platform.Evaluator, error) {
	switch {
	case scriptPath == "":
		return calcscript.NewOperationEvaluator(engine, handler)
	case scriptPath == "-":
		return calcscript.FromReader(engine, cmd.InOrStdin(), "stdin", handler)
	}

	abs, err := filepath.Abs(scriptPath)
	if err != nil {
		return nil, err
	}
	switch engine {
	case types.Risor:
		return calcscript.FromRisorFile(abs, handler)
	case types.Starlark:
		return calcscript.FromStarlarkFile(abs, handler)
	case types.Yaegi:
		return calcscript.FromYaegiFile(abs, handler)
	case types.Expr:
		return calcscript.FromExprFile(abs, handler)
	default:
		return nil, fmt.Errorf("%w: %s does not run scripts", calcscript.ErrUnsupportedEngine, engine)
	}
}

// jsonNumber keeps +Inf, -Inf and NaN encodable by rendering them as strings.
func jsonNumber(f float64) any {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return f
}
