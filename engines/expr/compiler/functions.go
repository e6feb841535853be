package compiler

import (
	"fmt"
	"math"

	"github.com/Knetic/govaluate"
)

func floatArgs(name string, want int, args []any) ([]float64, error) {
	if len(args) != want {
		return nil, fmt.Errorf("%s expects %d arguments, got %d", name, want, len(args))
	}
	out := make([]float64, len(args))
	for i, a := range args {
		f, ok := a.(float64)
		if !ok {
			return nil, fmt.Errorf("%s: argument %d is not numeric: %T", name, i+1, a)
		}
		out[i] = f
	}
	return out, nil
}

// Functions are callable from every expression.
var Functions = map[string]govaluate.ExpressionFunction{
	"abs": func(args ...any) (any, error) {
		f, err := floatArgs("abs", 1, args)
		if err != nil {
			return nil, err
		}
		return math.Abs(f[0]), nil
	},
	"floor": func(args ...any) (any, error) {
		f, err := floatArgs("floor", 1, args)
		if err != nil {
			return nil, err
		}
		return math.Floor(f[0]), nil
	},
	"pow": func(args ...any) (any, error) {
		f, err := floatArgs("pow", 2, args)
		if err != nil {
			return nil, err
		}
		return math.Pow(f[0], f[1]), nil
	},
	"sqrt": func(args ...any) (any, error) {
		f, err := floatArgs("sqrt", 1, args)
		if err != nil {
			return nil, err
		}
		return math.Sqrt(f[0]), nil
	},
}
