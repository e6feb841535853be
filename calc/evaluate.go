// Package calc implements the arithmetic operation evaluator: given an
// invocation context carrying arg1, arg2 and an operation tag, it returns the
// numeric result or a typed error.
package calc

import "errors"

// Evaluate applies c.Operation to the context arguments. The tag is checked
// before the arguments, so an unknown operation always reports
// *InvalidOperationError even when arg2 is missing.
func Evaluate(c Context) (float64, error) {
	op, err := ParseOperation(c.Operation)
	if err != nil {
		return 0, err
	}

	var arg2 float64
	if op.IsBinary() {
		if c.Arg2 == nil {
			return 0, &MissingArgumentError{Name: KeyArg2, Operation: c.Operation}
		}
		arg2 = *c.Arg2
	}

	return op.Apply(c.Arg1, arg2), nil
}

// EvaluateMap decodes m with ContextFromMap and evaluates it. As with
// Evaluate, an unknown operation takes precedence over a missing argument.
func EvaluateMap(m map[string]any) (float64, error) {
	c, err := ContextFromMap(m)
	if err != nil {
		if errors.Is(err, ErrMissingArgument) {
			if _, opErr := ParseOperation(c.Operation); opErr != nil {
				return 0, opErr
			}
		}
		return 0, err
	}
	return Evaluate(c)
}
