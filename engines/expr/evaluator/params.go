package evaluator

import (
	"fmt"

	"github.com/Knetic/govaluate"
	"github.com/robbyt/go-calcscript/calc"
)

// operationOf reads the operation tag that selects a table entry. An absent
// tag selects the empty entry name.
func operationOf(input map[string]any) (string, error) {
	raw, ok := input[calc.KeyOperation]
	if !ok || raw == nil {
		return "", nil
	}
	op, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("operation must be a string, got %T", raw)
	}
	return op, nil
}

// variables returns the distinct variable names referenced by expr.
func variables(expr *govaluate.EvaluableExpression) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, tok := range expr.Tokens() {
		if tok.Kind != govaluate.VARIABLE {
			continue
		}
		name, ok := tok.Value.(string)
		if !ok {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// parameters builds the govaluate parameter map for expr. Every referenced
// variable must be present. Variables other than the operation tag must be
// numeric and are widened to float64, the only number type govaluate
// operators accept.
func parameters(
	expr *govaluate.EvaluableExpression,
	operation string,
	input map[string]any,
) (map[string]any, error) {
	params := make(map[string]any, len(input))
	for _, name := range variables(expr) {
		raw, ok := input[name]
		if !ok || raw == nil {
			if name == calc.KeyArg1 {
				return nil, &calc.MissingArgumentError{Name: name}
			}
			return nil, &calc.MissingArgumentError{Name: name, Operation: operation}
		}
		if name == calc.KeyOperation {
			params[name] = raw
			continue
		}
		f, err := calc.ToFloat(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		params[name] = f
	}
	return params, nil
}
