// Package types enumerates the engines an operation can be evaluated on.
package types

import "fmt"

// Type names an evaluation engine.
type Type string

const (
	// Native evaluates the operation directly in Go, no script involved.
	Native Type = "native"

	// Risor evaluates a Risor script block.
	Risor Type = "risor"

	// Starlark evaluates a Starlark script block.
	Starlark Type = "starlark"

	// Yaegi interprets a Go script block.
	Yaegi Type = "yaegi"

	// Expr evaluates a table of govaluate expressions keyed by operation.
	Expr Type = "expr"
)

// All lists every supported engine.
var All = []Type{Native, Risor, Starlark, Yaegi, Expr}

// Parse returns the engine type for name.
func Parse(name string) (Type, error) {
	switch t := Type(name); t {
	case Native, Risor, Starlark, Yaegi, Expr:
		return t, nil
	default:
		return "", fmt.Errorf("unsupported engine type: %q", name)
	}
}

func (t Type) String() string {
	return string(t)
}
