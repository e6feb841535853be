// Package scripts embeds the operation evaluator as script blocks for each
// script engine. Each reads arg1, arg2 and operation from the invocation
// context and fails with the same messages as calc.Evaluate.
package scripts

import _ "embed"

// Risor is the operation evaluator written in Risor.
//
//go:embed math.risor
var Risor string

// Starlark is the operation evaluator written in Starlark.
//
//go:embed math.star
var Starlark string

// Yaegi is the operation evaluator written in Go and interpreted by yaegi.
// Its Evaluate function receives the invocation context map.
//
//go:embed math.yaegi
var Yaegi string

// Expr is the operation evaluator as a govaluate expression table, one
// "operation: expression" entry per line.
//
//go:embed math.expr
var Expr string
