// Package constants holds the keys used to pass evaluation data through a
// context.Context and into script engines.
package constants

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// EvalData is the context key under which runtime evaluation data is stored
	EvalData ContextKey = "eval_data"

	// Ctx is the top-scope variable name scripts use to read input data
	Ctx = "ctx"
)
