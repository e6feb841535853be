package platform

import "github.com/robbyt/go-calcscript/platform/data"

// EvaluatorResponse is the engine independent view of an evaluation result.
type EvaluatorResponse interface {
	// Type of the result value.
	Type() data.Types

	// Inspect returns a string representation of the value.
	Inspect() string

	// Interface converts the value to a native Go value.
	Interface() any

	// GetScriptExeID returns the ID of the executable unit that produced it.
	GetScriptExeID() string

	// GetExecTime returns how long the evaluation took.
	GetExecTime() string
}
