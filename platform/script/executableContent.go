package script

import (
	"github.com/robbyt/go-calcscript/engines/types"
)

// ExecutableContent is a compiled script, ready for an evaluator of the
// matching engine type.
type ExecutableContent interface {
	// GetSource returns the original script source.
	GetSource() string

	// GetByteCode returns the engine specific compiled form. Evaluators type
	// assert it and fail if it belongs to another engine.
	GetByteCode() any

	// GetEngineType returns the engine this content was compiled for.
	GetEngineType() types.Type
}
