package evaluator

import "errors"

var (
	ErrBytecodeNil  = errors.New("expression table is nil")
	ErrExecUnitNil  = errors.New("executable unit is nil")
	ErrScriptFailed = errors.New("expression evaluation failed")
)
