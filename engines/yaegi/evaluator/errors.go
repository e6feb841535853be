package evaluator

import "errors"

var (
	ErrBytecodeNil  = errors.New("yaegi executable is nil")
	ErrExecUnitNil  = errors.New("executable unit is nil")
	ErrScriptFailed = errors.New("yaegi script returned an error")
)
