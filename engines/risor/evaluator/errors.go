package evaluator

import "errors"

var (
	ErrBytecodeNil = errors.New("bytecode is nil")
	ErrExecUnitNil = errors.New("executable unit is nil")
	ErrScriptError = errors.New("error returned from script")
)
