package compiler

import (
	"github.com/robbyt/go-calcscript/engines/types"
	starlarkLib "go.starlark.net/starlark"
)

// Executable is a compiled Starlark program.
type Executable struct {
	scriptBodyBytes []byte
	ByteCode        *starlarkLib.Program
}

func newExecutable(scriptBodyBytes []byte, byteCode *starlarkLib.Program) *Executable {
	if len(scriptBodyBytes) == 0 || byteCode == nil {
		return nil
	}

	return &Executable{
		scriptBodyBytes: scriptBodyBytes,
		ByteCode:        byteCode,
	}
}

func (e *Executable) GetSource() string {
	return string(e.scriptBodyBytes)
}

func (e *Executable) GetByteCode() any {
	return e.ByteCode
}

// GetStarlarkByteCode returns the program without the type assertion.
func (e *Executable) GetStarlarkByteCode() *starlarkLib.Program {
	return e.ByteCode
}

func (e *Executable) GetEngineType() types.Type {
	return types.Starlark
}
