package compiler

import (
	risorCompiler "github.com/risor-io/risor/compiler"
	"github.com/robbyt/go-calcscript/engines/types"
)

// Executable is a compiled Risor script.
type Executable struct {
	scriptBodyBytes []byte
	ByteCode        *risorCompiler.Code
}

func newExecutable(scriptBodyBytes []byte, byteCode *risorCompiler.Code) *Executable {
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

// GetRisorByteCode returns the bytecode without the type assertion.
func (e *Executable) GetRisorByteCode() *risorCompiler.Code {
	return e.ByteCode
}

func (e *Executable) GetEngineType() types.Type {
	return types.Risor
}
