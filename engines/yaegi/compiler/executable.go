package compiler

import (
	"fmt"
	"sync"

	"github.com/robbyt/go-calcscript/engines/types"
)

// EntryFunc is the Go view of the interpreted entrypoint.
type EntryFunc func(map[string]any) (any, error)

// Executable is an interpreted Go script with its entrypoint resolved.
// Calls through Call are serialized, since each Executable owns a single
// interpreter.
type Executable struct {
	scriptBodyBytes []byte
	entrypoint      string

	mu sync.Mutex
	fn EntryFunc
}

func newExecutable(scriptBodyBytes []byte, entrypoint string, fn EntryFunc) *Executable {
	if len(scriptBodyBytes) == 0 || fn == nil {
		return nil
	}
	return &Executable{
		scriptBodyBytes: scriptBodyBytes,
		entrypoint:      entrypoint,
		fn:              fn,
	}
}

func (e *Executable) GetSource() string {
	return string(e.scriptBodyBytes)
}

// GetByteCode returns the Executable itself; the interpreter state lives in it.
func (e *Executable) GetByteCode() any {
	return e
}

func (e *Executable) GetEngineType() types.Type {
	return types.Yaegi
}

// Entrypoint returns the name of the function Call invokes.
func (e *Executable) Entrypoint() string {
	return e.entrypoint
}

// Call invokes the entrypoint with input. A panic inside the script is
// returned as an error.
func (e *Executable) Call(input map[string]any) (result any, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", e.entrypoint, r)
		}
	}()
	return e.fn(input)
}
