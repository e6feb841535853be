package compiler

import (
	"maps"
	"slices"

	"github.com/Knetic/govaluate"
	"github.com/robbyt/go-calcscript/engines/types"
)

// Executable is a parsed expression table.
type Executable struct {
	scriptBodyBytes []byte
	Expressions     map[string]*govaluate.EvaluableExpression
}

func newExecutable(
	scriptBodyBytes []byte,
	expressions map[string]*govaluate.EvaluableExpression,
) *Executable {
	if len(scriptBodyBytes) == 0 || len(expressions) == 0 {
		return nil
	}
	return &Executable{
		scriptBodyBytes: scriptBodyBytes,
		Expressions:     expressions,
	}
}

func (e *Executable) GetSource() string {
	return string(e.scriptBodyBytes)
}

func (e *Executable) GetByteCode() any {
	return e
}

func (e *Executable) GetEngineType() types.Type {
	return types.Expr
}

// Lookup returns the expression for name, falling back to DefaultEntry.
func (e *Executable) Lookup(name string) (*govaluate.EvaluableExpression, bool) {
	if expr, ok := e.Expressions[name]; ok {
		return expr, true
	}
	expr, ok := e.Expressions[DefaultEntry]
	return expr, ok
}

// Names returns the entry names in sorted order.
func (e *Executable) Names() []string {
	return slices.Sorted(maps.Keys(e.Expressions))
}
