package compile

import (
	"fmt"
	"maps"

	"github.com/robbyt/go-calcscript/engines/starlark/internal"
	starlarkLib "go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

func compile(
	scriptBodyBytes []byte,
	opts *syntax.FileOptions,
	globals starlarkLib.StringDict,
) (*starlarkLib.Program, error) {
	if scriptBodyBytes == nil {
		return nil, ErrContentNil
	}

	if opts == nil {
		opts = &syntax.FileOptions{}
	}

	predeclared := internal.StarlarkModules()
	maps.Copy(predeclared, globals)

	f, err := opts.Parse("", scriptBodyBytes, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompileFailed, err)
	}

	prog, err := starlarkLib.FileProgram(f, predeclared.Has)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompileFailed, err)
	}

	return prog, nil
}

// CompileWithEmptyGlobals compiles the script with the given names predeclared
// as None. The real values, such as the ctx dict, are injected at eval time.
func CompileWithEmptyGlobals(
	scriptBodyBytes []byte,
	globals []string,
) (*starlarkLib.Program, error) {
	opts := &syntax.FileOptions{
		GlobalReassign: true,
	}

	stdModules := internal.StarlarkModules()
	predeclared := make(starlarkLib.StringDict, len(globals))
	for _, name := range globals {
		if stdModules.Has(name) {
			continue
		}
		predeclared[name] = starlarkLib.None
	}

	return compile(scriptBodyBytes, opts, predeclared)
}
