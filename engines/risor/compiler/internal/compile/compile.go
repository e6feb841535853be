package compile

import (
	"context"
	"errors"
	"fmt"

	risorLib "github.com/risor-io/risor"
	risorCompiler "github.com/risor-io/risor/compiler"
	risorErrors "github.com/risor-io/risor/errz"
	risorParser "github.com/risor-io/risor/parser"
)

// Compile parses and compiles the script content into bytecode
func Compile(scriptContent *string, options ...risorCompiler.Option) (*risorCompiler.Code, error) {
	if scriptContent == nil {
		return nil, ErrContentNil
	}

	ast, err := risorParser.Parse(context.Background(), *scriptContent)
	if err != nil {
		errMsg := err.Error()
		var friendlyErr risorErrors.FriendlyError
		if errors.As(err, &friendlyErr) {
			errMsg = friendlyErr.FriendlyErrorMessage()
		}
		return nil, fmt.Errorf("%w: %s", ErrCompileFailed, errMsg)
	}

	bc, err := risorCompiler.Compile(ast, options...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompileFailed, err)
	}

	return bc, nil
}

// CompileWithGlobals compiles with the default Risor globals plus the given
// names. Globals injected at eval time, like ctx, must be declared here or the
// compiler rejects the script as referencing undefined names.
func CompileWithGlobals(scriptContent *string, globals []string) (*risorCompiler.Code, error) {
	cfg := risorLib.NewConfig()
	globalNames := append(cfg.GlobalNames(), globals...)

	return Compile(scriptContent, risorCompiler.WithGlobalNames(globalNames))
}
