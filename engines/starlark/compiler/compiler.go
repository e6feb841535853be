package compiler

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/robbyt/go-calcscript/engines/starlark/compiler/internal/compile"
	"github.com/robbyt/go-calcscript/platform/script"
)

// Compiler compiles Starlark source into a program.
type Compiler struct {
	globals    []string
	logHandler slog.Handler
	logger     *slog.Logger
}

// New creates a Compiler configured by opts.
func New(opts ...FunctionalOption) (*Compiler, error) {
	c := &Compiler{}
	c.applyDefaults()

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("error applying compiler option: %w", err)
		}
	}

	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("invalid compiler configuration: %w", err)
	}

	c.setupLogger()
	return c, nil
}

func (c *Compiler) String() string {
	return "starlark.Compiler"
}

// Compile reads, closes and compiles the script.
func (c *Compiler) Compile(scriptReader io.ReadCloser) (script.ExecutableContent, error) {
	if scriptReader == nil {
		return nil, ErrContentNil
	}

	scriptBodyBytes, err := io.ReadAll(scriptReader)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	if err := scriptReader.Close(); err != nil {
		return nil, fmt.Errorf("failed to close reader: %w", err)
	}

	exe, err := c.compile(scriptBodyBytes)
	if err != nil {
		return nil, err
	}
	return exe, nil
}

func (c *Compiler) compile(scriptBodyBytes []byte) (*Executable, error) {
	logger := c.logger.WithGroup("compile")
	if len(scriptBodyBytes) == 0 {
		logger.Error("Compile called with empty script")
		return nil, ErrContentNil
	}

	logger.Debug("Starting validation", "globals", c.globals)

	program, err := compile.CompileWithEmptyGlobals(scriptBodyBytes, c.globals)
	if err != nil {
		logger.Warn("Compilation failed", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}
	if program == nil {
		logger.Error("Compilation returned nil program")
		return nil, ErrBytecodeNil
	}

	exe := newExecutable(scriptBodyBytes, program)
	if exe == nil {
		return nil, ErrExecCreationFailed
	}

	logger.Debug("Validation completed")
	return exe, nil
}
