package compiler

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/robbyt/go-calcscript/engines/risor/compiler/internal/compile"
	"github.com/robbyt/go-calcscript/platform/script"
)

// Compiler compiles Risor source into bytecode.
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
	return "risor.Compiler"
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
		return nil, ErrContentNil
	}
	scriptContent := string(scriptBodyBytes)

	trimmed := strings.TrimSpace(scriptContent)
	if trimmed == "" {
		logger.Warn("Empty script content")
		return nil, ErrNoInstructions
	}
	if isCommentOnly(trimmed) {
		logger.Warn("Script contains only comments")
		return nil, ErrNoInstructions
	}

	logger.Debug("Starting validation", "globals", c.globals)

	bc, err := compile.CompileWithGlobals(&scriptContent, c.globals)
	if err != nil {
		logger.Warn("Compilation failed", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}
	if bc == nil {
		logger.Error("Compilation returned nil bytecode")
		return nil, ErrBytecodeNil
	}

	instructionCount := bc.InstructionCount()
	logger.Debug("Compilation successful", "instructionCount", instructionCount)
	if instructionCount < 1 {
		return nil, ErrNoInstructions
	}

	exe := newExecutable(scriptBodyBytes, bc)
	if exe == nil {
		return nil, ErrExecCreationFailed
	}
	return exe, nil
}

// isCommentOnly reports whether every non-blank line is a # or // comment.
func isCommentOnly(src string) bool {
	for line := range strings.SplitSeq(src, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}
		return false
	}
	return true
}
