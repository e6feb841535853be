// Package compiler parses expression tables: one govaluate expression per
// operation name.
package compiler

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Knetic/govaluate"
	"github.com/robbyt/go-calcscript/platform/script"
)

// Compiler parses expression tables.
type Compiler struct {
	functions map[string]govaluate.ExpressionFunction

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
	return "expr.Compiler"
}

// Compile reads, closes and parses the expression table.
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
	if strings.TrimSpace(string(scriptBodyBytes)) == "" {
		logger.Warn("Empty script content")
		return nil, ErrNoInstructions
	}

	table, err := parseTable(string(scriptBodyBytes))
	if err != nil {
		logger.Warn("Expression table is invalid", "error", err)
		return nil, err
	}

	expressions := make(map[string]*govaluate.EvaluableExpression, len(table))
	var errz []error
	for name, src := range table {
		expr, err := govaluate.NewEvaluableExpressionWithFunctions(src, c.functions)
		if err != nil {
			errz = append(errz, fmt.Errorf("%w: %s: %w", ErrValidationFailed, name, err))
			continue
		}
		expressions[name] = expr
	}
	if len(errz) > 0 {
		err := errors.Join(errz...)
		logger.Warn("Compilation failed", "error", err)
		return nil, err
	}

	exe := newExecutable(scriptBodyBytes, expressions)
	logger.Debug("Compilation successful", "entries", exe.Names())
	return exe, nil
}
