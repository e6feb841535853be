package compiler

import (
	"fmt"
	"log/slog"
	"maps"
	"os"

	"github.com/Knetic/govaluate"
	"github.com/robbyt/go-calcscript/internal/helpers"
)

// FunctionalOption configures a Compiler.
type FunctionalOption func(*Compiler) error

// WithFunctions adds functions callable from expressions. They replace
// built-in functions of the same name.
func WithFunctions(fns map[string]govaluate.ExpressionFunction) FunctionalOption {
	return func(c *Compiler) error {
		for name, fn := range fns {
			if fn == nil {
				return fmt.Errorf("function %q is nil", name)
			}
			c.functions[name] = fn
		}
		return nil
	}
}

// WithLogHandler sets the log handler. Prefer this over WithLogger.
func WithLogHandler(handler slog.Handler) FunctionalOption {
	return func(c *Compiler) error {
		if handler == nil {
			return fmt.Errorf("log handler cannot be nil")
		}
		c.logHandler = handler
		c.logger = nil
		return nil
	}
}

// WithLogger sets a preconfigured logger.
func WithLogger(logger *slog.Logger) FunctionalOption {
	return func(c *Compiler) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		c.logger = logger
		c.logHandler = nil
		return nil
	}
}

func (c *Compiler) applyDefaults() {
	if c.logHandler == nil && c.logger == nil {
		c.logHandler = slog.NewTextHandler(os.Stderr, nil)
	}
	c.functions = maps.Clone(Functions)
}

func (c *Compiler) validate() error {
	if c.logHandler == nil && c.logger == nil {
		return fmt.Errorf("either log handler or logger must be specified")
	}
	return nil
}

func (c *Compiler) setupLogger() {
	if c.logger != nil {
		c.logHandler = c.logger.Handler()
		return
	}
	c.logHandler, c.logger = helpers.SetupLogger(c.logHandler, "expr", "Compiler")
}
