package compiler

import (
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/robbyt/go-calcscript/internal/helpers"
	"github.com/robbyt/go-calcscript/platform/constants"
)

// FunctionalOption configures a Compiler.
type FunctionalOption func(*Compiler) error

// WithGlobals sets the global names predeclared at compile time.
func WithGlobals(globals []string) FunctionalOption {
	return func(c *Compiler) error {
		c.globals = slices.Clone(globals)
		return nil
	}
}

// WithCtxGlobal predeclares ctx, which carries the invocation context.
func WithCtxGlobal() FunctionalOption {
	return func(c *Compiler) error {
		if !slices.Contains(c.globals, constants.Ctx) {
			c.globals = append(c.globals, constants.Ctx)
		}
		return nil
	}
}

// WithLogHandler sets the log handler for the compiler.
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

// WithLogger sets a preconfigured logger, keeping its groups.
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
	if c.globals == nil {
		c.globals = []string{}
	}
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
	c.logHandler, c.logger = helpers.SetupLogger(c.logHandler, "starlark", "Compiler")
}
