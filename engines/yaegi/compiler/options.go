package compiler

import (
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/robbyt/go-calcscript/internal/helpers"
)

// DefaultEntrypoint is the function a script must define unless
// WithEntrypoint names another.
const DefaultEntrypoint = "Evaluate"

// DefaultAllowedPackages are the standard library packages a script may
// import. Packages reaching the filesystem, network or processes are absent.
var DefaultAllowedPackages = []string{
	"errors",
	"fmt",
	"math",
	"sort",
	"strconv",
	"strings",
	"time",
}

// FunctionalOption configures a Compiler.
type FunctionalOption func(*Compiler) error

// WithEntrypoint sets the name of the function called at eval time. It must
// have the signature func(map[string]any) (any, error).
func WithEntrypoint(name string) FunctionalOption {
	return func(c *Compiler) error {
		if name == "" {
			return fmt.Errorf("entrypoint cannot be empty")
		}
		c.entrypoint = name
		return nil
	}
}

// WithAllowedPackages replaces the import allow list.
func WithAllowedPackages(pkgs []string) FunctionalOption {
	return func(c *Compiler) error {
		c.allowedPackages = slices.Clone(pkgs)
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
	c.entrypoint = DefaultEntrypoint
	c.allowedPackages = slices.Clone(DefaultAllowedPackages)
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
	c.logHandler, c.logger = helpers.SetupLogger(c.logHandler, "yaegi", "Compiler")
}
