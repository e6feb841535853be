package compiler

import (
	"fmt"
	"go/parser"
	"go/token"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/robbyt/go-calcscript/platform/script"
	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

// Compiler interprets Go source with yaegi and resolves its entrypoint.
type Compiler struct {
	entrypoint      string
	allowedPackages []string

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
	return "yaegi.Compiler"
}

// Compile reads, closes and interprets the script.
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

	src := wrapSource(string(scriptBodyBytes))
	if src == "" {
		logger.Warn("Empty script content")
		return nil, ErrNoInstructions
	}

	if err := c.validateImports(src); err != nil {
		logger.Warn("Import validation failed", "error", err)
		return nil, err
	}

	fn, err := c.interpret(src)
	if err != nil {
		logger.Warn("Compilation failed", "error", err)
		return nil, err
	}
	logger.Debug("Compilation successful", "entrypoint", c.entrypoint)

	return newExecutable(scriptBodyBytes, c.entrypoint, fn), nil
}

func (c *Compiler) interpret(src string) (fn EntryFunc, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: interpreter panic: %v", ErrValidationFailed, r)
		}
	}()

	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, fmt.Errorf("failed to load stdlib symbols: %w", err)
	}

	if _, err := i.Eval(src); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	v, err := i.Eval("main." + c.entrypoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrEntrypointNotFound, c.entrypoint, err)
	}

	f, ok := v.Interface().(func(map[string]any) (any, error))
	if !ok {
		return nil, fmt.Errorf(
			"%w: expected func(map[string]any) (any, error), got %s",
			ErrEntrypointSignature, v.Type(),
		)
	}
	return f, nil
}

// validateImports rejects imports outside the allow list.
func (c *Compiler) validateImports(src string) error {
	f, err := parser.ParseFile(token.NewFileSet(), "script.go", src, parser.ImportsOnly)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	var forbidden []string
	for _, imp := range f.Imports {
		path, err := strconv.Unquote(imp.Path.Value)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrValidationFailed, err)
		}
		if !slices.Contains(c.allowedPackages, path) {
			forbidden = append(forbidden, path)
		}
	}
	if len(forbidden) > 0 {
		return fmt.Errorf("%w: %s", ErrForbiddenImport, strings.Join(forbidden, ", "))
	}
	return nil
}

// wrapSource adds a main package clause when the script has none, and returns
// "" when nothing but whitespace and comments remain.
func wrapSource(src string) string {
	hasCode := false
	hasPackage := false
	for line := range strings.SplitSeq(src, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		hasCode = true
		if strings.HasPrefix(line, "package ") {
			hasPackage = true
		}
		break
	}
	if !hasCode {
		return ""
	}
	if hasPackage {
		return src
	}
	return "package main\n\n" + src
}
