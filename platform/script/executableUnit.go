package script

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/robbyt/go-calcscript/engines/types"
	"github.com/robbyt/go-calcscript/internal/helpers"
	"github.com/robbyt/go-calcscript/platform/data"
	"github.com/robbyt/go-calcscript/platform/script/loader"
)

const checksumLength = 12

// ExecutableUnit is a script compiled once and evaluated many times, together
// with the provider that supplies its runtime data.
type ExecutableUnit struct {
	// ID identifies this unit; a checksum of the source unless the caller
	// supplied one.
	ID string

	CreatedAt time.Time

	ScriptLoader loader.Loader
	Compiler     Compiler
	Content      ExecutableContent

	// DataProvider supplies the invocation context at evaluation time.
	DataProvider data.Provider

	logger *slog.Logger
}

// NewExecutableUnit loads the script from scriptLoader and compiles it.
func NewExecutableUnit(
	handler slog.Handler,
	versionID string,
	scriptLoader loader.Loader,
	compiler Compiler,
	dataProvider data.Provider,
) (*ExecutableUnit, error) {
	_, logger := helpers.SetupLogger(handler, "script", "ExecutableUnit")

	if compiler == nil {
		return nil, ErrCompilerNil
	}
	if scriptLoader == nil {
		return nil, ErrLoaderNil
	}

	reader, err := scriptLoader.GetReader()
	if err != nil {
		return nil, fmt.Errorf("failed to get reader from loader: %w", err)
	}

	exe, err := compiler.Compile(reader)
	if err != nil {
		return nil, fmt.Errorf("compiler failed: %w", err)
	}

	if versionID == "" {
		versionID = helpers.ShortChecksum([]byte(exe.GetSource()), checksumLength)
	}

	logger = logger.With("ID", versionID)
	logger.Debug("executable unit created", "engine", exe.GetEngineType())

	return &ExecutableUnit{
		ID:           versionID,
		CreatedAt:    time.Now(),
		ScriptLoader: scriptLoader,
		Compiler:     compiler,
		Content:      exe,
		DataProvider: dataProvider,
		logger:       logger,
	}, nil
}

func (exe *ExecutableUnit) String() string {
	return fmt.Sprintf("ExecutableUnit{ID: %s, CreatedAt: %s, Compiler: %s, Loader: %s}",
		exe.ID, exe.CreatedAt, exe.Compiler, exe.ScriptLoader)
}

// GetID returns the unit identifier.
func (exe *ExecutableUnit) GetID() string {
	return exe.ID
}

// GetContent returns the compiled script.
func (exe *ExecutableUnit) GetContent() ExecutableContent {
	return exe.Content
}

func (exe *ExecutableUnit) GetCreatedAt() time.Time {
	return exe.CreatedAt
}

// GetEngineType returns the engine the content was compiled for.
func (exe *ExecutableUnit) GetEngineType() types.Type {
	return exe.Content.GetEngineType()
}

func (exe *ExecutableUnit) GetCompiler() Compiler {
	return exe.Compiler
}

func (exe *ExecutableUnit) GetLoader() loader.Loader {
	return exe.ScriptLoader
}

// GetDataProvider returns the provider supplying runtime data.
func (exe *ExecutableUnit) GetDataProvider() data.Provider {
	return exe.DataProvider
}
