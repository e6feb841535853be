package loader

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/robbyt/go-calcscript/internal/helpers"
)

// FromDisk loads a script file from an absolute path.
type FromDisk struct {
	path      string
	sourceURL *url.URL
}

// NewFromDisk accepts an absolute path, optionally prefixed with file://.
// Relative paths and remote schemes are rejected. The file is not read until
// GetReader is called.
func NewFromDisk(path string) (*FromDisk, error) {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return nil, fmt.Errorf("%w: %s", ErrSchemeUnsupported, path)
	}
	path = strings.TrimPrefix(path, "file://")

	if !filepath.IsAbs(path) {
		return nil, fmt.Errorf("%w: relative paths are not supported", ErrScriptNotAvailable)
	}

	path = filepath.Clean(path)
	if path == "/" || path == `\` {
		return nil, fmt.Errorf("%w: path is empty or invalid", ErrScriptNotAvailable)
	}

	u := &url.URL{Scheme: "file", Path: filepath.ToSlash(path)}

	return &FromDisk{
		path:      path,
		sourceURL: u,
	}, nil
}

func (l *FromDisk) String() string {
	noChkSum := fmt.Sprintf("loader.FromDisk{Path: %s}", l.path)

	reader, err := l.GetReader()
	if err != nil {
		return noChkSum
	}
	defer func() { _ = reader.Close() }()

	chksum, err := helpers.SHA256Reader(reader)
	if err != nil {
		return noChkSum
	}

	return fmt.Sprintf("loader.FromDisk{Path: %s, SHA256: %s}", l.path, chksum[:8])
}

func (l *FromDisk) GetReader() (io.ReadCloser, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScriptNotAvailable, err)
	}
	return f, nil
}

func (l *FromDisk) GetSourceURL() *url.URL {
	return l.sourceURL
}
