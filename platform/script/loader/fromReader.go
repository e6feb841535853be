package loader

import (
	"bytes"
	"fmt"
	"io"
	"net/url"

	"github.com/robbyt/go-calcscript/internal/helpers"
)

// FromReader buffers a script read from an io.Reader, such as stdin, so it
// can be compiled more than once.
type FromReader struct {
	content   []byte
	sourceURL *url.URL
}

// NewFromReader reads r to EOF. sourceName becomes the host of the
// reader:// source URL and defaults to "unnamed".
func NewFromReader(r io.Reader, sourceName string) (*FromReader, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: reader is nil", ErrScriptNotAvailable)
	}

	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read from reader: %w", err)
	}
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, fmt.Errorf(
			"%w: content is empty or contains only whitespace",
			ErrScriptNotAvailable,
		)
	}

	if sourceName == "" {
		sourceName = "unnamed"
	}
	u := &url.URL{
		Scheme: "reader",
		Host:   sourceName,
		Path:   "/" + helpers.SHA256Bytes(content)[:8],
	}

	return &FromReader{
		content:   content,
		sourceURL: u,
	}, nil
}

func (l *FromReader) String() string {
	return fmt.Sprintf("loader.FromReader{Bytes: %d, Source: %s}", len(l.content), l.sourceURL)
}

// GetReader returns a new reader over the buffered content.
func (l *FromReader) GetReader() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(l.content)), nil
}

func (l *FromReader) GetSourceURL() *url.URL {
	return l.sourceURL
}
