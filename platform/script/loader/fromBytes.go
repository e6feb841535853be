package loader

import (
	"bytes"
	"fmt"
	"io"
	"net/url"

	"github.com/robbyt/go-calcscript/internal/helpers"
)

// FromBytes loads a script from a byte slice, such as an embedded file.
type FromBytes struct {
	content   []byte
	sourceURL *url.URL
}

// NewFromBytes creates a loader from content, which must contain something
// other than whitespace.
func NewFromBytes(content []byte) (*FromBytes, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, fmt.Errorf(
			"%w: content is empty or contains only whitespace",
			ErrScriptNotAvailable,
		)
	}

	u, err := url.Parse("bytes://inline/" + helpers.SHA256Bytes(content)[:8])
	if err != nil {
		return nil, fmt.Errorf("failed to create source URL: %w", err)
	}

	return &FromBytes{
		content:   bytes.Clone(content),
		sourceURL: u,
	}, nil
}

func (l *FromBytes) String() string {
	return fmt.Sprintf("loader.FromBytes{Bytes: %d}", len(l.content))
}

func (l *FromBytes) GetReader() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(l.content)), nil
}

func (l *FromBytes) GetSourceURL() *url.URL {
	return l.sourceURL
}
