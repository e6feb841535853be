package loader

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/robbyt/go-calcscript/internal/helpers"
)

// FromString loads a script held in memory as a string.
type FromString struct {
	content   string
	sourceURL *url.URL
}

// NewFromString creates a loader from content, which is trimmed and must not
// be empty.
func NewFromString(content string) (*FromString, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: content is empty", ErrScriptNotAvailable)
	}

	u, err := url.Parse("string://inline/" + helpers.SHA256(content)[:8])
	if err != nil {
		return nil, fmt.Errorf("failed to create source URL: %w", err)
	}

	return &FromString{
		content:   content,
		sourceURL: u,
	}, nil
}

func (l *FromString) String() string {
	return fmt.Sprintf("loader.FromString{Chars: %d}", len(l.content))
}

func (l *FromString) GetReader() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(l.content)), nil
}

func (l *FromString) GetSourceURL() *url.URL {
	return l.sourceURL
}
