// Package loader reads script source from strings, byte slices, readers and
// disk.
package loader

import (
	"io"
	"net/url"
)

// Loader provides script source to a compiler.
type Loader interface {
	// GetReader returns a fresh reader over the script source.
	GetReader() (io.ReadCloser, error)

	// GetSourceURL identifies where the source came from.
	GetSourceURL() *url.URL
}
