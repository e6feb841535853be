package script

import "io"

// Compiler validates script source and turns it into ExecutableContent.
type Compiler interface {
	// Compile reads and closes scriptReader, returning the compiled script or
	// the syntax / undefined-global error that stopped it.
	Compile(scriptReader io.ReadCloser) (ExecutableContent, error)
}
