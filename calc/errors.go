package calc

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidOperation = errors.New("invalid operation")
	ErrMissingArgument  = errors.New("missing argument")
	ErrNotNumeric       = errors.New("argument is not numeric")
)

// InvalidOperationError is returned when the operation tag is not one of the
// recognized operations.
type InvalidOperationError struct {
	Operation string
}

func (e *InvalidOperationError) Error() string {
	return "Invalid operation: " + e.Operation
}

// Is matches ErrInvalidOperation.
func (e *InvalidOperationError) Is(target error) bool {
	return target == ErrInvalidOperation
}

// MissingArgumentError is returned when an operation needs an argument that
// was not supplied.
type MissingArgumentError struct {
	Name      string
	Operation string
}

func (e *MissingArgumentError) Error() string {
	if e.Operation == "" {
		return "Missing argument: " + e.Name
	}
	return fmt.Sprintf("Missing argument: %s for operation %s", e.Name, e.Operation)
}

// Is matches ErrMissingArgument.
func (e *MissingArgumentError) Is(target error) bool {
	return target == ErrMissingArgument
}
