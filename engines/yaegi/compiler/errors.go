package compiler

import "errors"

var (
	ErrContentNil          = errors.New("yaegi content is nil")
	ErrNoInstructions      = errors.New("yaegi script has no code")
	ErrValidationFailed    = errors.New("yaegi script validation error")
	ErrForbiddenImport     = errors.New("yaegi script imports a forbidden package")
	ErrEntrypointNotFound  = errors.New("yaegi entrypoint not found")
	ErrEntrypointSignature = errors.New("yaegi entrypoint has the wrong signature")
)
