package compiler

import "errors"

var (
	ErrContentNil       = errors.New("expression content is nil")
	ErrNoInstructions   = errors.New("expression table has no entries")
	ErrValidationFailed = errors.New("expression validation error")
	ErrDuplicateEntry   = errors.New("duplicate expression table entry")
)
