package calc

import (
	"encoding/json"
	"fmt"
)

// Keys used when an invocation context travels as a data map, which is how
// script engines see it under their ctx global.
const (
	KeyArg1      = "arg1"
	KeyArg2      = "arg2"
	KeyOperation = "operation"
)

// Context is the invocation context for a single evaluation. Arg2 is nil when
// the caller did not supply it.
type Context struct {
	Operation string
	Arg1      float64
	Arg2      *float64
}

// NewUnary returns a context without arg2, as used by inc and dec.
func NewUnary(operation string, arg1 float64) Context {
	return Context{Operation: operation, Arg1: arg1}
}

// NewBinary returns a context carrying both arguments.
func NewBinary(operation string, arg1, arg2 float64) Context {
	return Context{Operation: operation, Arg1: arg1, Arg2: &arg2}
}

func (c Context) String() string {
	if c.Arg2 == nil {
		return fmt.Sprintf("calc.Context{Operation: %s, Arg1: %v}", c.Operation, c.Arg1)
	}
	return fmt.Sprintf(
		"calc.Context{Operation: %s, Arg1: %v, Arg2: %v}",
		c.Operation, c.Arg1, *c.Arg2,
	)
}

// ToMap renders the context in the arg1/arg2/operation map shape. arg2 is
// omitted when unset.
func (c Context) ToMap() map[string]any {
	m := map[string]any{
		KeyOperation: c.Operation,
		KeyArg1:      c.Arg1,
	}
	if c.Arg2 != nil {
		m[KeyArg2] = *c.Arg2
	}
	return m
}

// ContextFromMap decodes an invocation context from host data. arg1 is
// required, arg2 may be absent or nil, and a missing operation becomes the
// empty (invalid) tag.
func ContextFromMap(m map[string]any) (Context, error) {
	var c Context

	if op, ok := m[KeyOperation]; ok && op != nil {
		s, ok := op.(string)
		if !ok {
			return c, fmt.Errorf("operation must be a string, got %T", op)
		}
		c.Operation = s
	}

	raw, ok := m[KeyArg1]
	if !ok || raw == nil {
		return c, &MissingArgumentError{Name: KeyArg1}
	}
	arg1, err := ToFloat(raw)
	if err != nil {
		return c, fmt.Errorf("%s: %w", KeyArg1, err)
	}
	c.Arg1 = arg1

	if raw, ok := m[KeyArg2]; ok && raw != nil {
		arg2, err := ToFloat(raw)
		if err != nil {
			return c, fmt.Errorf("%s: %w", KeyArg2, err)
		}
		c.Arg2 = &arg2
	}

	return c, nil
}

// ToFloat converts any Go numeric value to float64.
func ToFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrNotNumeric, err)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%w: got %T", ErrNotNumeric, v)
	}
}
