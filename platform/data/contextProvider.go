package data

import (
	"context"
	"errors"
	"fmt"
	"maps"

	"github.com/robbyt/go-calcscript/platform/constants"
)

// ContextProvider stores evaluation data in the context under a key.
type ContextProvider struct {
	contextKey constants.ContextKey
}

// NewContextProvider creates a ContextProvider that reads and writes data under
// contextKey.
func NewContextProvider(contextKey constants.ContextKey) *ContextProvider {
	return &ContextProvider{
		contextKey: contextKey,
	}
}

func (p *ContextProvider) String() string {
	return fmt.Sprintf("data.ContextProvider{Key: %s}", p.contextKey)
}

// GetData extracts data from the context using the configured context key.
func (p *ContextProvider) GetData(ctx context.Context) (map[string]any, error) {
	if p.contextKey == "" {
		return nil, ErrContextKeyEmpty
	}

	value := ctx.Value(p.contextKey)
	if value == nil {
		return make(map[string]any), nil
	}

	d, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("invalid input data type: expected map[string]any, got %T", value)
	}

	return cloneData(d), nil
}

// AddDataToContext merges the provided maps into any data already stored in
// the context. Nested maps merge recursively and later values win. Empty keys
// are rejected; the remaining keys are still stored and the errors joined.
func (p *ContextProvider) AddDataToContext(
	ctx context.Context,
	data ...map[string]any,
) (context.Context, error) {
	if p.contextKey == "" {
		return ctx, ErrContextKeyEmpty
	}

	var errz []error
	toStore := make(map[string]any)

	if existing, ok := ctx.Value(p.contextKey).(map[string]any); ok {
		maps.Copy(toStore, existing)
	}

	for _, dataMap := range data {
		if dataMap == nil {
			continue
		}

		clean := make(map[string]any, len(dataMap))
		for key, value := range dataMap {
			if key == "" {
				errz = append(errz, fmt.Errorf("empty keys are not allowed"))
				continue
			}

			processed, err := cloneValue(value)
			if err != nil {
				errz = append(errz, fmt.Errorf("processing value for key '%s': %w", key, err))
				continue
			}
			clean[key] = processed
		}
		mergeInto(toStore, clean)
	}

	return context.WithValue(ctx, p.contextKey, toStore), errors.Join(errz...)
}

// cloneValue copies nested maps so later merges never write into a caller's map.
func cloneValue(value any) (any, error) {
	m, ok := value.(map[string]any)
	if !ok {
		return value, nil
	}

	out := make(map[string]any, len(m))
	for k, v := range m {
		if k == "" {
			return nil, fmt.Errorf("empty keys are not allowed in nested maps")
		}
		cv, err := cloneValue(v)
		if err != nil {
			return nil, fmt.Errorf("processing nested value for key '%s': %w", k, err)
		}
		out[k] = cv
	}
	return out, nil
}
