package data

import (
	"context"
	"fmt"
)

// StaticProvider returns a fixed map, such as defaults compiled into an
// evaluator. It cannot be changed at runtime.
type StaticProvider struct {
	data map[string]any
}

// NewStaticProvider creates a StaticProvider serving a copy of data.
func NewStaticProvider(data map[string]any) *StaticProvider {
	if data == nil {
		data = make(map[string]any)
	}
	return &StaticProvider{
		data: cloneData(data),
	}
}

func (p *StaticProvider) String() string {
	return fmt.Sprintf("data.StaticProvider{Keys: %d}", len(p.data))
}

// GetData returns a clone of the static map regardless of the context.
func (p *StaticProvider) GetData(_ context.Context) (map[string]any, error) {
	return cloneData(p.data), nil
}

// AddDataToContext always fails; static data is fixed at construction.
func (p *StaticProvider) AddDataToContext(
	ctx context.Context,
	_ ...map[string]any,
) (context.Context, error) {
	return ctx, ErrStaticProviderNoRuntimeUpdates
}
