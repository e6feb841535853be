package data

import (
	"context"
	"errors"
	"fmt"
)

// CompositeProvider chains providers. Values from later providers override
// earlier ones, so static defaults go first and runtime data last.
type CompositeProvider struct {
	providers []Provider
}

// NewCompositeProvider creates a CompositeProvider querying providers in order.
func NewCompositeProvider(providers ...Provider) *CompositeProvider {
	return &CompositeProvider{
		providers: providers,
	}
}

func (p *CompositeProvider) String() string {
	return fmt.Sprintf("data.CompositeProvider{Providers: %d}", len(p.providers))
}

// GetData calls each provider in sequence and merges the results.
func (p *CompositeProvider) GetData(ctx context.Context) (map[string]any, error) {
	result := make(map[string]any)

	for i, provider := range p.providers {
		if provider == nil {
			continue
		}

		d, err := provider.GetData(ctx)
		if err != nil {
			return nil, fmt.Errorf("error from provider %d: %w", i, err)
		}
		mergeInto(result, d)
	}

	return result, nil
}

// AddDataToContext forwards the data to every provider that accepts runtime
// data. Static providers are skipped; it is an error only if none accepted it.
func (p *CompositeProvider) AddDataToContext(
	ctx context.Context,
	data ...map[string]any,
) (context.Context, error) {
	var errz []error
	accepted := false

	for i, provider := range p.providers {
		if provider == nil {
			continue
		}

		newCtx, err := provider.AddDataToContext(ctx, data...)
		if errors.Is(err, ErrStaticProviderNoRuntimeUpdates) {
			continue
		}
		accepted = true
		ctx = newCtx
		if err != nil {
			errz = append(errz, fmt.Errorf("provider %d: %w", i, err))
		}
	}

	if !accepted {
		return ctx, ErrStaticProviderNoRuntimeUpdates
	}
	return ctx, errors.Join(errz...)
}
