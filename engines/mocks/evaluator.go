package mocks

import (
	"context"

	"github.com/robbyt/go-calcscript/platform"
	"github.com/stretchr/testify/mock"
)

// Evaluator is a mock implementation of platform.Evaluator.
type Evaluator struct {
	mock.Mock
}

// Eval returns the configured response and error. A nil response is allowed.
func (m *Evaluator) Eval(ctx context.Context) (platform.EvaluatorResponse, error) {
	args := m.Called(ctx)
	resp, _ := args.Get(0).(platform.EvaluatorResponse)
	return resp, args.Error(1)
}

// AddDataToContext returns the configured context and error. A nil context
// falls back to ctx.
func (m *Evaluator) AddDataToContext(ctx context.Context, d ...map[string]any) (context.Context, error) {
	args := m.Called(ctx, d)
	if c, ok := args.Get(0).(context.Context); ok {
		return c, args.Error(1)
	}
	return ctx, args.Error(1)
}
