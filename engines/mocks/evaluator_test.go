package mocks

import (
	"context"
	"errors"
	"testing"

	"github.com/robbyt/go-calcscript/platform"
	"github.com/robbyt/go-calcscript/platform/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEvaluatorImplementsEvaluator(t *testing.T) {
	t.Parallel()
	var _ platform.Evaluator = (*Evaluator)(nil)
}

func TestEvaluator(t *testing.T) {
	t.Parallel()

	t.Run("eval returns response", func(t *testing.T) {
		t.Parallel()
		resp := &EvaluatorResponse{}
		resp.On("Interface").Return(7.0)

		m := &Evaluator{}
		m.On("Eval", mock.Anything).Return(resp, nil)

		got, err := m.Eval(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 7.0, got.Interface())
		m.AssertExpectations(t)
		resp.AssertExpectations(t)
	})

	t.Run("eval returns error with nil response", func(t *testing.T) {
		t.Parallel()
		m := &Evaluator{}
		m.On("Eval", mock.Anything).Return(nil, errors.New("boom"))

		got, err := m.Eval(context.Background())
		require.EqualError(t, err, "boom")
		assert.Nil(t, got)
	})

	t.Run("add data to context", func(t *testing.T) {
		t.Parallel()
		input := map[string]any{"arg1": 1}
		enriched := context.WithValue(context.Background(), constants.EvalData, input)

		m := &Evaluator{}
		m.On("AddDataToContext", mock.Anything, []map[string]any{input}).Return(enriched, nil)

		got, err := m.AddDataToContext(context.Background(), input)
		require.NoError(t, err)
		assert.Equal(t, enriched, got)
		m.AssertExpectations(t)
	})

	t.Run("add data to context falls back to input ctx", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()

		m := &Evaluator{}
		m.On("AddDataToContext", ctx, mock.Anything).Return(nil, errors.New("rejected"))

		got, err := m.AddDataToContext(ctx, map[string]any{"arg1": 1})
		require.Error(t, err)
		assert.Equal(t, ctx, got)
	})
}
