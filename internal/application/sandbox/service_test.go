package sandbox

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-ai-api/internal/domain/entity"
	"recipe-ai-api/internal/infrastructure/llm"
)

type fakeInvoker struct {
	result    *llm.Result
	cost      llm.CostBreakdown
	err       error
	lastModel string
}

func (f *fakeInvoker) Invoke(_ context.Context, model, _ string, _ llm.Overrides) (*llm.Result, llm.CostBreakdown, error) {
	f.lastModel = model
	return f.result, f.cost, f.err
}

type fakeLogRepo struct {
	entries   []*entity.InvocationLog
	appendErr error
}

func (f *fakeLogRepo) Append(_ context.Context, log *entity.InvocationLog) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.entries = append(f.entries, log)
	return nil
}

func (f *fakeLogRepo) List(context.Context, int, int) ([]*entity.InvocationLog, error) {
	return f.entries, nil
}

func TestSandboxInvoke(t *testing.T) {
	invoker := &fakeInvoker{
		result: &llm.Result{
			Text:          "a haiku about stew",
			ProviderModel: "anthropic.claude-3-sonnet-20240229-v1:0",
			InputTokens:   10,
			OutputTokens:  20,
			TotalTokens:   30,
			ExecutionMs:   7,
		},
		cost: llm.CostBreakdown{InputCost: 0.00003, OutputCost: 0.0003, TotalCost: 0.00033},
	}
	logs := &fakeLogRepo{}
	svc := NewService(invoker, logs)

	res, err := svc.Invoke(context.Background(), "claude-3", "write a haiku", llm.Overrides{})
	require.NoError(t, err)
	assert.Equal(t, "claude-3", invoker.lastModel)
	assert.Equal(t, "a haiku about stew", res.Response)
	assert.Equal(t, 30, res.TotalTokens)
	assert.Equal(t, int64(7), res.ExecutionMs)

	require.Len(t, logs.entries, 1)
	assert.Equal(t, "anthropic.claude-3-sonnet-20240229-v1:0", logs.entries[0].ProviderModel)
	assert.Equal(t, "write a haiku", logs.entries[0].Prompt)
}

func TestSandboxInvokeLogFailureIsSwallowed(t *testing.T) {
	invoker := &fakeInvoker{result: &llm.Result{Text: "ok"}}
	logs := &fakeLogRepo{appendErr: errors.New("db down")}
	svc := NewService(invoker, logs)

	res, err := svc.Invoke(context.Background(), "gpt-4", "hello", llm.Overrides{})
	require.NoError(t, err)
	assert.Equal(t, "ok", res.Response)
}

func TestSandboxInvokeProviderError(t *testing.T) {
	invoker := &fakeInvoker{err: errors.New("boom")}
	svc := NewService(invoker, &fakeLogRepo{})

	_, err := svc.Invoke(context.Background(), "gpt-4", "hello", llm.Overrides{})
	require.Error(t, err)
}
