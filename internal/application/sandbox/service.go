// Package sandbox exposes raw model invocation for experimentation: any
// registered model, caller-controlled parameters, full usage reporting.
package sandbox

import (
	"context"

	"github.com/google/uuid"

	"recipe-ai-api/internal/domain/entity"
	"recipe-ai-api/internal/domain/repository"
	"recipe-ai-api/internal/infrastructure/llm"
	"recipe-ai-api/pkg/logger"
)

// ModelInvoker is the slice of the invocation layer the sandbox needs.
type ModelInvoker interface {
	Invoke(ctx context.Context, logicalModel, prompt string, ov llm.Overrides) (*llm.Result, llm.CostBreakdown, error)
}

// Result is a sandbox invocation outcome with full token and cost detail.
type Result struct {
	Response     string
	InputTokens  int
	OutputTokens int
	TotalTokens  int
	Cost         llm.CostBreakdown
	ExecutionMs  int64
}

// Service runs sandbox invocations and records them in the invocation log.
type Service struct {
	invoker ModelInvoker
	logs    repository.InvocationLogRepository
}

func NewService(invoker ModelInvoker, logs repository.InvocationLogRepository) *Service {
	return &Service{invoker: invoker, logs: logs}
}

// Invoke sends the prompt to the named logical model. Log append failures
// are swallowed so an audit outage cannot break experimentation.
func (s *Service) Invoke(ctx context.Context, model, prompt string, ov llm.Overrides) (*Result, error) {
	result, cost, err := s.invoker.Invoke(ctx, model, prompt, ov)
	if err != nil {
		return nil, err
	}

	entry := &entity.InvocationLog{
		ID:            uuid.NewString(),
		ProviderModel: result.ProviderModel,
		Prompt:        prompt,
		Response:      result.Text,
		InputTokens:   result.InputTokens,
		OutputTokens:  result.OutputTokens,
		TotalTokens:   result.TotalTokens,
		InputCost:     cost.InputCost,
		OutputCost:    cost.OutputCost,
		TotalCost:     cost.TotalCost,
		ExecutionMs:   result.ExecutionMs,
	}
	if err := s.logs.Append(ctx, entry); err != nil {
		logger.Warn(ctx, "failed to append invocation log", "error", err)
	}

	return &Result{
		Response:     result.Text,
		InputTokens:  result.InputTokens,
		OutputTokens: result.OutputTokens,
		TotalTokens:  result.TotalTokens,
		Cost:         cost,
		ExecutionMs:  result.ExecutionMs,
	}, nil
}

// Logs returns invocation log entries, newest first.
func (s *Service) Logs(ctx context.Context, limit, offset int) ([]*entity.InvocationLog, error) {
	return s.logs.List(ctx, limit, offset)
}
