package llm

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"recipe-ai-api/internal/config"
	apperrors "recipe-ai-api/pkg/errors"
	"recipe-ai-api/pkg/logger"
	"recipe-ai-api/pkg/metrics"
)

const assistantInstructions = "Please provide a concise and relevant response."

// noResponseText is returned when a completed run produced no readable
// assistant message.
const noResponseText = "No response"

// assistantAdapter drives the thread/run sequence: create a thread, post the
// prompt, start a run, poll until a terminal status, then read back the
// newest assistant message. Polling is bounded both by iteration count and by
// a wall-clock deadline; either limit expiring surfaces a run-timeout error.
type assistantAdapter struct {
	client       AssistantRunner
	pollInterval time.Duration
	maxPolls     int
	runDeadline  time.Duration
}

func newAssistantAdapter(client AssistantRunner, cfg *config.AssistantConfig) *assistantAdapter {
	return &assistantAdapter{
		client:       client,
		pollInterval: cfg.PollInterval,
		maxPolls:     cfg.MaxPolls,
		runDeadline:  cfg.RunDeadline,
	}
}

func (a *assistantAdapter) invoke(ctx context.Context, modelID, prompt string, p AssistantParams) (adapterResult, error) {
	ctx, span := adapterTracer.Start(ctx, "llm.assistant.invoke")
	defer span.End()

	thread, err := a.client.CreateThread(ctx, openai.ThreadRequest{})
	if err != nil {
		span.RecordError(err)
		return adapterResult{}, apperrors.Wrap(err, apperrors.CodeProviderError, "assistant thread creation failed")
	}

	if _, err := a.client.CreateMessage(ctx, thread.ID, openai.MessageRequest{
		Role:    p.Role,
		Content: prompt,
	}); err != nil {
		span.RecordError(err)
		return adapterResult{}, apperrors.Wrap(err, apperrors.CodeProviderError, "assistant message creation failed")
	}

	temperature := float32(p.Temperature)
	run, err := a.client.CreateRun(ctx, thread.ID, openai.RunRequest{
		AssistantID:         p.AssistantID,
		Model:               modelID,
		Instructions:        assistantInstructions,
		MaxCompletionTokens: p.MaxCompletionTokens,
		MaxPromptTokens:     p.MaxPromptTokens,
		Temperature:         &temperature,
	})
	if err != nil {
		span.RecordError(err)
		return adapterResult{}, apperrors.Wrap(err, apperrors.CodeProviderError, "assistant run creation failed")
	}

	run, err = a.waitForRun(ctx, thread.ID, run.ID)
	if err != nil {
		span.RecordError(err)
		return adapterResult{}, err
	}

	text, err := a.latestAssistantText(ctx, thread.ID)
	if err != nil {
		span.RecordError(err)
		return adapterResult{}, err
	}

	return adapterResult{
		Text:        text,
		TotalTokens: run.Usage.TotalTokens,
		Usage:       usageTotalOnly,
	}, nil
}

// waitForRun polls the run until it reaches a terminal status, giving up at
// maxPolls iterations or once runDeadline elapses.
func (a *assistantAdapter) waitForRun(ctx context.Context, threadID, runID string) (openai.Run, error) {
	deadline := time.Now().Add(a.runDeadline)

	for i := 0; i < a.maxPolls; i++ {
		select {
		case <-ctx.Done():
			return openai.Run{}, apperrors.Wrap(ctx.Err(), apperrors.CodeRunTimeout, "assistant run canceled")
		case <-time.After(a.pollInterval):
		}

		run, err := a.client.RetrieveRun(ctx, threadID, runID)
		if err != nil {
			return openai.Run{}, apperrors.Wrap(err, apperrors.CodeProviderError, "assistant run retrieval failed")
		}

		switch run.Status {
		case openai.RunStatusCompleted:
			metrics.AssistantPollIterations.Observe(float64(i + 1))
			return run, nil
		case openai.RunStatusFailed, openai.RunStatusCancelled, openai.RunStatusExpired, openai.RunStatusIncomplete:
			metrics.AssistantPollIterations.Observe(float64(i + 1))
			return openai.Run{}, apperrors.New(apperrors.CodeRunFailed, fmt.Sprintf("assistant run ended with status %s", run.Status))
		case openai.RunStatusRequiresAction:
			metrics.AssistantPollIterations.Observe(float64(i + 1))
			return openai.Run{}, apperrors.New(apperrors.CodeRunFailed, "assistant run requires tool action, which is not supported")
		}

		if time.Now().After(deadline) {
			break
		}
	}

	metrics.AssistantPollIterations.Observe(float64(a.maxPolls))
	logger.Warn(ctx, "assistant run polling exhausted", "thread_id", threadID, "run_id", runID)
	return openai.Run{}, apperrors.New(apperrors.CodeRunTimeout, "assistant run did not complete in time")
}

// latestAssistantText reads back the newest assistant-authored message and
// returns its first text block.
func (a *assistantAdapter) latestAssistantText(ctx context.Context, threadID string) (string, error) {
	list, err := a.client.ListMessage(ctx, threadID, nil, nil, nil, nil, nil)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeProviderError, "assistant message listing failed")
	}

	var latest *openai.Message
	for i := range list.Messages {
		msg := &list.Messages[i]
		if msg.Role != "assistant" {
			continue
		}
		if latest == nil || msg.CreatedAt > latest.CreatedAt {
			latest = msg
		}
	}
	if latest == nil {
		return noResponseText, nil
	}
	for _, block := range latest.Content {
		if block.Text != nil {
			return block.Text.Value, nil
		}
	}
	return noResponseText, nil
}
