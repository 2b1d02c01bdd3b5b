package llm

import (
	"context"

	openai "github.com/sashabaranov/go-openai"

	apperrors "recipe-ai-api/pkg/errors"
)

// chatAdapter reaches OpenAI chat-completion models. A zero-choice response
// is not an error: it yields the EmptyResponseText sentinel with zero
// tokens, and the caller bills nothing for it.
type chatAdapter struct {
	client ChatCompleter
}

func (a *chatAdapter) invokeText(ctx context.Context, modelID, prompt string, p TextParams) (adapterResult, error) {
	ctx, span := adapterTracer.Start(ctx, "llm.chat.invoke")
	defer span.End()

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: modelID,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:        p.MaxOutputTokens,
		Temperature:      float32(p.Temperature),
		TopP:             float32(p.TopP),
		PresencePenalty:  float32(p.PresencePenalty),
		FrequencyPenalty: float32(p.FrequencyPenalty),
	})
	if err != nil {
		span.RecordError(err)
		return adapterResult{}, apperrors.Wrap(err, apperrors.CodeProviderError, "openai model invocation failed")
	}

	if len(resp.Choices) == 0 {
		return adapterResult{Text: EmptyResponseText, Usage: usageNone}, nil
	}

	completion := resp.Choices[0].Message.Content
	if resp.Usage.PromptTokens > 0 || resp.Usage.CompletionTokens > 0 {
		return adapterResult{
			Text:         completion,
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			Usage:        usageExact,
		}, nil
	}

	// Some gateways strip usage; fall back to local counting.
	return adapterResult{
		Text:         completion,
		InputTokens:  CountTokens(prompt),
		OutputTokens: CountTokens(completion),
		Usage:        usageExact,
	}, nil
}
