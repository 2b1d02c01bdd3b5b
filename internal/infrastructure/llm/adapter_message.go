package llm

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"

	apperrors "recipe-ai-api/pkg/errors"
)

// anthropicVersion is the protocol version Bedrock requires on every
// Claude message request.
const anthropicVersion = "bedrock-2023-05-31"

// messageAdapter reaches message-based models (Claude) through Bedrock
// InvokeModel. Only the first content block is read; an empty block list
// yields the empty string.
type messageAdapter struct {
	client BedrockInvoker
}

type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type claudeRequest struct {
	AnthropicVersion string          `json:"anthropic_version"`
	MaxTokens        int             `json:"max_tokens"`
	Temperature      float64         `json:"temperature"`
	TopP             float64         `json:"top_p"`
	Messages         []claudeMessage `json:"messages"`
}

type claudeContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type claudeResponse struct {
	Content []claudeContentBlock `json:"content"`
}

func (a *messageAdapter) invokeText(ctx context.Context, modelID, prompt string, p TextParams) (adapterResult, error) {
	ctx, span := adapterTracer.Start(ctx, "llm.message.invoke")
	defer span.End()

	body, err := json.Marshal(claudeRequest{
		AnthropicVersion: anthropicVersion,
		MaxTokens:        p.MaxOutputTokens,
		Temperature:      p.Temperature,
		TopP:             p.TopP,
		Messages: []claudeMessage{
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return adapterResult{}, apperrors.Wrap(err, apperrors.CodeProviderError, "claude request encoding failed")
	}

	out, err := a.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(modelID),
		ContentType: aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		span.RecordError(err)
		return adapterResult{}, apperrors.Wrap(err, apperrors.CodeProviderError, "claude model invocation failed")
	}

	var resp claudeResponse
	if err := json.Unmarshal(out.Body, &resp); err != nil {
		return adapterResult{}, apperrors.Wrap(err, apperrors.CodeProviderError, "claude response decoding failed")
	}

	var text string
	if len(resp.Content) > 0 {
		text = resp.Content[0].Text
	}

	return adapterResult{
		Text:         text,
		OutputTokens: CountTokens(text),
		Usage:        usageOutputOnly,
	}, nil
}
