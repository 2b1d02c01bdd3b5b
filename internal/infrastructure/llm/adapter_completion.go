package llm

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"go.opentelemetry.io/otel"

	apperrors "recipe-ai-api/pkg/errors"
)

var adapterTracer = otel.Tracer("llm.adapter")

// completionAdapter reaches instruction-completion models (Llama) through
// Bedrock InvokeModel. The provider's usage figures are ignored on purpose:
// output tokens are counted with the shared tokenizer so accounting stays
// comparable across providers.
type completionAdapter struct {
	client BedrockInvoker
}

type llamaRequest struct {
	Prompt      string  `json:"prompt"`
	MaxGenLen   int     `json:"max_gen_len"`
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
}

type llamaResponse struct {
	Generation string `json:"generation"`
}

func (a *completionAdapter) invokeText(ctx context.Context, modelID, prompt string, p TextParams) (adapterResult, error) {
	ctx, span := adapterTracer.Start(ctx, "llm.completion.invoke")
	defer span.End()

	body, err := json.Marshal(llamaRequest{
		Prompt:      prompt,
		MaxGenLen:   p.MaxOutputTokens,
		Temperature: p.Temperature,
		TopP:        p.TopP,
	})
	if err != nil {
		return adapterResult{}, apperrors.Wrap(err, apperrors.CodeProviderError, "llama request encoding failed")
	}

	out, err := a.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(modelID),
		ContentType: aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		span.RecordError(err)
		return adapterResult{}, apperrors.Wrap(err, apperrors.CodeProviderError, "llama model invocation failed")
	}

	var resp llamaResponse
	if err := json.Unmarshal(out.Body, &resp); err != nil {
		return adapterResult{}, apperrors.Wrap(err, apperrors.CodeProviderError, "llama response decoding failed")
	}

	return adapterResult{
		Text:         resp.Generation,
		OutputTokens: CountTokens(resp.Generation),
		Usage:        usageOutputOnly,
	}, nil
}
