package llm

import (
	"context"
	"net/http"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	openai "github.com/sashabaranov/go-openai"

	"recipe-ai-api/internal/config"
)

// ChatCompleter is the slice of the OpenAI client used by the chat adapter.
// Narrow interfaces keep the adapters testable with in-memory doubles.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// AssistantRunner is the slice of the OpenAI client used by the assistant
// adapter's thread/run sequence.
type AssistantRunner interface {
	CreateThread(ctx context.Context, req openai.ThreadRequest) (openai.Thread, error)
	CreateMessage(ctx context.Context, threadID string, req openai.MessageRequest) (openai.Message, error)
	CreateRun(ctx context.Context, threadID string, req openai.RunRequest) (openai.Run, error)
	RetrieveRun(ctx context.Context, threadID, runID string) (openai.Run, error)
	ListMessage(ctx context.Context, threadID string, limit *int, order *string, after *string, before *string, runID *string) (openai.MessagesList, error)
}

// BedrockInvoker is the slice of the Bedrock runtime client used by the
// completion and message adapters.
type BedrockInvoker interface {
	InvokeModel(ctx context.Context, in *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

// NewOpenAIClient builds the shared OpenAI client. It satisfies both
// ChatCompleter and AssistantRunner.
func NewOpenAIClient(cfg *config.OpenAIConfig) *openai.Client {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	if cfg.Timeout > 0 {
		clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	return openai.NewClientWithConfig(clientCfg)
}

// NewBedrockClient builds the Bedrock runtime client from the ambient AWS
// credential chain.
func NewBedrockClient(ctx context.Context, cfg *config.BedrockConfig) (*bedrockruntime.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, err
	}
	return bedrockruntime.NewFromConfig(awsCfg), nil
}
