// Package llm implements the multi-provider model invocation layer:
// logical model registry, per-family parameter schemas, token counting,
// cost accounting and the provider adapters behind a single Invoke entry.
package llm

import (
	apperrors "recipe-ai-api/pkg/errors"
)

// Family selects the adapter used to reach a model.
type Family string

const (
	// FamilyCompletion covers instruction-completion models invoked with a
	// bare prompt (Bedrock Llama).
	FamilyCompletion Family = "completion"
	// FamilyChat covers chat-completion models (OpenAI).
	FamilyChat Family = "chat"
	// FamilyMessage covers message-based models carrying a protocol version
	// field (Bedrock Claude).
	FamilyMessage Family = "message"
	// FamilyAssistant covers stateful thread/run models (OpenAI Assistants).
	FamilyAssistant Family = "assistant"
)

// ModelSpec maps a logical model name to a provider model id plus default
// invocation parameters. Specs are immutable after process start.
type ModelSpec struct {
	Name            string
	Family          Family
	ProviderModelID string
	TextDefaults    TextParams
	AssistDefaults  AssistantParams
}

// Registry is a static logical-name lookup table. No I/O, safe for
// concurrent reads.
type Registry struct {
	specs map[string]ModelSpec
}

// NewRegistry builds the registry with the supported model set.
// assistantID is the configured OpenAI assistant used by gpt-assistant.
func NewRegistry(assistantID string) *Registry {
	specs := map[string]ModelSpec{
		"llama3-8b": {
			Family:          FamilyCompletion,
			ProviderModelID: "meta.llama3-8b-instruct-v1:0",
			TextDefaults:    TextParams{MaxOutputTokens: 1024, Temperature: 0.7, TopP: 0.9},
		},
		"gpt-4": {
			Family:          FamilyChat,
			ProviderModelID: "gpt-4o-2024-08-06",
			TextDefaults:    TextParams{MaxOutputTokens: 512, Temperature: 0.5, TopP: 0.9},
		},
		"gpt4-latest": {
			Family:          FamilyChat,
			ProviderModelID: "gpt-4o-2024-08-06",
			TextDefaults:    TextParams{MaxOutputTokens: 512, Temperature: 0.5, TopP: 0.9},
		},
		"gpt-3.5": {
			Family:          FamilyChat,
			ProviderModelID: "gpt-3.5-turbo-1106",
			TextDefaults:    TextParams{MaxOutputTokens: 512, Temperature: 0.5, TopP: 0.9},
		},
		"gpt-4o-mini": {
			Family:          FamilyChat,
			ProviderModelID: "gpt-4o-mini",
			TextDefaults:    TextParams{MaxOutputTokens: 256, Temperature: 0.7, TopP: 0.9},
		},
		"gpt-4mini-latest": {
			Family:          FamilyChat,
			ProviderModelID: "gpt-4o-mini-2024-07-18",
			TextDefaults:    TextParams{MaxOutputTokens: 256, Temperature: 0.7, TopP: 0.9},
		},
		"claude-3": {
			Family:          FamilyMessage,
			ProviderModelID: "anthropic.claude-3-sonnet-20240229-v1:0",
			TextDefaults:    TextParams{MaxOutputTokens: 1000, Temperature: 0.7, TopP: 0.9},
		},
		"claude-3-5": {
			Family:          FamilyMessage,
			ProviderModelID: "anthropic.claude-3-5-sonnet-20240620-v1:0",
			TextDefaults:    TextParams{MaxOutputTokens: 512, Temperature: 0.5, TopP: 0.9},
		},
		"gpt-assistant": {
			Family:          FamilyAssistant,
			ProviderModelID: "gpt-4o",
			AssistDefaults: AssistantParams{
				AssistantID:         assistantID,
				MaxCompletionTokens: 1000,
				MaxPromptTokens:     4000,
				Temperature:         0.7,
				Role:                "user",
			},
		},
	}
	for name, spec := range specs {
		spec.Name = name
		specs[name] = spec
	}
	return &Registry{specs: specs}
}

// Resolve returns the spec for a logical model name. Unknown names are a
// client error; there is deliberately no fallback to a default model.
func (r *Registry) Resolve(logicalName string) (ModelSpec, error) {
	spec, ok := r.specs[logicalName]
	if !ok {
		return ModelSpec{}, apperrors.New(apperrors.CodeModelNotSupported, "model not supported").
			WithDetail(logicalName)
	}
	return spec, nil
}

// Names returns all registered logical model names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.specs))
	for name := range r.specs {
		names = append(names, name)
	}
	return names
}
