package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestMergedTextKeepsDefaults(t *testing.T) {
	spec := ModelSpec{TextDefaults: TextParams{MaxOutputTokens: 512, Temperature: 0.5, TopP: 0.9}}

	p := spec.MergedText(Overrides{})
	assert.Equal(t, spec.TextDefaults, p)
}

func TestMergedTextAppliesOverrides(t *testing.T) {
	spec := ModelSpec{TextDefaults: TextParams{MaxOutputTokens: 512, Temperature: 0.5, TopP: 0.9}}

	p := spec.MergedText(Overrides{
		MaxOutputTokens: ptr(2048),
		Temperature:     ptr(0.9),
	})
	assert.Equal(t, 2048, p.MaxOutputTokens)
	assert.Equal(t, 0.9, p.Temperature)
	assert.Equal(t, 0.9, p.TopP)
}

func TestMergedTextExplicitZeroHonored(t *testing.T) {
	spec := ModelSpec{TextDefaults: TextParams{MaxOutputTokens: 512, Temperature: 0.5, TopP: 0.9}}

	p := spec.MergedText(Overrides{Temperature: ptr(0.0)})
	assert.Equal(t, 0.0, p.Temperature)
	assert.Equal(t, 512, p.MaxOutputTokens)
}

func TestMergedAssistantAppliesOverrides(t *testing.T) {
	spec := ModelSpec{AssistDefaults: AssistantParams{
		AssistantID:         "asst_default",
		MaxCompletionTokens: 1000,
		MaxPromptTokens:     4000,
		Temperature:         0.7,
		Role:                "user",
	}}

	p := spec.MergedAssistant(Overrides{
		AssistantID:         ptr("asst_other"),
		MaxCompletionTokens: ptr(200),
	})
	assert.Equal(t, "asst_other", p.AssistantID)
	assert.Equal(t, 200, p.MaxCompletionTokens)
	assert.Equal(t, 4000, p.MaxPromptTokens)
	assert.Equal(t, "user", p.Role)
}
