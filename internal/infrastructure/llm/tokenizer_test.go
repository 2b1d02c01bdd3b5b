package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountTokensDeterministic(t *testing.T) {
	text := "Generate a recipe for a quick vegetarian dinner."
	first := CountTokens(text)
	second := CountTokens(text)
	assert.Equal(t, first, second)
	assert.Greater(t, first, 0)
}

func TestCountTokensEmpty(t *testing.T) {
	assert.Equal(t, 0, CountTokens(""))
}

func TestCountTokensGrowsWithText(t *testing.T) {
	short := CountTokens("pasta")
	long := CountTokens("pasta with tomato sauce, garlic, basil and olive oil")
	assert.Greater(t, long, short)
}
