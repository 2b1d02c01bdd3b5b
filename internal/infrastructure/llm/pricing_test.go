package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCostZeroTokens(t *testing.T) {
	for id := range pricing {
		cost := Cost(id, 0, 0)
		assert.Equal(t, CostBreakdown{}, cost, "model %s", id)
	}
}

func TestCostKnownModels(t *testing.T) {
	cases := []struct {
		providerID string
		in, out    int
		want       CostBreakdown
	}{
		{"gpt-4o-2024-08-06", 1_000_000, 1_000_000, CostBreakdown{InputCost: 2.5, OutputCost: 10, TotalCost: 12.5}},
		{"meta.llama3-8b-instruct-v1:0", 500_000, 500_000, CostBreakdown{InputCost: 0.15, OutputCost: 0.3, TotalCost: 0.45}},
		{"gpt-4o-mini", 1000, 2000, CostBreakdown{InputCost: 0.00015, OutputCost: 0.0012, TotalCost: 0.00135}},
		{"anthropic.claude-3-5-sonnet-20240620-v1:0", 2000, 1000, CostBreakdown{InputCost: 0.006, OutputCost: 0.015, TotalCost: 0.021}},
	}
	for _, tc := range cases {
		got := Cost(tc.providerID, tc.in, tc.out)
		assert.Equal(t, tc.want, got, "model %s", tc.providerID)
	}
}

func TestCostUnknownModelUsesDefaultTier(t *testing.T) {
	got := Cost("some-future-model", 1_000_000, 1_000_000)
	assert.Equal(t, CostBreakdown{InputCost: 5, OutputCost: 15, TotalCost: 20}, got)
}

func TestCostRoundsToSixDecimals(t *testing.T) {
	// 1 token of gpt-4o-mini input is 0.00000015 USD, below the rounding
	// floor, so it rounds to zero.
	got := Cost("gpt-4o-mini", 1, 0)
	assert.Equal(t, 0.0, got.InputCost)

	// 7 output tokens: 0.0000042 rounds to 0.000004.
	got = Cost("gpt-4o-mini", 0, 7)
	assert.Equal(t, 0.000004, got.OutputCost)
	assert.Equal(t, 0.000004, got.TotalCost)
}
