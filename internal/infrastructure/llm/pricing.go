package llm

import "math"

// CostBreakdown is the monetary cost of one invocation in USD, rounded to
// 6 decimal places. Derived data, never a correctness gate.
type CostBreakdown struct {
	InputCost  float64 `json:"inputCost"`
	OutputCost float64 `json:"outputCost"`
	TotalCost  float64 `json:"totalCost"`
}

// modelRate holds published prices in USD per million tokens. Keeping the
// public per-million figures exact and dividing once at multiplication time
// avoids baking rounding error into the stored rate.
type modelRate struct {
	InputPerMillion  float64
	OutputPerMillion float64
}

// pricing is keyed by provider model id, not logical name: two logical names
// may share one provider id and must price identically.
var pricing = map[string]modelRate{
	"meta.llama3-8b-instruct-v1:0":             {InputPerMillion: 0.3, OutputPerMillion: 0.6},
	"gpt-4o-2024-08-06":                        {InputPerMillion: 2.5, OutputPerMillion: 10},
	"gpt-4o":                                   {InputPerMillion: 5, OutputPerMillion: 15},
	"gpt-4o-mini":                              {InputPerMillion: 0.15, OutputPerMillion: 0.6},
	"gpt-4o-mini-2024-07-18":                   {InputPerMillion: 0.15, OutputPerMillion: 0.6},
	"gpt-3.5-turbo-1106":                       {InputPerMillion: 2, OutputPerMillion: 6},
	"anthropic.claude-3-sonnet-20240229-v1:0":  {InputPerMillion: 3, OutputPerMillion: 15},
	"anthropic.claude-3-5-sonnet-20240620-v1:0": {InputPerMillion: 3, OutputPerMillion: 15},
}

// defaultRate is the tier applied to unknown provider ids. Pricing is
// advisory observability data, so a missing entry degrades instead of
// failing the invocation.
var defaultRate = modelRate{InputPerMillion: 5, OutputPerMillion: 15}

// Cost computes the cost breakdown for a provider model id and token counts.
func Cost(providerModelID string, inputTokens, outputTokens int) CostBreakdown {
	rate, ok := pricing[providerModelID]
	if !ok {
		rate = defaultRate
	}
	in := round6(float64(inputTokens) * rate.InputPerMillion / 1e6)
	out := round6(float64(outputTokens) * rate.OutputPerMillion / 1e6)
	return CostBreakdown{
		InputCost:  in,
		OutputCost: out,
		TotalCost:  round6(in + out),
	}
}

func round6(x float64) float64 {
	return math.Round(x*1e6) / 1e6
}
