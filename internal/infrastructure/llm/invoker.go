package llm

import (
	"context"
	"time"

	"recipe-ai-api/internal/config"
	"recipe-ai-api/pkg/logger"
	"recipe-ai-api/pkg/metrics"
)

// Result is the reconciled outcome of a single model invocation. Token
// counts are always filled in: figures the provider did not report are
// derived locally from the tokenizer.
type Result struct {
	Text          string
	ProviderModel string
	InputTokens   int
	OutputTokens  int
	TotalTokens   int
	ExecutionMs   int64
}

// Invoker dispatches a prompt to whichever adapter serves the resolved
// model's family, reconciles token usage and prices the call. It has no
// persistence side effects.
type Invoker struct {
	registry  *Registry
	text      map[Family]textAdapter
	assistant *assistantAdapter
}

// NewInvoker wires the per-family adapters over the injected provider
// clients.
func NewInvoker(registry *Registry, chat ChatCompleter, bedrock BedrockInvoker, runner AssistantRunner, assistantCfg *config.AssistantConfig) *Invoker {
	return &Invoker{
		registry: registry,
		text: map[Family]textAdapter{
			FamilyCompletion: &completionAdapter{client: bedrock},
			FamilyChat:       &chatAdapter{client: chat},
			FamilyMessage:    &messageAdapter{client: bedrock},
		},
		assistant: newAssistantAdapter(runner, assistantCfg),
	}
}

// Registry exposes the model table for validation and listing.
func (inv *Invoker) Registry() *Registry {
	return inv.registry
}

// Invoke resolves the logical model, merges overrides onto its defaults,
// calls the provider and returns the reconciled result with its cost.
func (inv *Invoker) Invoke(ctx context.Context, logicalModel, prompt string, ov Overrides) (*Result, CostBreakdown, error) {
	spec, err := inv.registry.Resolve(logicalModel)
	if err != nil {
		return nil, CostBreakdown{}, err
	}

	ctx = logger.WithContext(ctx, logger.ModelKey, logicalModel)
	start := time.Now()

	var raw adapterResult
	if spec.Family == FamilyAssistant {
		raw, err = inv.assistant.invoke(ctx, spec.ProviderModelID, prompt, spec.MergedAssistant(ov))
	} else {
		raw, err = inv.text[spec.Family].invokeText(ctx, spec.ProviderModelID, prompt, spec.MergedText(ov))
	}
	elapsed := time.Since(start)

	family := string(spec.Family)
	metrics.LLMCallDuration.WithLabelValues(family, logicalModel).Observe(elapsed.Seconds())
	if err != nil {
		metrics.LLMCallTotal.WithLabelValues(family, logicalModel, "error").Inc()
		logger.Error(ctx, "model invocation failed", err, "model", logicalModel)
		return nil, CostBreakdown{}, err
	}
	metrics.LLMCallTotal.WithLabelValues(family, logicalModel, "success").Inc()

	res := reconcile(raw, prompt)
	res.ProviderModel = spec.ProviderModelID
	res.ExecutionMs = elapsed.Milliseconds()

	cost := Cost(spec.ProviderModelID, res.InputTokens, res.OutputTokens)
	metrics.LLMTokensUsed.WithLabelValues(family, logicalModel, "input").Add(float64(res.InputTokens))
	metrics.LLMTokensUsed.WithLabelValues(family, logicalModel, "output").Add(float64(res.OutputTokens))
	metrics.LLMCostUSD.WithLabelValues(logicalModel, "input").Add(cost.InputCost)
	metrics.LLMCostUSD.WithLabelValues(logicalModel, "output").Add(cost.OutputCost)

	logger.Info(ctx, "model invocation completed",
		"model", logicalModel,
		"input_tokens", res.InputTokens,
		"output_tokens", res.OutputTokens,
		"total_cost", cost.TotalCost,
		"execution_ms", res.ExecutionMs,
	)
	return res, cost, nil
}

// reconcile fills in the token figures the adapter could not observe.
func reconcile(raw adapterResult, prompt string) *Result {
	res := &Result{Text: raw.Text}

	switch raw.Usage {
	case usageExact:
		res.InputTokens = raw.InputTokens
		res.OutputTokens = raw.OutputTokens
	case usageOutputOnly:
		res.InputTokens = CountTokens(prompt)
		res.OutputTokens = raw.OutputTokens
	case usageTotalOnly:
		res.InputTokens = CountTokens(prompt)
		res.OutputTokens = raw.TotalTokens - res.InputTokens
		if res.OutputTokens < 0 {
			res.OutputTokens = 0
		}
	case usageNone:
		// empty response: nothing was consumed
	}

	res.TotalTokens = res.InputTokens + res.OutputTokens
	return res
}
