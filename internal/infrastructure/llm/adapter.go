package llm

import "context"

// usageKind records which token figures an adapter actually observed, so the
// orchestrator knows what still has to be reconciled locally.
type usageKind int

const (
	// usageNone: no tokens consumed (empty chat response sentinel).
	usageNone usageKind = iota
	// usageExact: provider reported both prompt and completion tokens.
	usageExact
	// usageOutputOnly: only the completion was counted locally.
	usageOutputOnly
	// usageTotalOnly: provider reported a combined total.
	usageTotalOnly
)

// adapterResult is the raw per-provider outcome before token reconciliation.
type adapterResult struct {
	Text         string
	InputTokens  int
	OutputTokens int
	TotalTokens  int
	Usage        usageKind
}

// EmptyResponseText is the sentinel returned when a chat model yields zero
// choices. Callers must treat it as a successful, zero-cost empty result.
const EmptyResponseText = "Empty Response"

// textAdapter is implemented by the completion, chat and message transports.
type textAdapter interface {
	invokeText(ctx context.Context, modelID, prompt string, p TextParams) (adapterResult, error)
}
