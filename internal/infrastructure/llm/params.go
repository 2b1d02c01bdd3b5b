package llm

// TextParams are the sampling parameters shared by the completion, chat and
// message families.
type TextParams struct {
	MaxOutputTokens  int
	Temperature      float64
	TopP             float64
	PresencePenalty  float64
	FrequencyPenalty float64
}

// AssistantParams drive a thread/run invocation.
type AssistantParams struct {
	AssistantID         string
	MaxCompletionTokens int
	MaxPromptTokens     int
	Temperature         float64
	Role                string
}

// Overrides carries caller-supplied parameter overrides. Nil fields keep the
// model defaults; an explicit zero is honored as a value, so unspecified
// numbers never collapse to zero.
type Overrides struct {
	MaxOutputTokens  *int
	Temperature      *float64
	TopP             *float64
	PresencePenalty  *float64
	FrequencyPenalty *float64

	AssistantID         *string
	MaxCompletionTokens *int
	MaxPromptTokens     *int
	Role                *string
}

// MergedText applies overrides field-by-field over the spec's text defaults.
func (s ModelSpec) MergedText(ov Overrides) TextParams {
	p := s.TextDefaults
	if ov.MaxOutputTokens != nil {
		p.MaxOutputTokens = *ov.MaxOutputTokens
	}
	if ov.Temperature != nil {
		p.Temperature = *ov.Temperature
	}
	if ov.TopP != nil {
		p.TopP = *ov.TopP
	}
	if ov.PresencePenalty != nil {
		p.PresencePenalty = *ov.PresencePenalty
	}
	if ov.FrequencyPenalty != nil {
		p.FrequencyPenalty = *ov.FrequencyPenalty
	}
	return p
}

// MergedAssistant applies overrides field-by-field over the spec's assistant
// defaults.
func (s ModelSpec) MergedAssistant(ov Overrides) AssistantParams {
	p := s.AssistDefaults
	if ov.AssistantID != nil {
		p.AssistantID = *ov.AssistantID
	}
	if ov.MaxCompletionTokens != nil {
		p.MaxCompletionTokens = *ov.MaxCompletionTokens
	}
	if ov.MaxPromptTokens != nil {
		p.MaxPromptTokens = *ov.MaxPromptTokens
	}
	if ov.Temperature != nil {
		p.Temperature = *ov.Temperature
	}
	if ov.Role != nil {
		p.Role = *ov.Role
	}
	return p
}
