package recipe

import (
	"encoding/json"
	"strings"

	"recipe-ai-api/internal/domain/entity"
	apperrors "recipe-ai-api/pkg/errors"
)

// ProcessCompletion strips markdown code fences the model tends to wrap
// JSON output in, and trims surrounding whitespace.
func ProcessCompletion(completion string) string {
	completion = strings.ReplaceAll(completion, "```json", "")
	completion = strings.ReplaceAll(completion, "```", "")
	return strings.TrimSpace(completion)
}

// ParseCompletion decodes a processed completion into a Recipe. A completion
// that does not end with a closing brace was truncated mid-generation and is
// reported as incomplete rather than malformed.
func ParseCompletion(completion string) (*entity.Recipe, error) {
	if !strings.HasSuffix(completion, "}") {
		return nil, apperrors.New(apperrors.CodeIncompleteResponse, "incomplete JSON response")
	}

	var r entity.Recipe
	if err := json.Unmarshal([]byte(completion), &r); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeIncompleteResponse, "failed to parse recipe JSON")
	}
	return &r, nil
}
