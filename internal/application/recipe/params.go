// Package recipe implements recipe generation: prompt assembly, exclusion
// bookkeeping, model invocation and response parsing.
package recipe

import (
	apperrors "recipe-ai-api/pkg/errors"
)

// Parameters describe the recipe the user wants generated.
type Parameters struct {
	MealType    string   `json:"mealType" binding:"required"`
	Cuisine     string   `json:"cuisine"`
	Ingredients []string `json:"ingredients"`
	TimeToCook  string   `json:"timeToCook"`
	Servings    int      `json:"servings"`
	Diet        string   `json:"diet"`
	Goal        string   `json:"goal"`
	Dislikes    []string `json:"dislikes"`
	Allergies   []string `json:"allergies"`
}

// Validate rejects parameter sets that cannot produce a meaningful prompt.
func (p *Parameters) Validate() error {
	if p.MealType == "" {
		return apperrors.New(apperrors.CodeInvalidParam, "meal type is required")
	}
	if p.Servings < 0 {
		return apperrors.New(apperrors.CodeInvalidParam, "servings must not be negative")
	}
	return nil
}
