package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "recipe-ai-api/pkg/errors"
)

const sampleRecipeJSON = `{
  "title": "Lentil Stew",
  "ingredients": [
    {"ingredient_name": "lentils", "quantity": "200", "unit": "g"}
  ],
  "instructions": {
    "prep": ["Rinse the lentils"],
    "cook": ["Simmer for 25 minutes at heat level 4"],
    "serving": ["Serve warm"]
  },
  "cuisine": "mediterranean",
  "servings": 2,
  "prep_time": 10,
  "cook_time": 25,
  "macronutrients_per_serving": {
    "calories": 320,
    "protein": 18,
    "fat": 4,
    "carbs": {
      "total": 52,
      "dietary fiber": 12,
      "total sugars": {"total": 3, "includes added sugars": 0}
    }
  }
}`

func TestProcessCompletionStripsFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, ProcessCompletion("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, ProcessCompletion("  {\"a\":1}  "))
	assert.Equal(t, `{"a":1}`, ProcessCompletion("```\n{\"a\":1}\n```"))
}

func TestParseCompletion(t *testing.T) {
	r, err := ParseCompletion(sampleRecipeJSON)
	require.NoError(t, err)
	assert.Equal(t, "Lentil Stew", r.Title)
	assert.Equal(t, 2, r.Servings)
	assert.Equal(t, 12, r.Macros.Carbs.DietaryFiber)
	assert.Equal(t, 0, r.Macros.Carbs.TotalSugars.IncludesAddedSugars)
}

func TestParseCompletionTruncated(t *testing.T) {
	_, err := ParseCompletion(`{"title": "Lentil Stew", "ingredients": [`)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeIncompleteResponse))
}

func TestParseCompletionMalformed(t *testing.T) {
	_, err := ParseCompletion(`{"title": }`)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeIncompleteResponse))
}
