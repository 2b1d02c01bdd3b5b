package recipe

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleParameters() Parameters {
	return Parameters{
		MealType:    "dinner",
		Cuisine:     "italian",
		Ingredients: []string{"pasta", "tomato"},
		TimeToCook:  "30 minutes",
		Servings:    2,
		Diet:        "vegetarian",
		Goal:        "weight loss",
		Dislikes:    []string{"mushrooms"},
		Allergies:   []string{"peanuts", "shellfish"},
	}
}

func TestBuildPromptIncludesParameters(t *testing.T) {
	prompt := BuildPrompt(sampleParameters(), nil)

	assert.Contains(t, prompt, "- meal type: dinner")
	assert.Contains(t, prompt, "- cuisine: italian")
	assert.Contains(t, prompt, "- ingredients: pasta, tomato")
	assert.Contains(t, prompt, "- time to cook: 30 minutes")
	assert.Contains(t, prompt, "- servings: 2")
	assert.Contains(t, prompt, "- diet: vegetarian")
	assert.Contains(t, prompt, "- goal: weight loss")
	assert.Contains(t, prompt, "- dislikes: mushrooms")
	assert.Contains(t, prompt, "- allergies: peanuts, shellfish")
}

func TestBuildPromptExcludesAsJSONArray(t *testing.T) {
	prompt := BuildPrompt(sampleParameters(), []string{"Lentil Stew", `Pasta "Deluxe"`})
	assert.True(t, strings.HasSuffix(prompt, `Do not return the previously returned recipes: ["Lentil Stew","Pasta \"Deluxe\""]`))
}

func TestBuildPromptNilExcludes(t *testing.T) {
	prompt := BuildPrompt(sampleParameters(), nil)
	assert.True(t, strings.HasSuffix(prompt, "Do not return the previously returned recipes: []"))
}

func TestBuildPromptDeclaresJSONContract(t *testing.T) {
	prompt := BuildPrompt(sampleParameters(), nil)

	assert.Contains(t, prompt, `"title": "Recipe Name"`)
	assert.Contains(t, prompt, `"macronutrients_per_serving"`)
	assert.Contains(t, prompt, `"includes added sugars": int`)
}

func TestParametersValidate(t *testing.T) {
	p := sampleParameters()
	assert.NoError(t, p.Validate())

	p.MealType = ""
	assert.Error(t, p.Validate())

	p = sampleParameters()
	p.Servings = -1
	assert.Error(t, p.Validate())
}
