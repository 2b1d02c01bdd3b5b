package recipe

import (
	"encoding/json"
	"fmt"
	"strings"
)

// promptTemplate fixes the full prompt contract, including the JSON shape
// the model is asked to produce. The parser and the Recipe entity depend on
// this shape; change them together.
const promptTemplate = `Given the following parameters, generate a healthy recipe. Ensure that the recipe respects a meal type and all dietary restrictions, dislikes, and allergies provided. The recipe should be feasible within the specified cooking time and suitable for the number of servings indicated.

Parameters:
- meal type: %s
- cuisine: %s
- ingredients: %s
- time to cook: %s
- servings: %d
- diet: %s
- goal: %s
- dislikes: %s
- allergies: %s

Ensure that:
1. The recipe does not include any ingredients listed in the dislikes or allergies.
2. The recipe aligns with the specified diet.
3. The total cooking time does not exceed the specified time to cook.
4. The recipe is appropriate for the number of servings.
5. The recipe supports the specified goal (e.g., low calorie for weight loss).
6. The recipe instructions include the stove heat level (1-10) where applicable.

The response should be in JSON format with the following structure:
{
  "title": "Recipe Name",
  "ingredients": [
    {
      "ingredient_name": "ingredient1",
      "quantity": "quantity1",
      "unit": "unit1"
    },
    {
      "ingredient_name": "ingredient2",
      "quantity": "quantity2",
      "unit": "unit2"
    }
  ],
  "instructions": {
    "prep": [
      "Step1",
      "Step2"
    ],
    "cook": [
      "Step1",
      "Step2"
    ],
    "serving": [
      "Step1",
      "Step2"
    ]
  },
  "cuisine": string,
  "servings": int,
  "prep_time": int,
  "cook_time": int,
  "macronutrients_per_serving": {
    "calories": int,
    "protein": int,
    "fat": int,
    "carbs": {
      "total": int,
      "dietary fiber": int,
      "total sugars": {
        "total": int,
        "includes added sugars": int
      }
    }
  }
}

Do not return the previously returned recipes: %s`

// BuildPrompt renders the generation prompt for the given parameters and
// excluded titles. The exclusion list is embedded as a JSON array so titles
// containing commas or quotes stay unambiguous.
func BuildPrompt(p Parameters, excludeTitles []string) string {
	if excludeTitles == nil {
		excludeTitles = []string{}
	}
	excludesJSON, _ := json.Marshal(excludeTitles)

	return fmt.Sprintf(promptTemplate,
		p.MealType,
		p.Cuisine,
		strings.Join(p.Ingredients, ", "),
		p.TimeToCook,
		p.Servings,
		p.Diet,
		p.Goal,
		strings.Join(p.Dislikes, ", "),
		strings.Join(p.Allergies, ", "),
		string(excludesJSON),
	)
}
