package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-ai-api/internal/application/recipe"
	"recipe-ai-api/internal/domain/entity"
	"recipe-ai-api/internal/infrastructure/llm"
)

const handlerRecipeJSON = `{
  "title": "Lentil Stew",
  "ingredients": [{"ingredient_name": "lentils", "quantity": "200", "unit": "g"}],
  "instructions": {"prep": ["Rinse"], "cook": ["Simmer"], "serving": ["Serve"]},
  "cuisine": "mediterranean",
  "servings": 2,
  "prep_time": 10,
  "cook_time": 25,
  "macronutrients_per_serving": {
    "calories": 320, "protein": 18, "fat": 4,
    "carbs": {"total": 52, "dietary fiber": 12, "total sugars": {"total": 3, "includes added sugars": 0}}
  }
}`

type stubRecipeRepo struct {
	existing *entity.RecipeRecord
	saved    []*entity.RecipeRecord
}

func (s *stubRecipeRepo) Save(_ context.Context, record *entity.RecipeRecord) error {
	s.saved = append(s.saved, record)
	return nil
}

func (s *stubRecipeRepo) FindByTitle(context.Context, string, string) (*entity.RecipeRecord, error) {
	return s.existing, nil
}

func (s *stubRecipeRepo) RecentTitles(context.Context, string, time.Time) ([]string, error) {
	return nil, nil
}

type stubSettingsRepo struct{}

func (stubSettingsRepo) GetExcludedTitles(context.Context, string) ([]string, int64, error) {
	return nil, 0, nil
}

func (stubSettingsRepo) SetExcludedTitles(context.Context, string, []string, int64) error {
	return nil
}

type stubLogRepo struct{}

func (stubLogRepo) Append(context.Context, *entity.InvocationLog) error { return nil }
func (stubLogRepo) List(context.Context, int, int) ([]*entity.InvocationLog, error) {
	return nil, nil
}

type stubInvoker struct {
	text string
	err  error
}

func (s *stubInvoker) Invoke(context.Context, string, string, llm.Overrides) (*llm.Result, llm.CostBreakdown, error) {
	if s.err != nil {
		return nil, llm.CostBreakdown{}, s.err
	}
	return &llm.Result{
		Text:          s.text,
		ProviderModel: "gpt-4o-2024-08-06",
		InputTokens:   100,
		OutputTokens:  50,
		TotalTokens:   150,
	}, llm.CostBreakdown{InputCost: 0.00025, OutputCost: 0.0005, TotalCost: 0.00075}, nil
}

func newRecipeTestRouter(repo *stubRecipeRepo, invoker *stubInvoker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	gen := recipe.NewGenerator(repo, stubSettingsRepo{}, stubLogRepo{}, invoker, nil)
	h := NewRecipeHandler(gen)

	r := gin.New()
	r.POST("/recipe", h.Generate)
	return r
}

func validRecipeBody() string {
	return `{"parameters": {"mealType": "dinner", "cuisine": "italian", "ingredients": ["pasta"], "timeToCook": "30 minutes", "servings": 2, "diet": "vegetarian", "goal": "health", "dislikes": [], "allergies": []}}`
}

func TestRecipeHandlerRequiresUserID(t *testing.T) {
	r := newRecipeTestRouter(&stubRecipeRepo{}, &stubInvoker{text: handlerRecipeJSON})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/recipe", strings.NewReader(validRecipeBody()))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecipeHandlerRequiresParameters(t *testing.T) {
	r := newRecipeTestRouter(&stubRecipeRepo{}, &stubInvoker{text: handlerRecipeJSON})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/recipe?userId=user-1", strings.NewReader(`{}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecipeHandlerSuccess(t *testing.T) {
	repo := &stubRecipeRepo{}
	r := newRecipeTestRouter(repo, &stubInvoker{text: handlerRecipeJSON})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/recipe?userId=user-1", strings.NewReader(validRecipeBody()))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["recipeId"])
	assert.Equal(t, float64(100), resp["inputTokens"])
	assert.Equal(t, float64(50), resp["outputTokens"])
	assert.Equal(t, 0.00075, resp["totalCost"])

	payload, ok := resp["response"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Lentil Stew", payload["title"])

	require.Len(t, repo.saved, 1)
}

func TestRecipeHandlerDuplicateTitle(t *testing.T) {
	existing := &entity.RecipeRecord{ID: "existing-id", UserID: "user-1"}
	r := newRecipeTestRouter(&stubRecipeRepo{existing: existing}, &stubInvoker{text: handlerRecipeJSON})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/recipe?userId=user-1", strings.NewReader(validRecipeBody()))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusConflict, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Recipe with this title already exists", resp["error"])

	record, ok := resp["existingRecipe"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "existing-id", record["recipe_id"])
}

func TestRecipeHandlerTruncatedCompletion(t *testing.T) {
	r := newRecipeTestRouter(&stubRecipeRepo{}, &stubInvoker{text: `{"title": "Lentil`})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/recipe?userId=user-1", strings.NewReader(validRecipeBody()))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
