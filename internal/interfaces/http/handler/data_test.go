package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDataTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewDataHandler()

	r := gin.New()
	data := r.Group("/data")
	{
		data.GET("/cuisine", h.Cuisines)
		data.GET("/diets", h.Diets)
		data.GET("/allergies", h.Allergies)
		data.GET("/ingredients", h.Ingredients)
	}
	return r
}

func getJSON(t *testing.T, r *gin.Engine, path string, out any) {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func TestDataCuisines(t *testing.T) {
	r := newDataTestRouter()

	var got []map[string]string
	getJSON(t, r, "/data/cuisine", &got)

	require.NotEmpty(t, got)
	assert.Equal(t, "Surprise me", got[0]["label"])
	for _, entry := range got {
		assert.NotEmpty(t, entry["label"])
		assert.NotEmpty(t, entry["flag"])
	}
}

func TestDataDiets(t *testing.T) {
	r := newDataTestRouter()

	var got []string
	getJSON(t, r, "/data/diets", &got)

	assert.Contains(t, got, "Vegetarian")
	assert.Contains(t, got, "Vegan")
}

func TestDataAllergies(t *testing.T) {
	r := newDataTestRouter()

	var got map[string][]string
	getJSON(t, r, "/data/allergies", &got)

	assert.Contains(t, got["dairy"], "milk")
	assert.Contains(t, got["nuts"], "peanuts")
}

func TestDataIngredientsAreCapitalized(t *testing.T) {
	r := newDataTestRouter()

	var got []string
	getJSON(t, r, "/data/ingredients", &got)

	require.NotEmpty(t, got)
	assert.Contains(t, got, "Chicken breast")
	for _, item := range got {
		assert.Equal(t, strings.ToUpper(item[:1])+item[1:], item)
	}
}
