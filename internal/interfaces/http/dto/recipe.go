package dto

import (
	"recipe-ai-api/internal/application/recipe"
	"recipe-ai-api/internal/domain/entity"
)

// GenerateRecipeRequest /recipe 请求体
type GenerateRecipeRequest struct {
	Parameters *recipe.Parameters `json:"parameters" binding:"required"`
}

// GenerateRecipeResponse /recipe 成功响应（扁平结构，与前端契约保持一致）
type GenerateRecipeResponse struct {
	RecipeID     string         `json:"recipeId"`
	Response     *entity.Recipe `json:"response"`
	InputTokens  int            `json:"inputTokens"`
	OutputTokens int            `json:"outputTokens"`
	InputCost    float64        `json:"inputCost"`
	OutputCost   float64        `json:"outputCost"`
	TotalCost    float64        `json:"totalCost"`
}

// DuplicateRecipeResponse 标题冲突时的 409 响应，携带已存在的记录
type DuplicateRecipeResponse struct {
	Error          string               `json:"error"`
	ExistingRecipe *entity.RecipeRecord `json:"existingRecipe"`
}

// NewGenerateRecipeResponse 由生成结果构建响应
func NewGenerateRecipeResponse(res *recipe.GenerateResult) GenerateRecipeResponse {
	return GenerateRecipeResponse{
		RecipeID:     res.RecipeID,
		Response:     res.Recipe,
		InputTokens:  res.InputTokens,
		OutputTokens: res.OutputTokens,
		InputCost:    res.Cost.InputCost,
		OutputCost:   res.Cost.OutputCost,
		TotalCost:    res.Cost.TotalCost,
	}
}
