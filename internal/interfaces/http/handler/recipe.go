package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"recipe-ai-api/internal/application/recipe"
	"recipe-ai-api/internal/interfaces/http/dto"
	"recipe-ai-api/pkg/logger"
)

// RecipeHandler 食谱生成处理器
type RecipeHandler struct {
	generator *recipe.Generator
}

// NewRecipeHandler 创建食谱生成处理器
func NewRecipeHandler(generator *recipe.Generator) *RecipeHandler {
	return &RecipeHandler{generator: generator}
}

// Generate 生成食谱
// @Summary 生成食谱
// @Description 按用户参数生成食谱，并避开已生成过的标题
// @Tags Recipe
// @Accept json
// @Produce json
// @Param userId query string true "用户 ID"
// @Param max_gen_len query int false "输出 token 上限"
// @Param body body dto.GenerateRecipeRequest true "生成参数"
// @Success 200 {object} dto.GenerateRecipeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.DuplicateRecipeResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /recipe [post]
func (h *RecipeHandler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	userID := c.Query("userId")
	if userID == "" {
		dto.BadRequest(c, "userId is required")
		return
	}
	ctx = logger.WithContext(ctx, logger.UserIDKey, userID)

	var req dto.GenerateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "parameters are required: "+err.Error())
		return
	}

	res, err := h.generator.Generate(ctx, userID, *req.Parameters, parseOverrides(c))
	if err != nil {
		var dup recipe.DuplicateTitleError
		if errors.As(err, &dup) {
			c.JSON(http.StatusConflict, dto.DuplicateRecipeResponse{
				Error:          "Recipe with this title already exists",
				ExistingRecipe: dup.Existing,
			})
			return
		}
		logger.Error(ctx, "failed to generate recipe", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewGenerateRecipeResponse(res))
}
