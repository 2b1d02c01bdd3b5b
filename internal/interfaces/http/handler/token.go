package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"recipe-ai-api/internal/infrastructure/llm"
	"recipe-ai-api/internal/interfaces/http/dto"
)

// TokenHandler 分词计数处理器
type TokenHandler struct{}

// NewTokenHandler 创建分词计数处理器
func NewTokenHandler() *TokenHandler {
	return &TokenHandler{}
}

// Count 统计文本 token 数
// @Summary 统计 token 数
// @Description 请求体为纯文本，返回其 token 数
// @Tags Token
// @Accept plain
// @Produce json
// @Success 200 {object} dto.CountTokensResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /count-tokens [post]
func (h *TokenHandler) Count(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		dto.BadRequest(c, "failed to read request body")
		return
	}
	text := string(body)
	if text == "" {
		dto.BadRequest(c, "text is required")
		return
	}

	c.JSON(http.StatusOK, dto.CountTokensResponse{
		TokenCount: llm.CountTokens(text),
	})
}
