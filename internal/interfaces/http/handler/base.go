// Package handler 提供 HTTP 请求处理器
package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"recipe-ai-api/internal/infrastructure/llm"
	"recipe-ai-api/internal/interfaces/http/dto"
	apperrors "recipe-ai-api/pkg/errors"
)

// respondError 将应用错误映射为 HTTP 响应
func respondError(c *gin.Context, err error) {
	if appErr := apperrors.AsAppError(err); appErr != nil {
		status := appErr.HTTPStatus
		if status == 0 {
			status = http.StatusInternalServerError
		}
		dto.ErrorWithDetail(c, status, appErr.Message, &dto.ErrorDetail{
			ErrorCode: string(appErr.Code),
			Details:   appErr.Detail,
		})
		return
	}
	dto.InternalError(c, "internal server error")
}

// parseOverrides 从查询参数解析模型参数覆盖。
// max_gen_len 与 max_tokens 等价，都映射到输出 token 上限。
func parseOverrides(c *gin.Context) llm.Overrides {
	var ov llm.Overrides

	if v := c.Query("max_gen_len"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			ov.MaxOutputTokens = &n
		}
	}
	if v := c.Query("max_tokens"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			ov.MaxOutputTokens = &n
		}
	}
	if v := c.Query("temperature"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			ov.Temperature = &f
		}
	}
	if v := c.Query("top_p"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			ov.TopP = &f
		}
	}
	if v := c.Query("presence_penalty"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			ov.PresencePenalty = &f
		}
	}
	if v := c.Query("frequency_penalty"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			ov.FrequencyPenalty = &f
		}
	}
	if v := c.Query("assistant_id"); v != "" {
		ov.AssistantID = &v
	}
	if v := c.Query("max_completion_tokens"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			ov.MaxCompletionTokens = &n
		}
	}
	if v := c.Query("max_prompt_tokens"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			ov.MaxPromptTokens = &n
		}
	}
	if v := c.Query("role"); v != "" {
		ov.Role = &v
	}

	return ov
}
