package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"recipe-ai-api/internal/application/sandbox"
	"recipe-ai-api/internal/interfaces/http/dto"
	"recipe-ai-api/pkg/logger"
)

// SandboxHandler 模型沙盒处理器
type SandboxHandler struct {
	svc *sandbox.Service
}

// NewSandboxHandler 创建模型沙盒处理器
func NewSandboxHandler(svc *sandbox.Service) *SandboxHandler {
	return &SandboxHandler{svc: svc}
}

// Invoke 沙盒调用
// @Summary 沙盒调用
// @Description 用任意已注册模型执行一次裸调用，请求体为纯文本提示词
// @Tags Sandbox
// @Accept plain
// @Produce json
// @Param model query string true "逻辑模型名"
// @Success 200 {object} dto.SandboxResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sandbox [post]
func (h *SandboxHandler) Invoke(c *gin.Context) {
	ctx := c.Request.Context()

	model := c.Query("model")
	if model == "" {
		dto.BadRequest(c, "model is required")
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		dto.BadRequest(c, "failed to read request body")
		return
	}
	prompt := string(body)
	if prompt == "" {
		dto.BadRequest(c, "prompt is required")
		return
	}

	res, err := h.svc.Invoke(ctx, model, prompt, parseOverrides(c))
	if err != nil {
		logger.Error(ctx, "sandbox invocation failed", err, "model", model)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSandboxResponse(res))
}

// Logs 沙盒调用流水
// @Summary 沙盒调用流水
// @Description 按时间倒序分页返回模型调用流水
// @Tags Sandbox
// @Produce json
// @Param limit query int true "返回条数"
// @Param offset query int false "偏移量"
// @Success 200 {object} dto.SandboxLogsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sandbox/logs [get]
func (h *SandboxHandler) Logs(c *gin.Context) {
	ctx := c.Request.Context()

	limitStr := c.Query("limit")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		dto.BadRequest(c, "limit is required and must be a positive number")
		return
	}

	offset := 0
	if v := c.Query("offset"); v != "" {
		offset, err = strconv.Atoi(v)
		if err != nil || offset < 0 {
			dto.BadRequest(c, "offset must be a non-negative number")
			return
		}
	}

	logs, err := h.svc.Logs(ctx, limit, offset)
	if err != nil {
		logger.Error(ctx, "failed to list sandbox logs", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SandboxLogsResponse{
		Items: logs,
		Count: len(logs),
	})
}
