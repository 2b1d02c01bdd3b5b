package dto

import (
	"recipe-ai-api/internal/application/sandbox"
	"recipe-ai-api/internal/domain/entity"
)

// SandboxResponse /sandbox 成功响应（扁平结构）
type SandboxResponse struct {
	Response      string  `json:"response"`
	InputTokens   int     `json:"inputTokens"`
	OutputTokens  int     `json:"outputTokens"`
	TotalTokens   int     `json:"totalTokens"`
	InputCost     float64 `json:"inputCost"`
	OutputCost    float64 `json:"outputCost"`
	TotalCost     float64 `json:"totalCost"`
	ExecutionTime int64   `json:"executionTime"`
}

// NewSandboxResponse 由调用结果构建响应
func NewSandboxResponse(res *sandbox.Result) SandboxResponse {
	return SandboxResponse{
		Response:      res.Response,
		InputTokens:   res.InputTokens,
		OutputTokens:  res.OutputTokens,
		TotalTokens:   res.TotalTokens,
		InputCost:     res.Cost.InputCost,
		OutputCost:    res.Cost.OutputCost,
		TotalCost:     res.Cost.TotalCost,
		ExecutionTime: res.ExecutionMs,
	}
}

// SandboxLogsResponse /sandbox/logs 响应
type SandboxLogsResponse struct {
	Items []*entity.InvocationLog `json:"items"`
	Count int                     `json:"count"`
}

// CountTokensResponse /count-tokens 响应
type CountTokensResponse struct {
	TokenCount int `json:"tokenCount"`
}
