// Package entity 定义领域实体
package entity

import "time"

// InvocationLog 一次模型调用的追加式流水记录
type InvocationLog struct {
	ID            string    `json:"id" gorm:"type:uuid;primaryKey"`
	ProviderModel string    `json:"model" gorm:"type:varchar(128);not null;index"`
	Prompt        string    `json:"prompt" gorm:"type:text;not null"`
	Response      string    `json:"response" gorm:"type:text"`
	InputTokens   int       `json:"input_tokens" gorm:"not null;default:0"`
	OutputTokens  int       `json:"output_tokens" gorm:"not null;default:0"`
	TotalTokens   int       `json:"total_tokens" gorm:"not null;default:0"`
	InputCost     float64   `json:"input_cost" gorm:"type:numeric(12,6);not null;default:0"`
	OutputCost    float64   `json:"output_cost" gorm:"type:numeric(12,6);not null;default:0"`
	TotalCost     float64   `json:"total_cost" gorm:"type:numeric(12,6);not null;default:0"`
	ExecutionMs   int64     `json:"execution_ms" gorm:"not null;default:0"`
	CreatedAt     time.Time `json:"timestamp" gorm:"autoCreateTime;index"`
}

func (InvocationLog) TableName() string {
	return "invocation_logs"
}
