// Package repository 定义持久化端口
package repository

import (
	"context"

	"recipe-ai-api/internal/domain/entity"
)

// InvocationLogRepository 模型调用流水仓储（只追加）
type InvocationLogRepository interface {
	// Append 追加一条调用流水；失败不应阻塞主流程，由调用方决定是否忽略
	Append(ctx context.Context, log *entity.InvocationLog) error
	// List 按时间倒序分页返回调用流水
	List(ctx context.Context, limit, offset int) ([]*entity.InvocationLog, error)
}
