package postgres

import (
	"context"
	"fmt"

	"recipe-ai-api/internal/domain/entity"
)

// InvocationLogRepository 模型调用流水仓储实现（只追加）
type InvocationLogRepository struct {
	client *Client
}

// NewInvocationLogRepository 创建调用流水仓储
func NewInvocationLogRepository(client *Client) *InvocationLogRepository {
	return &InvocationLogRepository{client: client}
}

// Append 追加一条调用流水
func (r *InvocationLogRepository) Append(ctx context.Context, log *entity.InvocationLog) error {
	ctx, span := tracer.Start(ctx, "postgres.InvocationLogRepository.Append")
	defer span.End()

	if err := r.client.db.WithContext(ctx).Create(log).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to append invocation log: %w", err)
	}
	return nil
}

// List 按时间倒序分页返回调用流水
func (r *InvocationLogRepository) List(ctx context.Context, limit, offset int) ([]*entity.InvocationLog, error) {
	ctx, span := tracer.Start(ctx, "postgres.InvocationLogRepository.List")
	defer span.End()

	var logs []*entity.InvocationLog
	err := r.client.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list invocation logs: %w", err)
	}
	return logs, nil
}
