// Package repository 定义持久化端口
package repository

import (
	"context"
	"time"

	"recipe-ai-api/internal/domain/entity"
)

// RecipeRepository 用户食谱仓储
type RecipeRepository interface {
	// Save 保存一条新生成的食谱记录
	Save(ctx context.Context, record *entity.RecipeRecord) error
	// FindByTitle 按标题查找用户食谱，不存在时返回 nil
	FindByTitle(ctx context.Context, userID, title string) (*entity.RecipeRecord, error)
	// RecentTitles 返回 since 之后生成的去重食谱标题
	RecentTitles(ctx context.Context, userID string, since time.Time) ([]string, error)
}
