// Package postgres 提供 PostgreSQL Repository 实现
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"recipe-ai-api/internal/domain/entity"
)

// RecipeRepository 用户食谱仓储实现
type RecipeRepository struct {
	client *Client
}

// NewRecipeRepository 创建用户食谱仓储
func NewRecipeRepository(client *Client) *RecipeRepository {
	return &RecipeRepository{client: client}
}

// Save 保存一条新生成的食谱记录
func (r *RecipeRepository) Save(ctx context.Context, record *entity.RecipeRecord) error {
	ctx, span := tracer.Start(ctx, "postgres.RecipeRepository.Save")
	defer span.End()

	if err := r.client.db.WithContext(ctx).Create(record).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to save recipe: %w", err)
	}
	return nil
}

// FindByTitle 按标题查找用户食谱，不存在时返回 nil
func (r *RecipeRepository) FindByTitle(ctx context.Context, userID, title string) (*entity.RecipeRecord, error) {
	ctx, span := tracer.Start(ctx, "postgres.RecipeRepository.FindByTitle")
	defer span.End()

	var record entity.RecipeRecord
	err := r.client.db.WithContext(ctx).
		Where("user_id = ? AND recipe->>'title' = ?", userID, title).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to find recipe by title: %w", err)
	}
	return &record, nil
}

// RecentTitles 返回 since 之后生成的去重食谱标题
func (r *RecipeRepository) RecentTitles(ctx context.Context, userID string, since time.Time) ([]string, error) {
	ctx, span := tracer.Start(ctx, "postgres.RecipeRepository.RecentTitles")
	defer span.End()

	var titles []string
	err := r.client.db.WithContext(ctx).
		Model(&entity.RecipeRecord{}).
		Distinct("recipe->>'title'").
		Where("user_id = ? AND created_at >= ? AND recipe->>'title' IS NOT NULL", userID, since).
		Pluck("recipe->>'title'", &titles).Error
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list recent titles: %w", err)
	}
	return titles, nil
}
