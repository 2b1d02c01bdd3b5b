package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"recipe-ai-api/internal/domain/entity"
	"recipe-ai-api/internal/domain/repository"
)

// SettingsRepository 用户设置仓储实现
// 排除标题列表的写回使用版本号条件更新实现乐观并发。
type SettingsRepository struct {
	client *Client
}

// NewSettingsRepository 创建用户设置仓储
func NewSettingsRepository(client *Client) *SettingsRepository {
	return &SettingsRepository{client: client}
}

// GetExcludedTitles 返回用户的排除标题列表与当前版本号
func (r *SettingsRepository) GetExcludedTitles(ctx context.Context, userID string) ([]string, int64, error) {
	ctx, span := tracer.Start(ctx, "postgres.SettingsRepository.GetExcludedTitles")
	defer span.End()

	var settings entity.UserSettings
	err := r.client.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []string{}, 0, nil
		}
		span.RecordError(err)
		return nil, 0, fmt.Errorf("failed to get user settings: %w", err)
	}
	return settings.ExcludeTitles, settings.Version, nil
}

// SetExcludedTitles 以版本条件写回排除标题列表。
// expectedVersion 为 0 时视为首次写入；与存储版本不一致时返回 ErrVersionConflict。
func (r *SettingsRepository) SetExcludedTitles(ctx context.Context, userID string, titles []string, expectedVersion int64) error {
	ctx, span := tracer.Start(ctx, "postgres.SettingsRepository.SetExcludedTitles")
	defer span.End()

	if titles == nil {
		titles = []string{}
	}

	if expectedVersion == 0 {
		settings := &entity.UserSettings{
			UserID:        userID,
			ExcludeTitles: titles,
			Version:       1,
		}
		err := r.client.db.WithContext(ctx).Create(settings).Error
		if err != nil {
			// 并发首次写入：另一方已创建记录
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return repository.ErrVersionConflict{}
			}
			span.RecordError(err)
			return fmt.Errorf("failed to create user settings: %w", err)
		}
		return nil
	}

	titlesJSON, err := json.Marshal(titles)
	if err != nil {
		return fmt.Errorf("failed to marshal excluded titles: %w", err)
	}

	result := r.client.db.WithContext(ctx).
		Model(&entity.UserSettings{}).
		Where("user_id = ? AND version = ?", userID, expectedVersion).
		Updates(map[string]interface{}{
			"exclude_titles": titlesJSON,
			"version":        expectedVersion + 1,
		})
	if result.Error != nil {
		span.RecordError(result.Error)
		return fmt.Errorf("failed to update user settings: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrVersionConflict{}
	}
	return nil
}
