// Package repository 定义持久化端口
package repository

import "context"

// ErrVersionConflict 乐观并发更新失败时由实现返回
// （调用方据此决定重读重试还是放弃本次回写）。
type ErrVersionConflict struct{}

func (ErrVersionConflict) Error() string { return "settings version conflict" }

// SettingsRepository 用户设置仓储
type SettingsRepository interface {
	// GetExcludedTitles 返回用户的排除标题列表与当前版本号；
	// 用户无设置时返回空列表与版本 0。
	GetExcludedTitles(ctx context.Context, userID string) ([]string, int64, error)
	// SetExcludedTitles 以版本条件写回排除标题列表。
	// expectedVersion 与存储中的版本不一致时返回 ErrVersionConflict。
	SetExcludedTitles(ctx context.Context, userID string, titles []string, expectedVersion int64) error
}
