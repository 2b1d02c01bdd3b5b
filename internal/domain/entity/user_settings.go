// Package entity 定义领域实体
package entity

import "time"

// UserSettings 用户设置（目前只承载排除标题列表）
// Version 用于排除列表的乐观并发更新：并发写入时版本不匹配的一方失败重试。
type UserSettings struct {
	UserID        string    `json:"user_id" gorm:"type:varchar(64);primaryKey"`
	ExcludeTitles []string  `json:"exclude_titles" gorm:"serializer:json;type:jsonb;not null"`
	Version       int64     `json:"version" gorm:"not null;default:0"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (UserSettings) TableName() string {
	return "user_settings"
}
