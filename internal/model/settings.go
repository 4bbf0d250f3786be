package model

import (
	"errors"
	"time"
)

// SiteSettingsModel 站点设置数据模型
// 单行表:每个部署(一个社区一个数据库)仅一条记录
type SiteSettingsModel struct {
	ID           string    `gorm:"primaryKey;type:varchar(64)"`
	CommunityName string   `gorm:"type:varchar(255);not null"`
	LogoURL      string    `gorm:"type:text"`
	ThemeColor   string    `gorm:"type:varchar(16)"`
	Address      string    `gorm:"type:text"`
	ServiceTimes string    `gorm:"type:text"` // 例如 "dom 10h, qua 19h30"
	ContactEmail string    `gorm:"type:varchar(255)"`
	ContactPhone string    `gorm:"type:varchar(32)"`
	UpdatedAt    time.Time `gorm:"not null"`
	UpdatedBy    string    `gorm:"type:varchar(64)"`
}

// TableName 指定表名
func (SiteSettingsModel) TableName() string {
	return "site_settings"
}

// Validate 验证站点设置模型
func (s *SiteSettingsModel) Validate() error {
	if s.ID == "" {
		return errors.New("settings ID is required")
	}
	if s.CommunityName == "" {
		return errors.New("community name is required")
	}
	return nil
}
