package repository

import (
	"github.com/JohnPitter/church-management-sub005/internal/model"
	"gorm.io/gorm"
)

// SettingsRepository 站点设置仓储接口
type SettingsRepository interface {
	Save(settings *model.SiteSettingsModel) error
	Find() (*model.SiteSettingsModel, error)
}

// settingsRepository 站点设置仓储实现
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository 创建站点设置仓储
func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

// Save 保存站点设置
func (r *settingsRepository) Save(settings *model.SiteSettingsModel) error {
	return r.db.Save(settings).Error
}

// Find 获取站点设置,单行表取第一条
func (r *settingsRepository) Find() (*model.SiteSettingsModel, error) {
	var settings model.SiteSettingsModel
	if err := r.db.First(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}
