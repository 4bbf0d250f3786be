package repository

import (
	"github.com/JohnPitter/church-management-sub005/internal/model"
	"gorm.io/gorm"
)

// StatusHistoryRepository 状态历史仓储接口
type StatusHistoryRepository interface {
	Save(history *model.StatusHistoryModel) error
	FindByRecord(recordType string, recordID string) ([]*model.StatusHistoryModel, error)
	CountByRecord(recordType string, recordID string) (int64, error)
}

// statusHistoryRepository 状态历史仓储实现
type statusHistoryRepository struct {
	db *gorm.DB
}

// NewStatusHistoryRepository 创建状态历史仓储
func NewStatusHistoryRepository(db *gorm.DB) StatusHistoryRepository {
	return &statusHistoryRepository{db: db}
}

// Save 保存状态历史
func (r *statusHistoryRepository) Save(history *model.StatusHistoryModel) error {
	return r.db.Save(history).Error
}

// FindByRecord 根据记录查找状态历史,按时间升序
func (r *statusHistoryRepository) FindByRecord(recordType string, recordID string) ([]*model.StatusHistoryModel, error) {
	var histories []*model.StatusHistoryModel
	err := r.db.Where("record_type = ? AND record_id = ?", recordType, recordID).
		Order("created_at ASC").
		Find(&histories).Error
	return histories, err
}

// CountByRecord 统计记录的状态历史条数
func (r *statusHistoryRepository) CountByRecord(recordType string, recordID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.StatusHistoryModel{}).
		Where("record_type = ? AND record_id = ?", recordType, recordID).
		Count(&count).Error
	return count, err
}
