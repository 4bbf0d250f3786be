package repository

import (
	"github.com/JohnPitter/church-management-sub005/internal/model"
	"gorm.io/gorm"
)

// LeaderRepository 领导层名录仓储接口
type LeaderRepository interface {
	Save(leader *model.LeaderModel) error
	FindByID(id string) (*model.LeaderModel, error)
	FindAll() ([]*model.LeaderModel, error)
	Delete(id string) error
}

// leaderRepository 领导层名录仓储实现
type leaderRepository struct {
	db *gorm.DB
}

// NewLeaderRepository 创建领导层名录仓储
func NewLeaderRepository(db *gorm.DB) LeaderRepository {
	return &leaderRepository{db: db}
}

// Save 保存领导层条目
func (r *leaderRepository) Save(leader *model.LeaderModel) error {
	return r.db.Save(leader).Error
}

// FindByID 根据 ID 查找领导层条目
func (r *leaderRepository) FindByID(id string) (*model.LeaderModel, error) {
	var leader model.LeaderModel
	if err := r.db.Where("id = ?", id).First(&leader).Error; err != nil {
		return nil, err
	}
	return &leader, nil
}

// FindAll 查找所有领导层条目,按排序字段排列
func (r *leaderRepository) FindAll() ([]*model.LeaderModel, error) {
	var leaders []*model.LeaderModel
	err := r.db.Order("sort_order ASC, name ASC").Find(&leaders).Error
	return leaders, err
}

// Delete 删除领导层条目
func (r *leaderRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.LeaderModel{}).Error
}
