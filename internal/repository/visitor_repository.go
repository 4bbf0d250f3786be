package repository

import (
	"time"

	"github.com/JohnPitter/church-management-sub005/internal/model"
	"gorm.io/gorm"
)

// VisitorFilter 访客查询过滤条件
type VisitorFilter struct {
	Status    *string
	StartDate *time.Time
	EndDate   *time.Time
}

// VisitorRepository 访客仓储接口
type VisitorRepository interface {
	Save(visitor *model.VisitorModel) error
	FindByID(id string) (*model.VisitorModel, error)
	FindByFilter(filter *VisitorFilter) ([]*model.VisitorModel, error)
	Delete(id string) error
}

// visitorRepository 访客仓储实现
type visitorRepository struct {
	db *gorm.DB
}

// NewVisitorRepository 创建访客仓储
func NewVisitorRepository(db *gorm.DB) VisitorRepository {
	return &visitorRepository{db: db}
}

// Save 保存访客
func (r *visitorRepository) Save(visitor *model.VisitorModel) error {
	return r.db.Save(visitor).Error
}

// FindByID 根据 ID 查找访客
func (r *visitorRepository) FindByID(id string) (*model.VisitorModel, error) {
	var visitor model.VisitorModel
	if err := r.db.Where("id = ?", id).First(&visitor).Error; err != nil {
		return nil, err
	}
	return &visitor, nil
}

// FindByFilter 根据过滤条件查找访客
func (r *visitorRepository) FindByFilter(filter *VisitorFilter) ([]*model.VisitorModel, error) {
	query := r.db.Model(&model.VisitorModel{})

	if filter != nil {
		if filter.Status != nil {
			query = query.Where("status = ?", *filter.Status)
		}
		if filter.StartDate != nil {
			query = query.Where("visit_date >= ?", *filter.StartDate)
		}
		if filter.EndDate != nil {
			query = query.Where("visit_date <= ?", *filter.EndDate)
		}
	}

	var visitors []*model.VisitorModel
	err := query.Order("visit_date DESC").Find(&visitors).Error
	return visitors, err
}

// Delete 删除访客
func (r *visitorRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.VisitorModel{}).Error
}
