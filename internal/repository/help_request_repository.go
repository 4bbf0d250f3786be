package repository

import (
	"fmt"

	"github.com/JohnPitter/church-management-sub005/internal/model"
	"github.com/JohnPitter/church-management-sub005/internal/utils"
	"gorm.io/gorm"
)

// HelpRequestRepository 求助请求仓储接口
type HelpRequestRepository interface {
	Save(request *model.HelpRequestModel) error
	FindByID(id string) (*model.HelpRequestModel, error)
	FindAll() ([]*model.HelpRequestModel, error)
	FindByFilter(filter *HelpRequestFilter) ([]*model.HelpRequestModel, error)
}

// HelpRequestFilter 求助请求查询过滤器
type HelpRequestFilter struct {
	Status         *string
	Specialty      *string
	RequesterID    *string
	ProfessionalID *string
	StartTime      *string
	EndTime        *string
	SortBy         string // 排序字段,默认 created_at
	Order          string // 排序方向,默认 desc
}

// helpRequestRepository 求助请求仓储实现
type helpRequestRepository struct {
	db *gorm.DB
}

// NewHelpRequestRepository 创建求助请求仓储
func NewHelpRequestRepository(db *gorm.DB) HelpRequestRepository {
	return &helpRequestRepository{db: db}
}

// Save 保存求助请求
func (r *helpRequestRepository) Save(request *model.HelpRequestModel) error {
	return r.db.Save(request).Error
}

// FindByID 根据 ID 查找求助请求
func (r *helpRequestRepository) FindByID(id string) (*model.HelpRequestModel, error) {
	var request model.HelpRequestModel
	if err := r.db.Where("id = ?", id).First(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

// FindAll 查找所有求助请求
func (r *helpRequestRepository) FindAll() ([]*model.HelpRequestModel, error) {
	var requests []*model.HelpRequestModel
	err := r.db.Order("created_at DESC").Find(&requests).Error
	return requests, err
}

// FindByFilter 根据过滤器查找求助请求
func (r *helpRequestRepository) FindByFilter(filter *HelpRequestFilter) ([]*model.HelpRequestModel, error) {
	var requests []*model.HelpRequestModel
	query := r.db.Model(&model.HelpRequestModel{})

	sortBy := "created_at"
	order := "desc"

	if filter != nil {
		if filter.Status != nil {
			query = query.Where("status = ?", *filter.Status)
		}
		if filter.Specialty != nil {
			query = query.Where("specialty = ?", *filter.Specialty)
		}
		if filter.RequesterID != nil {
			query = query.Where("requester_id = ?", *filter.RequesterID)
		}
		if filter.ProfessionalID != nil {
			query = query.Where("professional_id = ?", *filter.ProfessionalID)
		}
		if filter.StartTime != nil {
			query = query.Where("created_at >= ?", *filter.StartTime)
		}
		if filter.EndTime != nil {
			query = query.Where("created_at <= ?", *filter.EndTime)
		}

		// 验证排序参数,防止 SQL 注入
		if filter.SortBy != "" {
			if err := utils.ValidateSortField(filter.SortBy); err != nil {
				return nil, fmt.Errorf("invalid sort field: %w", err)
			}
			sortBy = filter.SortBy
		}
		if filter.Order != "" {
			if err := utils.ValidateSortOrder(filter.Order); err != nil {
				return nil, fmt.Errorf("invalid sort order: %w", err)
			}
			order = filter.Order
		}
	}

	// 验证后再清理一次,拼接进 ORDER BY 的只剩白名单字符
	err := query.Order(fmt.Sprintf("%s %s", utils.SanitizeSortField(sortBy), utils.SanitizeSortOrder(order))).Find(&requests).Error
	return requests, err
}
