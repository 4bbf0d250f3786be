package repository

import (
	"time"

	"github.com/JohnPitter/church-management-sub005/internal/model"
	"gorm.io/gorm"
)

// AppointmentFilter 预约查询过滤条件
type AppointmentFilter struct {
	Status         *string
	ServiceType    *string
	ProfessionalID *string
	StartTime      *time.Time
	EndTime        *time.Time
}

// AppointmentRepository 预约仓储接口
type AppointmentRepository interface {
	Save(appointment *model.AppointmentModel) error
	FindByID(id string) (*model.AppointmentModel, error)
	FindAll() ([]*model.AppointmentModel, error)
	FindByFilter(filter *AppointmentFilter) ([]*model.AppointmentModel, error)
	Delete(id string) error
}

// appointmentRepository 预约仓储实现
type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository 创建预约仓储
func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

// Save 保存预约
func (r *appointmentRepository) Save(appointment *model.AppointmentModel) error {
	return r.db.Save(appointment).Error
}

// FindByID 根据 ID 查找预约
func (r *appointmentRepository) FindByID(id string) (*model.AppointmentModel, error) {
	var appointment model.AppointmentModel
	if err := r.db.Where("id = ?", id).First(&appointment).Error; err != nil {
		return nil, err
	}
	return &appointment, nil
}

// FindAll 查找所有预约
func (r *appointmentRepository) FindAll() ([]*model.AppointmentModel, error) {
	var appointments []*model.AppointmentModel
	err := r.db.Order("scheduled_at ASC").Find(&appointments).Error
	return appointments, err
}

// FindByFilter 根据过滤条件查找预约
func (r *appointmentRepository) FindByFilter(filter *AppointmentFilter) ([]*model.AppointmentModel, error) {
	query := r.db.Model(&model.AppointmentModel{})

	if filter != nil {
		if filter.Status != nil {
			query = query.Where("status = ?", *filter.Status)
		}
		if filter.ServiceType != nil {
			query = query.Where("service_type = ?", *filter.ServiceType)
		}
		if filter.ProfessionalID != nil {
			query = query.Where("professional_id = ?", *filter.ProfessionalID)
		}
		if filter.StartTime != nil {
			query = query.Where("scheduled_at >= ?", *filter.StartTime)
		}
		if filter.EndTime != nil {
			query = query.Where("scheduled_at <= ?", *filter.EndTime)
		}
	}

	var appointments []*model.AppointmentModel
	err := query.Order("scheduled_at ASC").Find(&appointments).Error
	return appointments, err
}

// Delete 删除预约
func (r *appointmentRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.AppointmentModel{}).Error
}
