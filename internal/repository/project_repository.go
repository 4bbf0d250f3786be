package repository

import (
	"github.com/JohnPitter/church-management-sub005/internal/model"
	"gorm.io/gorm"
)

// ProjectRepository 项目仓储接口
type ProjectRepository interface {
	Save(project *model.ProjectModel) error
	FindByID(id string) (*model.ProjectModel, error)
	FindAll(onlyActive bool) ([]*model.ProjectModel, error)
	Delete(id string) error
}

// projectRepository 项目仓储实现
type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository 创建项目仓储
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

// Save 保存项目
func (r *projectRepository) Save(project *model.ProjectModel) error {
	return r.db.Save(project).Error
}

// FindByID 根据 ID 查找项目
func (r *projectRepository) FindByID(id string) (*model.ProjectModel, error) {
	var project model.ProjectModel
	if err := r.db.Where("id = ?", id).First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// FindAll 查找所有项目
func (r *projectRepository) FindAll(onlyActive bool) ([]*model.ProjectModel, error) {
	query := r.db.Model(&model.ProjectModel{})
	if onlyActive {
		query = query.Where("active = ?", true)
	}

	var projects []*model.ProjectModel
	err := query.Order("name ASC").Find(&projects).Error
	return projects, err
}

// Delete 删除项目
func (r *projectRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.ProjectModel{}).Error
}

// VolunteerRepository 志愿者仓储接口
type VolunteerRepository interface {
	Save(volunteer *model.VolunteerModel) error
	FindByID(id string) (*model.VolunteerModel, error)
	FindByProjectID(projectID string) ([]*model.VolunteerModel, error)
	Delete(id string) error
}

// volunteerRepository 志愿者仓储实现
type volunteerRepository struct {
	db *gorm.DB
}

// NewVolunteerRepository 创建志愿者仓储
func NewVolunteerRepository(db *gorm.DB) VolunteerRepository {
	return &volunteerRepository{db: db}
}

// Save 保存志愿者
func (r *volunteerRepository) Save(volunteer *model.VolunteerModel) error {
	return r.db.Save(volunteer).Error
}

// FindByID 根据 ID 查找志愿者
func (r *volunteerRepository) FindByID(id string) (*model.VolunteerModel, error) {
	var volunteer model.VolunteerModel
	if err := r.db.Where("id = ?", id).First(&volunteer).Error; err != nil {
		return nil, err
	}
	return &volunteer, nil
}

// FindByProjectID 根据项目 ID 查找志愿者
func (r *volunteerRepository) FindByProjectID(projectID string) ([]*model.VolunteerModel, error) {
	var volunteers []*model.VolunteerModel
	err := r.db.Where("project_id = ?", projectID).Order("name ASC").Find(&volunteers).Error
	return volunteers, err
}

// Delete 删除志愿者
func (r *volunteerRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.VolunteerModel{}).Error
}
