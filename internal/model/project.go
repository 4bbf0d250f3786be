package model

import (
	"errors"
	"time"
)

// ProjectModel 社区项目数据模型
type ProjectModel struct {
	ID          string    `gorm:"primaryKey;type:varchar(64)"`
	Name        string    `gorm:"type:varchar(255);not null;index"`
	Description string    `gorm:"type:text"`
	Coordinator string    `gorm:"type:varchar(255)"`
	Active      bool      `gorm:"not null;default:true;index"`
	CreatedAt   time.Time `gorm:"not null;index"`
	UpdatedAt   time.Time `gorm:"not null"`
	CreatedBy   string    `gorm:"type:varchar(64);index"`
	UpdatedBy   string    `gorm:"type:varchar(64)"`
}

// TableName 指定表名
func (ProjectModel) TableName() string {
	return "projects"
}

// Validate 验证项目模型
func (p *ProjectModel) Validate() error {
	if p.ID == "" {
		return errors.New("project ID is required")
	}
	if p.Name == "" {
		return errors.New("project name is required")
	}
	return nil
}

// VolunteerModel 志愿者数据模型
type VolunteerModel struct {
	ID        string    `gorm:"primaryKey;type:varchar(64)"`
	ProjectID string    `gorm:"type:varchar(64);not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Phone     string    `gorm:"type:varchar(32)"`
	Role      string    `gorm:"type:varchar(64)"`
	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`
	CreatedBy string    `gorm:"type:varchar(64);index"`
	UpdatedBy string    `gorm:"type:varchar(64)"`
}

// TableName 指定表名
func (VolunteerModel) TableName() string {
	return "volunteers"
}

// Validate 验证志愿者模型
func (v *VolunteerModel) Validate() error {
	if v.ID == "" {
		return errors.New("volunteer ID is required")
	}
	if v.ProjectID == "" {
		return errors.New("project ID is required")
	}
	if v.Name == "" {
		return errors.New("volunteer name is required")
	}
	return nil
}
