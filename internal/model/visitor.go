package model

import (
	"errors"
	"time"
)

// VisitorModel 访客数据模型
type VisitorModel struct {
	ID         string    `gorm:"primaryKey;type:varchar(64)"`
	Name       string    `gorm:"type:varchar(255);not null;index"`
	Phone      string    `gorm:"type:varchar(32)"`
	VisitDate  time.Time `gorm:"not null;index"`
	InvitedBy  string    `gorm:"type:varchar(255)"`
	WantsVisit bool      `gorm:"not null;default:false"` // 是否希望接受回访
	Status     string    `gorm:"type:varchar(32);not null;index"` // novo/contatado/integrado
	CreatedAt  time.Time `gorm:"not null;index"`
	UpdatedAt  time.Time `gorm:"not null"`
	CreatedBy  string    `gorm:"type:varchar(64);index"`
	UpdatedBy  string    `gorm:"type:varchar(64)"`
}

// TableName 指定表名
func (VisitorModel) TableName() string {
	return "visitors"
}

// Validate 验证访客模型
func (v *VisitorModel) Validate() error {
	if v.ID == "" {
		return errors.New("visitor ID is required")
	}
	if v.Name == "" {
		return errors.New("visitor name is required")
	}
	return nil
}
