package model

import (
	"errors"
	"time"
)

// LeaderModel 领导层名录数据模型
type LeaderModel struct {
	ID        string    `gorm:"primaryKey;type:varchar(64)"`
	Name      string    `gorm:"type:varchar(255);not null;index"`
	Ministry  string    `gorm:"type:varchar(128);index"` // 所属事工
	Phone     string    `gorm:"type:varchar(32)"`
	Email     string    `gorm:"type:varchar(255)"`
	PhotoURL  string    `gorm:"type:text"`
	SortOrder int       `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`
	CreatedBy string    `gorm:"type:varchar(64);index"`
	UpdatedBy string    `gorm:"type:varchar(64)"`
}

// TableName 指定表名
func (LeaderModel) TableName() string {
	return "leaders"
}

// Validate 验证领导层模型
func (l *LeaderModel) Validate() error {
	if l.ID == "" {
		return errors.New("leader ID is required")
	}
	if l.Name == "" {
		return errors.New("leader name is required")
	}
	return nil
}
