package model

import (
	"errors"
	"time"
)

// UserAccountModel 用户账户数据模型
// 通知按账户 ID 投递,专业人员通过本表解析到账户
type UserAccountModel struct {
	ID             string    `gorm:"primaryKey;type:varchar(64)"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex"`
	ProfessionalID string    `gorm:"type:varchar(64);index"` // 关联的专业人员 ID,可为空
	AccessHash     string    `gorm:"type:varchar(128)"`      // 旧系统访问码的 bcrypt 哈希
	Active         bool      `gorm:"not null;default:true"`
	CreatedAt      time.Time `gorm:"not null;index"`
	UpdatedAt      time.Time `gorm:"not null"`
}

// TableName 指定表名
func (UserAccountModel) TableName() string {
	return "user_accounts"
}

// Validate 验证用户账户模型
func (u *UserAccountModel) Validate() error {
	if u.ID == "" {
		return errors.New("user account ID is required")
	}
	if u.Name == "" {
		return errors.New("user account name is required")
	}
	return nil
}

// NotificationModel 通知数据模型
type NotificationModel struct {
	ID        string    `gorm:"primaryKey;type:varchar(64)"`
	UserID    string    `gorm:"type:varchar(64);not null;index"` // 接收者账户 ID
	Title     string    `gorm:"type:varchar(255);not null"`
	Body      string    `gorm:"type:text"`
	Read      bool      `gorm:"not null;default:false;index"`
	CreatedAt time.Time `gorm:"not null;index"`
}

// TableName 指定表名
func (NotificationModel) TableName() string {
	return "notifications"
}

// Validate 验证通知模型
func (n *NotificationModel) Validate() error {
	if n.ID == "" {
		return errors.New("notification ID is required")
	}
	if n.UserID == "" {
		return errors.New("notification user ID is required")
	}
	if n.Title == "" {
		return errors.New("notification title is required")
	}
	return nil
}
