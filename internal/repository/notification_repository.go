package repository

import (
	"github.com/JohnPitter/church-management-sub005/internal/model"
	"gorm.io/gorm"
)

// NotificationRepository 通知仓储接口
type NotificationRepository interface {
	Save(notification *model.NotificationModel) error
	FindByUserID(userID string) ([]*model.NotificationModel, error)
	MarkRead(id string) error
}

// notificationRepository 通知仓储实现
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository 创建通知仓储
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

// Save 保存通知
func (r *notificationRepository) Save(notification *model.NotificationModel) error {
	return r.db.Save(notification).Error
}

// FindByUserID 根据接收者查找通知
func (r *notificationRepository) FindByUserID(userID string) ([]*model.NotificationModel, error) {
	var notifications []*model.NotificationModel
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&notifications).Error
	return notifications, err
}

// MarkRead 标记通知为已读
func (r *notificationRepository) MarkRead(id string) error {
	return r.db.Model(&model.NotificationModel{}).Where("id = ?", id).Update("read", true).Error
}
