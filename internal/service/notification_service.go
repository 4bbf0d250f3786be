package service

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/JohnPitter/church-management-sub005/internal/model"
	"github.com/JohnPitter/church-management-sub005/internal/repository"
	"github.com/JohnPitter/church-management-sub005/internal/websocket"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// NotificationService 通知服务接口
// 投递是尽力而为的:失败只记日志,不影响触发通知的主操作
type NotificationService interface {
	NotifyProfessional(professionalID, title, body string)
	Flush()
	ListForUser(userID string) ([]*model.NotificationModel, error)
	MarkRead(id string) error
}

// notificationService 通知服务实现
type notificationService struct {
	notificationRepo repository.NotificationRepository
	accountRepo      repository.UserAccountRepository
	hub              *websocket.Hub
	logger           *logrus.Logger
	wg               sync.WaitGroup
}

// NewNotificationService 创建通知服务
func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	accountRepo repository.UserAccountRepository,
	hub *websocket.Hub,
	logger *logrus.Logger,
) NotificationService {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &notificationService{
		notificationRepo: notificationRepo,
		accountRepo:      accountRepo,
		hub:              hub,
		logger:           logger,
	}
}

// wsNotification WebSocket 推送的通知载荷
type wsNotification struct {
	Type  string `json:"type"`
	ID    string `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// NotifyProfessional 向专业人员投递通知
// 投递在独立 goroutine 中执行,不占用触发它的请求的关键路径
func (s *notificationService) NotifyProfessional(professionalID, title, body string) {
	if professionalID == "" {
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.deliver(professionalID, title, body)
	}()
}

// Flush 等待在途投递完成,用于测试和优雅停机
func (s *notificationService) Flush() {
	s.wg.Wait()
}

// deliver 通过账户表将专业人员 ID 解析为账户,落库后经 WebSocket 推送
func (s *notificationService) deliver(professionalID, title, body string) {
	account, err := s.accountRepo.FindByProfessionalID(professionalID)
	if err != nil {
		// 专业人员没有关联账户时静默跳过,这不是错误
		if err != gorm.ErrRecordNotFound {
			s.logger.WithError(err).WithField("professional_id", professionalID).
				Warn("failed to resolve professional account for notification")
		}
		return
	}

	notification := &model.NotificationModel{
		ID:        uuid.New().String(),
		UserID:    account.ID,
		Title:     title,
		Body:      body,
		CreatedAt: time.Now(),
	}

	if err := s.notificationRepo.Save(notification); err != nil {
		s.logger.WithError(err).WithField("user_id", account.ID).
			Warn("failed to persist notification")
		return
	}

	if s.hub != nil {
		payload, err := json.Marshal(&wsNotification{
			Type:  "notification",
			ID:    notification.ID,
			Title: title,
			Body:  body,
		})
		if err == nil {
			s.hub.BroadcastToUser(account.ID, payload)
		}
	}
}

// ListForUser 列出用户的通知,按时间倒序
func (s *notificationService) ListForUser(userID string) ([]*model.NotificationModel, error) {
	return s.notificationRepo.FindByUserID(userID)
}

// MarkRead 标记通知为已读
func (s *notificationService) MarkRead(id string) error {
	return s.notificationRepo.MarkRead(id)
}
