package service

import (
	"context"
	"errors"
	"time"

	"github.com/JohnPitter/church-management-sub005/internal/model"
	"github.com/JohnPitter/church-management-sub005/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SettingsService 站点设置服务接口
// 单行表:读取不存在时返回默认设置,更新采用后写覆盖
type SettingsService interface {
	Get() (*model.SiteSettingsModel, error)
	Update(ctx context.Context, req *UpdateSettingsRequest) (*model.SiteSettingsModel, error)
}

// UpdateSettingsRequest 更新站点设置的请求参数
// @Description 更新站点展示信息
type UpdateSettingsRequest struct {
	CommunityName string `json:"community_name" example:"Comunidade Esperança" binding:"required"` // 社区名称
	LogoURL       string `json:"logo_url"`                                                         // 标志地址
	ThemeColor    string `json:"theme_color" example:"#1a5fb4"`                                    // 主题色
	Address       string `json:"address"`                                                          // 地址
	ServiceTimes  string `json:"service_times" example:"dom 10h, qua 19h30"`                       // 聚会时间
	ContactEmail  string `json:"contact_email"`                                                    // 联系邮箱
	ContactPhone  string `json:"contact_phone"`                                                    // 联系电话
}

// settingsService 站点设置服务实现
type settingsService struct {
	settingsRepo repository.SettingsRepository
	auditLogSvc  AuditLogService
}

// NewSettingsService 创建站点设置服务
func NewSettingsService(settingsRepo repository.SettingsRepository, auditLogSvc AuditLogService) SettingsService {
	return &settingsService{
		settingsRepo: settingsRepo,
		auditLogSvc:  auditLogSvc,
	}
}

// Get 获取站点设置
// 尚未配置时返回默认值,不报错
func (s *settingsService) Get() (*model.SiteSettingsModel, error) {
	settings, err := s.settingsRepo.Find()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &model.SiteSettingsModel{
				ID:            uuid.New().String(),
				CommunityName: "Comunidade",
			}, nil
		}
		return nil, err
	}
	return settings, nil
}

// Update 更新站点设置
// 不存在时创建,存在时整体覆盖(后写生效)
func (s *settingsService) Update(ctx context.Context, req *UpdateSettingsRequest) (*model.SiteSettingsModel, error) {
	settings, err := s.settingsRepo.Find()
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		settings = &model.SiteSettingsModel{ID: uuid.New().String()}
	}

	userID := getUserIDFromContext(ctx)
	settings.CommunityName = req.CommunityName
	settings.LogoURL = req.LogoURL
	settings.ThemeColor = req.ThemeColor
	settings.Address = req.Address
	settings.ServiceTimes = req.ServiceTimes
	settings.ContactEmail = req.ContactEmail
	settings.ContactPhone = req.ContactPhone
	settings.UpdatedAt = time.Now()
	settings.UpdatedBy = userID

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if err := s.settingsRepo.Save(settings); err != nil {
		return nil, err
	}

	// 记录审计日志
	if s.auditLogSvc != nil && userID != "" {
		_ = s.auditLogSvc.RecordAction(ctx, userID, "update", "settings", settings.ID, `{"community_name":"`+settings.CommunityName+`"}`)
	}

	return settings, nil
}
