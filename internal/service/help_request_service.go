package service

import (
	"context"
	"fmt"
	"time"

	"github.com/JohnPitter/church-management-sub005/internal/metrics"
	"github.com/JohnPitter/church-management-sub005/internal/model"
	"github.com/JohnPitter/church-management-sub005/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HelpRequestService 求助请求服务接口
type HelpRequestService interface {
	Create(ctx context.Context, req *CreateHelpRequestRequest) (*model.HelpRequestModel, error)
	Get(id string) (*model.HelpRequestModel, error)
	List(filter *repository.HelpRequestFilter) ([]*model.HelpRequestModel, error)
	GetHistory(id string) ([]*model.StatusHistoryModel, error)
	Transition(ctx context.Context, id string, req *TransitionRequest) (*model.HelpRequestModel, error)
	Delete(ctx context.Context, id string) error
}

// CreateHelpRequestRequest 创建求助请求的请求参数
// @Description 创建专业人员间求助请求
type CreateHelpRequestRequest struct {
	RequesterID      string `json:"requester_id" example:"prof-001" binding:"required"`      // 发起人 ID
	RequesterName    string `json:"requester_name" example:"Ana Costa" binding:"required"`   // 发起人名称
	ProfessionalID   string `json:"professional_id" example:"prof-002" binding:"required"`   // 目标专业人员 ID
	ProfessionalName string `json:"professional_name" example:"Dr. Silva" binding:"required"` // 目标专业人员名称
	Specialty        string `json:"specialty" example:"psicologica" binding:"required"`      // 专业领域
	Description      string `json:"description" example:"encaminhamento de caso"`            // 求助描述
}

// helpRequestService 求助请求服务实现
type helpRequestService struct {
	db              *gorm.DB
	requestRepo     repository.HelpRequestRepository
	historyRepo     repository.StatusHistoryRepository
	auditLogSvc     AuditLogService
	notificationSvc NotificationService
}

// NewHelpRequestService 创建求助请求服务
func NewHelpRequestService(
	db *gorm.DB,
	requestRepo repository.HelpRequestRepository,
	historyRepo repository.StatusHistoryRepository,
	auditLogSvc AuditLogService,
	notificationSvc NotificationService,
) HelpRequestService {
	return &helpRequestService{
		db:              db,
		requestRepo:     requestRepo,
		historyRepo:     historyRepo,
		auditLogSvc:     auditLogSvc,
		notificationSvc: notificationSvc,
	}
}

// Create 创建求助请求
// 新请求总是以 pendente 状态进入,初始历史条目与记录在同一事务内写入
func (s *helpRequestService) Create(ctx context.Context, req *CreateHelpRequestRequest) (*model.HelpRequestModel, error) {
	userID := getUserIDFromContext(ctx)
	now := time.Now()

	request := &model.HelpRequestModel{
		ID:               uuid.New().String(),
		RequesterID:      req.RequesterID,
		RequesterName:    req.RequesterName,
		ProfessionalID:   req.ProfessionalID,
		ProfessionalName: req.ProfessionalName,
		Specialty:        req.Specialty,
		Description:      req.Description,
		Status:           string(model.StatusPendente),
		CreatedAt:        now,
		UpdatedAt:        now,
		CreatedBy:        userID,
	}

	if err := request.Validate(); err != nil {
		return nil, err
	}

	err := createWithInitialHistory(s.db, request, userID, req.RequesterName, func(tx *gorm.DB) error {
		return tx.Create(request).Error
	})
	if err != nil {
		return nil, err
	}

	// 记录业务指标
	metrics.RecordHelpRequestCreated(request.Specialty)

	// 记录审计日志
	if s.auditLogSvc != nil && userID != "" {
		details := fmt.Sprintf(`{"request_id":"%s","specialty":"%s","professional_id":"%s"}`,
			request.ID, request.Specialty, request.ProfessionalID)
		_ = s.auditLogSvc.RecordAction(ctx, userID, "create", "help_request", request.ID, details)
	}

	// 通知目标专业人员,尽力投递
	if s.notificationSvc != nil {
		s.notificationSvc.NotifyProfessional(request.ProfessionalID,
			"Nova solicitação de ajuda",
			fmt.Sprintf("%s solicitou ajuda na área %s", request.RequesterName, request.Specialty))
	}

	return request, nil
}

// Get 获取求助请求详情
func (s *helpRequestService) Get(id string) (*model.HelpRequestModel, error) {
	request, err := s.requestRepo.FindByID(id)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return request, nil
}

// List 按过滤条件列出求助请求
func (s *helpRequestService) List(filter *repository.HelpRequestFilter) ([]*model.HelpRequestModel, error) {
	return s.requestRepo.FindByFilter(filter)
}

// GetHistory 获取求助请求的状态历史,按时间升序
func (s *helpRequestService) GetHistory(id string) ([]*model.StatusHistoryModel, error) {
	if _, err := s.requestRepo.FindByID(id); err != nil {
		return nil, translateNotFound(err)
	}
	return s.historyRepo.FindByRecord("help_request", id)
}

// Transition 执行状态流转
// 目标状态只做枚举成员校验,不校验流转顺序;记录不存在时不产生任何写入
func (s *helpRequestService) Transition(ctx context.Context, id string, req *TransitionRequest) (*model.HelpRequestModel, error) {
	if !model.ValidHelpRequestStatus(model.HelpRequestStatus(req.Status)) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, req.Status)
	}

	request, err := s.requestRepo.FindByID(id)
	if err != nil {
		return nil, translateNotFound(err)
	}

	userID := getUserIDFromContext(ctx)
	if err := applyTransition(s.db, request, req.Status, userID, req.ActorName, req.Note); err != nil {
		return nil, err
	}

	metrics.RecordStatusTransition("help_request", req.Status)

	// 记录审计日志
	if s.auditLogSvc != nil && userID != "" {
		details := fmt.Sprintf(`{"request_id":"%s","to_status":"%s"}`, id, req.Status)
		_ = s.auditLogSvc.RecordAction(ctx, userID, "transition", "help_request", id, details)
	}

	// 通知发起人状态变更,尽力投递
	if s.notificationSvc != nil {
		s.notificationSvc.NotifyProfessional(request.RequesterID,
			"Solicitação atualizada",
			fmt.Sprintf("Sua solicitação foi atualizada para %s", req.Status))
	}

	return request, nil
}

// Delete 硬删除求助请求及其状态历史
// 管理操作,普通流转应使用 cancelado 状态保留记录
func (s *helpRequestService) Delete(ctx context.Context, id string) error {
	request, err := s.requestRepo.FindByID(id)
	if err != nil {
		return translateNotFound(err)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("record_type = ? AND record_id = ?", "help_request", id).
			Delete(&model.StatusHistoryModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete status history: %w", err)
		}
		if err := tx.Where("id = ?", id).Delete(&model.HelpRequestModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete help request: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	// 记录审计日志
	if s.auditLogSvc != nil {
		userID := getUserIDFromContext(ctx)
		if userID != "" {
			details := fmt.Sprintf(`{"request_id":"%s","status":"%s"}`, id, request.Status)
			_ = s.auditLogSvc.RecordAction(ctx, userID, "delete", "help_request", id, details)
		}
	}

	return nil
}
