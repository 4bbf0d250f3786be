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

// AppointmentService 预约服务接口
type AppointmentService interface {
	Create(ctx context.Context, req *CreateAppointmentRequest) (*model.AppointmentModel, error)
	Get(id string) (*model.AppointmentModel, error)
	List(filter *repository.AppointmentFilter) ([]*model.AppointmentModel, error)
	GetHistory(id string) ([]*model.StatusHistoryModel, error)
	Transition(ctx context.Context, id string, req *TransitionRequest) (*model.AppointmentModel, error)
	Update(ctx context.Context, id string, req *UpdateAppointmentRequest) (*model.AppointmentModel, error)
	Delete(ctx context.Context, id string) error
}

// CreateAppointmentRequest 创建预约的请求参数
// @Description 创建援助服务预约
type CreateAppointmentRequest struct {
	PersonName       string    `json:"person_name" example:"Maria Santos" binding:"required"` // 受助者名称
	PersonPhone      string    `json:"person_phone" example:"+55 11 91234-5678"`              // 联系电话
	ProfessionalID   string    `json:"professional_id" example:"prof-002"`                    // 负责专业人员 ID
	ProfessionalName string    `json:"professional_name" example:"Dr. Silva"`                 // 负责专业人员名称
	ServiceType      string    `json:"service_type" example:"psicologica" binding:"required"` // 服务类型
	ScheduledAt      time.Time `json:"scheduled_at" example:"2025-03-10T14:00:00Z" binding:"required"` // 预约时间
	Notes            string    `json:"notes" example:"primeira consulta"`                     // 备注
}

// UpdateAppointmentRequest 更新预约的请求参数
// @Description 更新预约的基础字段,状态流转走专门接口
type UpdateAppointmentRequest struct {
	PersonName       *string    `json:"person_name"`
	PersonPhone      *string    `json:"person_phone"`
	ProfessionalID   *string    `json:"professional_id"`
	ProfessionalName *string    `json:"professional_name"`
	ScheduledAt      *time.Time `json:"scheduled_at"`
	Notes            *string    `json:"notes"`
}

// appointmentService 预约服务实现
type appointmentService struct {
	db              *gorm.DB
	appointmentRepo repository.AppointmentRepository
	historyRepo     repository.StatusHistoryRepository
	auditLogSvc     AuditLogService
	notificationSvc NotificationService
}

// NewAppointmentService 创建预约服务
func NewAppointmentService(
	db *gorm.DB,
	appointmentRepo repository.AppointmentRepository,
	historyRepo repository.StatusHistoryRepository,
	auditLogSvc AuditLogService,
	notificationSvc NotificationService,
) AppointmentService {
	return &appointmentService{
		db:              db,
		appointmentRepo: appointmentRepo,
		historyRepo:     historyRepo,
		auditLogSvc:     auditLogSvc,
		notificationSvc: notificationSvc,
	}
}

// Create 创建预约
// 新预约总是以 agendado 状态进入,初始历史条目与记录在同一事务内写入
func (s *appointmentService) Create(ctx context.Context, req *CreateAppointmentRequest) (*model.AppointmentModel, error) {
	userID := getUserIDFromContext(ctx)
	now := time.Now()

	appointment := &model.AppointmentModel{
		ID:               uuid.New().String(),
		PersonName:       req.PersonName,
		PersonPhone:      req.PersonPhone,
		ProfessionalID:   req.ProfessionalID,
		ProfessionalName: req.ProfessionalName,
		ServiceType:      req.ServiceType,
		ScheduledAt:      req.ScheduledAt,
		Status:           string(model.AppointmentAgendado),
		Notes:            req.Notes,
		CreatedAt:        now,
		UpdatedAt:        now,
		CreatedBy:        userID,
	}

	if err := appointment.Validate(); err != nil {
		return nil, err
	}

	err := createWithInitialHistory(s.db, appointment, userID, getUserNameFromContext(ctx), func(tx *gorm.DB) error {
		return tx.Create(appointment).Error
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordAppointmentCreated(appointment.ServiceType)

	// 记录审计日志
	if s.auditLogSvc != nil && userID != "" {
		details := fmt.Sprintf(`{"appointment_id":"%s","service_type":"%s"}`, appointment.ID, appointment.ServiceType)
		_ = s.auditLogSvc.RecordAction(ctx, userID, "create", "appointment", appointment.ID, details)
	}

	// 通知负责专业人员,尽力投递
	if s.notificationSvc != nil && appointment.ProfessionalID != "" {
		s.notificationSvc.NotifyProfessional(appointment.ProfessionalID,
			"Novo agendamento",
			fmt.Sprintf("Atendimento %s agendado para %s", appointment.ServiceType, appointment.ScheduledAt.Format("02/01/2006 15:04")))
	}

	return appointment, nil
}

// Get 获取预约详情
func (s *appointmentService) Get(id string) (*model.AppointmentModel, error) {
	appointment, err := s.appointmentRepo.FindByID(id)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return appointment, nil
}

// List 按过滤条件列出预约
func (s *appointmentService) List(filter *repository.AppointmentFilter) ([]*model.AppointmentModel, error) {
	return s.appointmentRepo.FindByFilter(filter)
}

// GetHistory 获取预约的状态历史,按时间升序
func (s *appointmentService) GetHistory(id string) ([]*model.StatusHistoryModel, error) {
	if _, err := s.appointmentRepo.FindByID(id); err != nil {
		return nil, translateNotFound(err)
	}
	return s.historyRepo.FindByRecord("appointment", id)
}

// Transition 执行状态流转
// 目标状态只做枚举成员校验;记录不存在时不产生任何写入
func (s *appointmentService) Transition(ctx context.Context, id string, req *TransitionRequest) (*model.AppointmentModel, error) {
	if !model.ValidAppointmentStatus(model.AppointmentStatus(req.Status)) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, req.Status)
	}

	appointment, err := s.appointmentRepo.FindByID(id)
	if err != nil {
		return nil, translateNotFound(err)
	}

	userID := getUserIDFromContext(ctx)
	if err := applyTransition(s.db, appointment, req.Status, userID, req.ActorName, req.Note); err != nil {
		return nil, err
	}

	metrics.RecordStatusTransition("appointment", req.Status)

	// 记录审计日志
	if s.auditLogSvc != nil && userID != "" {
		details := fmt.Sprintf(`{"appointment_id":"%s","to_status":"%s"}`, id, req.Status)
		_ = s.auditLogSvc.RecordAction(ctx, userID, "transition", "appointment", id, details)
	}

	return appointment, nil
}

// Update 更新预约的基础字段
func (s *appointmentService) Update(ctx context.Context, id string, req *UpdateAppointmentRequest) (*model.AppointmentModel, error) {
	appointment, err := s.appointmentRepo.FindByID(id)
	if err != nil {
		return nil, translateNotFound(err)
	}

	if req.PersonName != nil {
		appointment.PersonName = *req.PersonName
	}
	if req.PersonPhone != nil {
		appointment.PersonPhone = *req.PersonPhone
	}
	if req.ProfessionalID != nil {
		appointment.ProfessionalID = *req.ProfessionalID
	}
	if req.ProfessionalName != nil {
		appointment.ProfessionalName = *req.ProfessionalName
	}
	if req.ScheduledAt != nil {
		appointment.ScheduledAt = *req.ScheduledAt
	}
	if req.Notes != nil {
		appointment.Notes = *req.Notes
	}

	userID := getUserIDFromContext(ctx)
	appointment.UpdatedBy = userID
	appointment.UpdatedAt = time.Now()

	if err := appointment.Validate(); err != nil {
		return nil, err
	}
	if err := s.appointmentRepo.Save(appointment); err != nil {
		return nil, err
	}

	// 记录审计日志
	if s.auditLogSvc != nil && userID != "" {
		details := fmt.Sprintf(`{"appointment_id":"%s"}`, id)
		_ = s.auditLogSvc.RecordAction(ctx, userID, "update", "appointment", id, details)
	}

	return appointment, nil
}

// Delete 硬删除预约及其状态历史
func (s *appointmentService) Delete(ctx context.Context, id string) error {
	if _, err := s.appointmentRepo.FindByID(id); err != nil {
		return translateNotFound(err)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("record_type = ? AND record_id = ?", "appointment", id).
			Delete(&model.StatusHistoryModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete status history: %w", err)
		}
		if err := tx.Where("id = ?", id).Delete(&model.AppointmentModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete appointment: %w", err)
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
			details := fmt.Sprintf(`{"appointment_id":"%s"}`, id)
			_ = s.auditLogSvc.RecordAction(ctx, userID, "delete", "appointment", id, details)
		}
	}

	return nil
}
