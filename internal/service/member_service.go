package service

import (
	"context"
	"fmt"
	"time"

	"github.com/JohnPitter/church-management-sub005/internal/model"
	"github.com/JohnPitter/church-management-sub005/internal/repository"
	"github.com/JohnPitter/church-management-sub005/internal/utils"
	"github.com/google/uuid"
)

// MemberService 成员服务接口
type MemberService interface {
	Create(ctx context.Context, req *CreateMemberRequest) (*model.MemberModel, error)
	Get(id string) (*model.MemberModel, error)
	List() ([]*model.MemberModel, error)
	Update(ctx context.Context, id string, req *UpdateMemberRequest) (*model.MemberModel, error)
	Deactivate(ctx context.Context, id string) error
}

// CreateMemberRequest 创建成员的请求参数
// @Description 创建教会成员
type CreateMemberRequest struct {
	Name        string     `json:"name" example:"João Pereira" binding:"required"` // 成员名称
	CPF         string     `json:"cpf" example:"123.456.789-09"`                   // 国家身份证号
	Email       string     `json:"email" example:"joao@example.com"`               // 邮箱
	Phone       string     `json:"phone" example:"+55 11 91234-5678"`              // 电话
	BirthDate   *time.Time `json:"birth_date"`                                     // 出生日期
	Address     string     `json:"address"`                                        // 地址
	Baptized    bool       `json:"baptized"`                                       // 是否受洗
	MemberSince *time.Time `json:"member_since"`                                   // 入会日期
}

// UpdateMemberRequest 更新成员的请求参数
// @Description 更新成员的基础字段
type UpdateMemberRequest struct {
	Name        *string    `json:"name"`
	CPF         *string    `json:"cpf"`
	Email       *string    `json:"email"`
	Phone       *string    `json:"phone"`
	BirthDate   *time.Time `json:"birth_date"`
	Address     *string    `json:"address"`
	Baptized    *bool      `json:"baptized"`
	MemberSince *time.Time `json:"member_since"`
	Active      *bool      `json:"active"`
}

// memberService 成员服务实现
type memberService struct {
	memberRepo  repository.MemberRepository
	auditLogSvc AuditLogService
}

// NewMemberService 创建成员服务
func NewMemberService(memberRepo repository.MemberRepository, auditLogSvc AuditLogService) MemberService {
	return &memberService{
		memberRepo:  memberRepo,
		auditLogSvc: auditLogSvc,
	}
}

// Create 创建成员
func (s *memberService) Create(ctx context.Context, req *CreateMemberRequest) (*model.MemberModel, error) {
	if req.CPF != "" && !utils.ValidCPF(req.CPF) {
		return nil, fmt.Errorf("invalid CPF: %s", req.CPF)
	}

	userID := getUserIDFromContext(ctx)
	now := time.Now()

	member := &model.MemberModel{
		ID:          uuid.New().String(),
		Name:        req.Name,
		CPF:         utils.NormalizeCPF(req.CPF),
		Email:       req.Email,
		Phone:       req.Phone,
		BirthDate:   req.BirthDate,
		Address:     req.Address,
		Baptized:    req.Baptized,
		MemberSince: req.MemberSince,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
		CreatedBy:   userID,
	}

	if err := member.Validate(); err != nil {
		return nil, err
	}
	if err := s.memberRepo.Save(member); err != nil {
		if member.CPF != "" && isDuplicateKeyError(err) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCPF, member.CPF)
		}
		return nil, err
	}

	// 记录审计日志
	if s.auditLogSvc != nil && userID != "" {
		details := fmt.Sprintf(`{"member_id":"%s","name":"%s"}`, member.ID, member.Name)
		_ = s.auditLogSvc.RecordAction(ctx, userID, "create", "member", member.ID, details)
	}

	return member, nil
}

// Get 获取成员详情
func (s *memberService) Get(id string) (*model.MemberModel, error) {
	member, err := s.memberRepo.FindByID(id)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return member, nil
}

// List 列出所有成员,按名称排序
func (s *memberService) List() ([]*model.MemberModel, error) {
	return s.memberRepo.FindAll()
}

// Update 更新成员
func (s *memberService) Update(ctx context.Context, id string, req *UpdateMemberRequest) (*model.MemberModel, error) {
	member, err := s.memberRepo.FindByID(id)
	if err != nil {
		return nil, translateNotFound(err)
	}

	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.CPF != nil {
		if *req.CPF != "" && !utils.ValidCPF(*req.CPF) {
			return nil, fmt.Errorf("invalid CPF: %s", *req.CPF)
		}
		member.CPF = utils.NormalizeCPF(*req.CPF)
	}
	if req.Email != nil {
		member.Email = *req.Email
	}
	if req.Phone != nil {
		member.Phone = *req.Phone
	}
	if req.BirthDate != nil {
		member.BirthDate = req.BirthDate
	}
	if req.Address != nil {
		member.Address = *req.Address
	}
	if req.Baptized != nil {
		member.Baptized = *req.Baptized
	}
	if req.MemberSince != nil {
		member.MemberSince = req.MemberSince
	}
	if req.Active != nil {
		member.Active = *req.Active
	}

	userID := getUserIDFromContext(ctx)
	member.UpdatedBy = userID
	member.UpdatedAt = time.Now()

	if err := member.Validate(); err != nil {
		return nil, err
	}
	if err := s.memberRepo.Save(member); err != nil {
		if member.CPF != "" && isDuplicateKeyError(err) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCPF, member.CPF)
		}
		return nil, err
	}

	// 记录审计日志
	if s.auditLogSvc != nil && userID != "" {
		details := fmt.Sprintf(`{"member_id":"%s"}`, id)
		_ = s.auditLogSvc.RecordAction(ctx, userID, "update", "member", id, details)
	}

	return member, nil
}

// Deactivate 停用成员
// 软停用,保留记录供历史查询
func (s *memberService) Deactivate(ctx context.Context, id string) error {
	member, err := s.memberRepo.FindByID(id)
	if err != nil {
		return translateNotFound(err)
	}

	userID := getUserIDFromContext(ctx)
	member.Active = false
	member.UpdatedBy = userID
	member.UpdatedAt = time.Now()

	if err := s.memberRepo.Save(member); err != nil {
		return err
	}

	// 记录审计日志
	if s.auditLogSvc != nil && userID != "" {
		details := fmt.Sprintf(`{"member_id":"%s"}`, id)
		_ = s.auditLogSvc.RecordAction(ctx, userID, "deactivate", "member", id, details)
	}

	return nil
}
