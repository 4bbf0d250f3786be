package service

import (
	"context"
	"fmt"
	"time"

	"github.com/JohnPitter/church-management-sub005/internal/model"
	"github.com/JohnPitter/church-management-sub005/internal/repository"
	"github.com/google/uuid"
)

// DirectoryService 社区名录服务接口
// 覆盖访客、项目、志愿者和领导层的增删改查
type DirectoryService interface {
	// 访客
	CreateVisitor(ctx context.Context, req *CreateVisitorRequest) (*model.VisitorModel, error)
	GetVisitor(id string) (*model.VisitorModel, error)
	ListVisitors(filter *repository.VisitorFilter) ([]*model.VisitorModel, error)
	UpdateVisitorStatus(ctx context.Context, id string, status string) (*model.VisitorModel, error)
	DeleteVisitor(ctx context.Context, id string) error

	// 项目与志愿者
	CreateProject(ctx context.Context, req *CreateProjectRequest) (*model.ProjectModel, error)
	GetProject(id string) (*model.ProjectModel, error)
	ListProjects(onlyActive bool) ([]*model.ProjectModel, error)
	UpdateProject(ctx context.Context, id string, req *UpdateProjectRequest) (*model.ProjectModel, error)
	AddVolunteer(ctx context.Context, req *AddVolunteerRequest) (*model.VolunteerModel, error)
	ListVolunteers(projectID string) ([]*model.VolunteerModel, error)
	RemoveVolunteer(ctx context.Context, id string) error

	// 领导层
	CreateLeader(ctx context.Context, req *CreateLeaderRequest) (*model.LeaderModel, error)
	ListLeaders() ([]*model.LeaderModel, error)
	UpdateLeader(ctx context.Context, id string, req *UpdateLeaderRequest) (*model.LeaderModel, error)
	DeleteLeader(ctx context.Context, id string) error
}

// CreateVisitorRequest 登记访客的请求参数
// @Description 登记到访人员
type CreateVisitorRequest struct {
	Name       string    `json:"name" example:"Carlos Lima" binding:"required"` // 访客名称
	Phone      string    `json:"phone" example:"+55 11 98765-4321"`             // 电话
	VisitDate  time.Time `json:"visit_date" binding:"required"`                 // 到访日期
	InvitedBy  string    `json:"invited_by" example:"Maria Santos"`             // 邀请人
	WantsVisit bool      `json:"wants_visit"`                                   // 是否希望接受回访
}

// CreateProjectRequest 创建项目的请求参数
// @Description 创建社区项目
type CreateProjectRequest struct {
	Name        string `json:"name" example:"Cesta Básica" binding:"required"` // 项目名称
	Description string `json:"description"`                                    // 项目描述
	Coordinator string `json:"coordinator" example:"Ana Costa"`                // 协调人
}

// UpdateProjectRequest 更新项目的请求参数
type UpdateProjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Coordinator *string `json:"coordinator"`
	Active      *bool   `json:"active"`
}

// AddVolunteerRequest 添加志愿者的请求参数
// @Description 将志愿者加入项目
type AddVolunteerRequest struct {
	ProjectID string `json:"project_id" example:"proj-001" binding:"required"` // 项目 ID
	Name      string `json:"name" example:"Pedro Souza" binding:"required"`    // 志愿者名称
	Phone     string `json:"phone"`                                            // 电话
	Role      string `json:"role" example:"motorista"`                         // 担任角色
}

// CreateLeaderRequest 创建领导层条目的请求参数
// @Description 登记领导层名录条目
type CreateLeaderRequest struct {
	Name      string `json:"name" example:"Pr. Roberto" binding:"required"` // 名称
	Ministry  string `json:"ministry" example:"louvor"`                     // 所属事工
	Phone     string `json:"phone"`                                         // 电话
	Email     string `json:"email"`                                         // 邮箱
	PhotoURL  string `json:"photo_url"`                                     // 照片地址
	SortOrder int    `json:"sort_order"`                                    // 展示排序
}

// UpdateLeaderRequest 更新领导层条目的请求参数
type UpdateLeaderRequest struct {
	Name      *string `json:"name"`
	Ministry  *string `json:"ministry"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
	PhotoURL  *string `json:"photo_url"`
	SortOrder *int    `json:"sort_order"`
}

// directoryService 社区名录服务实现
type directoryService struct {
	visitorRepo   repository.VisitorRepository
	projectRepo   repository.ProjectRepository
	volunteerRepo repository.VolunteerRepository
	leaderRepo    repository.LeaderRepository
	auditLogSvc   AuditLogService
}

// NewDirectoryService 创建社区名录服务
func NewDirectoryService(
	visitorRepo repository.VisitorRepository,
	projectRepo repository.ProjectRepository,
	volunteerRepo repository.VolunteerRepository,
	leaderRepo repository.LeaderRepository,
	auditLogSvc AuditLogService,
) DirectoryService {
	return &directoryService{
		visitorRepo:   visitorRepo,
		projectRepo:   projectRepo,
		volunteerRepo: volunteerRepo,
		leaderRepo:    leaderRepo,
		auditLogSvc:   auditLogSvc,
	}
}

// recordAudit 记录名录操作的审计日志
func (s *directoryService) recordAudit(ctx context.Context, action, resourceType, resourceID string) {
	if s.auditLogSvc == nil {
		return
	}
	userID := getUserIDFromContext(ctx)
	if userID == "" {
		return
	}
	details := fmt.Sprintf(`{"%s_id":"%s"}`, resourceType, resourceID)
	_ = s.auditLogSvc.RecordAction(ctx, userID, action, resourceType, resourceID, details)
}

// CreateVisitor 登记访客
// 新访客总是以 novo 状态进入
func (s *directoryService) CreateVisitor(ctx context.Context, req *CreateVisitorRequest) (*model.VisitorModel, error) {
	userID := getUserIDFromContext(ctx)
	now := time.Now()

	visitor := &model.VisitorModel{
		ID:         uuid.New().String(),
		Name:       req.Name,
		Phone:      req.Phone,
		VisitDate:  req.VisitDate,
		InvitedBy:  req.InvitedBy,
		WantsVisit: req.WantsVisit,
		Status:     "novo",
		CreatedAt:  now,
		UpdatedAt:  now,
		CreatedBy:  userID,
	}

	if err := visitor.Validate(); err != nil {
		return nil, err
	}
	if err := s.visitorRepo.Save(visitor); err != nil {
		return nil, err
	}

	s.recordAudit(ctx, "create", "visitor", visitor.ID)
	return visitor, nil
}

// GetVisitor 获取访客详情
func (s *directoryService) GetVisitor(id string) (*model.VisitorModel, error) {
	visitor, err := s.visitorRepo.FindByID(id)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return visitor, nil
}

// ListVisitors 按过滤条件列出访客
func (s *directoryService) ListVisitors(filter *repository.VisitorFilter) ([]*model.VisitorModel, error) {
	return s.visitorRepo.FindByFilter(filter)
}

// UpdateVisitorStatus 更新访客跟进状态
// 合法状态: novo, contatado, integrado
func (s *directoryService) UpdateVisitorStatus(ctx context.Context, id string, status string) (*model.VisitorModel, error) {
	switch status {
	case "novo", "contatado", "integrado":
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	visitor, err := s.visitorRepo.FindByID(id)
	if err != nil {
		return nil, translateNotFound(err)
	}

	visitor.Status = status
	visitor.UpdatedBy = getUserIDFromContext(ctx)
	visitor.UpdatedAt = time.Now()

	if err := s.visitorRepo.Save(visitor); err != nil {
		return nil, err
	}

	s.recordAudit(ctx, "update", "visitor", id)
	return visitor, nil
}

// DeleteVisitor 删除访客
func (s *directoryService) DeleteVisitor(ctx context.Context, id string) error {
	if _, err := s.visitorRepo.FindByID(id); err != nil {
		return translateNotFound(err)
	}
	if err := s.visitorRepo.Delete(id); err != nil {
		return err
	}
	s.recordAudit(ctx, "delete", "visitor", id)
	return nil
}

// CreateProject 创建社区项目
func (s *directoryService) CreateProject(ctx context.Context, req *CreateProjectRequest) (*model.ProjectModel, error) {
	userID := getUserIDFromContext(ctx)
	now := time.Now()

	project := &model.ProjectModel{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
		Coordinator: req.Coordinator,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
		CreatedBy:   userID,
	}

	if err := project.Validate(); err != nil {
		return nil, err
	}
	if err := s.projectRepo.Save(project); err != nil {
		return nil, err
	}

	s.recordAudit(ctx, "create", "project", project.ID)
	return project, nil
}

// GetProject 获取项目详情
func (s *directoryService) GetProject(id string) (*model.ProjectModel, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return project, nil
}

// ListProjects 列出项目
func (s *directoryService) ListProjects(onlyActive bool) ([]*model.ProjectModel, error) {
	return s.projectRepo.FindAll(onlyActive)
}

// UpdateProject 更新项目
func (s *directoryService) UpdateProject(ctx context.Context, id string, req *UpdateProjectRequest) (*model.ProjectModel, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		return nil, translateNotFound(err)
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Coordinator != nil {
		project.Coordinator = *req.Coordinator
	}
	if req.Active != nil {
		project.Active = *req.Active
	}

	project.UpdatedBy = getUserIDFromContext(ctx)
	project.UpdatedAt = time.Now()

	if err := project.Validate(); err != nil {
		return nil, err
	}
	if err := s.projectRepo.Save(project); err != nil {
		return nil, err
	}

	s.recordAudit(ctx, "update", "project", id)
	return project, nil
}

// AddVolunteer 将志愿者加入项目
// 项目必须存在
func (s *directoryService) AddVolunteer(ctx context.Context, req *AddVolunteerRequest) (*model.VolunteerModel, error) {
	if _, err := s.projectRepo.FindByID(req.ProjectID); err != nil {
		return nil, translateNotFound(err)
	}

	userID := getUserIDFromContext(ctx)
	now := time.Now()

	volunteer := &model.VolunteerModel{
		ID:        uuid.New().String(),
		ProjectID: req.ProjectID,
		Name:      req.Name,
		Phone:     req.Phone,
		Role:      req.Role,
		CreatedAt: now,
		UpdatedAt: now,
		CreatedBy: userID,
	}

	if err := volunteer.Validate(); err != nil {
		return nil, err
	}
	if err := s.volunteerRepo.Save(volunteer); err != nil {
		return nil, err
	}

	s.recordAudit(ctx, "create", "volunteer", volunteer.ID)
	return volunteer, nil
}

// ListVolunteers 列出项目的志愿者
func (s *directoryService) ListVolunteers(projectID string) ([]*model.VolunteerModel, error) {
	return s.volunteerRepo.FindByProjectID(projectID)
}

// RemoveVolunteer 将志愿者移出项目
func (s *directoryService) RemoveVolunteer(ctx context.Context, id string) error {
	if _, err := s.volunteerRepo.FindByID(id); err != nil {
		return translateNotFound(err)
	}
	if err := s.volunteerRepo.Delete(id); err != nil {
		return err
	}
	s.recordAudit(ctx, "delete", "volunteer", id)
	return nil
}

// CreateLeader 登记领导层条目
func (s *directoryService) CreateLeader(ctx context.Context, req *CreateLeaderRequest) (*model.LeaderModel, error) {
	userID := getUserIDFromContext(ctx)
	now := time.Now()

	leader := &model.LeaderModel{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Ministry:  req.Ministry,
		Phone:     req.Phone,
		Email:     req.Email,
		PhotoURL:  req.PhotoURL,
		SortOrder: req.SortOrder,
		CreatedAt: now,
		UpdatedAt: now,
		CreatedBy: userID,
	}

	if err := leader.Validate(); err != nil {
		return nil, err
	}
	if err := s.leaderRepo.Save(leader); err != nil {
		return nil, err
	}

	s.recordAudit(ctx, "create", "leader", leader.ID)
	return leader, nil
}

// ListLeaders 列出领导层名录,按排序字段排列
func (s *directoryService) ListLeaders() ([]*model.LeaderModel, error) {
	return s.leaderRepo.FindAll()
}

// UpdateLeader 更新领导层条目
func (s *directoryService) UpdateLeader(ctx context.Context, id string, req *UpdateLeaderRequest) (*model.LeaderModel, error) {
	leader, err := s.leaderRepo.FindByID(id)
	if err != nil {
		return nil, translateNotFound(err)
	}

	if req.Name != nil {
		leader.Name = *req.Name
	}
	if req.Ministry != nil {
		leader.Ministry = *req.Ministry
	}
	if req.Phone != nil {
		leader.Phone = *req.Phone
	}
	if req.Email != nil {
		leader.Email = *req.Email
	}
	if req.PhotoURL != nil {
		leader.PhotoURL = *req.PhotoURL
	}
	if req.SortOrder != nil {
		leader.SortOrder = *req.SortOrder
	}

	leader.UpdatedBy = getUserIDFromContext(ctx)
	leader.UpdatedAt = time.Now()

	if err := leader.Validate(); err != nil {
		return nil, err
	}
	if err := s.leaderRepo.Save(leader); err != nil {
		return nil, err
	}

	s.recordAudit(ctx, "update", "leader", id)
	return leader, nil
}

// DeleteLeader 删除领导层条目
func (s *directoryService) DeleteLeader(ctx context.Context, id string) error {
	if _, err := s.leaderRepo.FindByID(id); err != nil {
		return translateNotFound(err)
	}
	if err := s.leaderRepo.Delete(id); err != nil {
		return err
	}
	s.recordAudit(ctx, "delete", "leader", id)
	return nil
}
