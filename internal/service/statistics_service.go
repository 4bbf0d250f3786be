package service

import (
	"fmt"

	"github.com/JohnPitter/church-management-sub005/internal/model"
	"gorm.io/gorm"
)

// StatisticsService 统计服务接口
type StatisticsService interface {
	GetHelpRequestsByStatus() ([]*CountByStatus, error)
	GetHelpRequestsBySpecialty() ([]*CountBySpecialty, error)
	GetHelpRequestsByMonth() ([]*CountByMonth, error)
	GetAppointmentsByServiceType() ([]*CountByServiceType, error)
	GetVisitorsByStatus() ([]*CountByStatus, error)
	GetDashboard() (*DashboardStatistics, error)
}

// CountByStatus 按状态统计
type CountByStatus struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// CountBySpecialty 按专业领域统计
type CountBySpecialty struct {
	Specialty string `json:"specialty"`
	Count     int64  `json:"count"`
}

// CountByMonth 按创建月份统计
type CountByMonth struct {
	Month string `json:"month"` // YYYY-MM
	Count int64  `json:"count"`
}

// CountByServiceType 按服务类型统计
type CountByServiceType struct {
	ServiceType string `json:"service_type"`
	Count       int64  `json:"count"`
}

// DashboardStatistics 总览统计
// @Description 仪表盘展示的汇总数字
type DashboardStatistics struct {
	TotalMembers        int64 `json:"total_members"`         // 成员总数
	ActiveMembers       int64 `json:"active_members"`        // 活跃成员数
	TotalAssisted       int64 `json:"total_assisted"`        // 受助者总数
	TotalVisitors       int64 `json:"total_visitors"`        // 访客总数
	OpenHelpRequests    int64 `json:"open_help_requests"`    // 未完结的求助请求数
	UpcomingAppointments int64 `json:"upcoming_appointments"` // 未完结的预约数
	ActiveProjects      int64 `json:"active_projects"`       // 活跃项目数
	IncomeCents         int64 `json:"income_cents"`          // 收入合计(分)
	ExpenseCents        int64 `json:"expense_cents"`         // 支出合计(分)
}

// statisticsService 统计服务实现
type statisticsService struct {
	db *gorm.DB
}

// NewStatisticsService 创建统计服务
func NewStatisticsService(db *gorm.DB) StatisticsService {
	return &statisticsService{db: db}
}

// GetHelpRequestsByStatus 按状态统计求助请求
func (s *statisticsService) GetHelpRequestsByStatus() ([]*CountByStatus, error) {
	var results []*CountByStatus

	err := s.db.Model(&model.HelpRequestModel{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Order("status ASC").
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get help request statistics by status: %w", err)
	}

	return results, nil
}

// GetHelpRequestsBySpecialty 按专业领域统计求助请求
func (s *statisticsService) GetHelpRequestsBySpecialty() ([]*CountBySpecialty, error) {
	var results []*CountBySpecialty

	err := s.db.Model(&model.HelpRequestModel{}).
		Select("specialty, COUNT(*) as count").
		Group("specialty").
		Order("specialty ASC").
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get help request statistics by specialty: %w", err)
	}

	return results, nil
}

// GetHelpRequestsByMonth 按创建月份统计求助请求
// 月份表达式因方言而异:sqlite 用 strftime,postgres 用 to_char
func (s *statisticsService) GetHelpRequestsByMonth() ([]*CountByMonth, error) {
	monthExpr := "strftime('%Y-%m', created_at)"
	if s.db.Dialector.Name() == "postgres" {
		monthExpr = "to_char(created_at, 'YYYY-MM')"
	}

	var results []*CountByMonth
	err := s.db.Model(&model.HelpRequestModel{}).
		Select(monthExpr + " as month, COUNT(*) as count").
		Group("month").
		Order("month ASC").
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get help request statistics by month: %w", err)
	}

	return results, nil
}

// GetAppointmentsByServiceType 按服务类型统计预约
func (s *statisticsService) GetAppointmentsByServiceType() ([]*CountByServiceType, error) {
	var results []*CountByServiceType

	err := s.db.Model(&model.AppointmentModel{}).
		Select("service_type, COUNT(*) as count").
		Group("service_type").
		Order("service_type ASC").
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment statistics by service type: %w", err)
	}

	return results, nil
}

// GetVisitorsByStatus 按跟进状态统计访客
func (s *statisticsService) GetVisitorsByStatus() ([]*CountByStatus, error) {
	var results []*CountByStatus

	err := s.db.Model(&model.VisitorModel{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Order("status ASC").
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get visitor statistics by status: %w", err)
	}

	return results, nil
}

// GetDashboard 获取总览统计
func (s *statisticsService) GetDashboard() (*DashboardStatistics, error) {
	stats := &DashboardStatistics{}

	if err := s.db.Model(&model.MemberModel{}).Count(&stats.TotalMembers).Error; err != nil {
		return nil, fmt.Errorf("failed to count members: %w", err)
	}
	if err := s.db.Model(&model.MemberModel{}).Where("active = ?", true).Count(&stats.ActiveMembers).Error; err != nil {
		return nil, fmt.Errorf("failed to count active members: %w", err)
	}
	if err := s.db.Model(&model.AssistedModel{}).Count(&stats.TotalAssisted).Error; err != nil {
		return nil, fmt.Errorf("failed to count assisted: %w", err)
	}
	if err := s.db.Model(&model.VisitorModel{}).Count(&stats.TotalVisitors).Error; err != nil {
		return nil, fmt.Errorf("failed to count visitors: %w", err)
	}

	openStatuses := []string{
		string(model.StatusPendente),
		string(model.StatusEmAnalise),
		string(model.StatusAceito),
	}
	if err := s.db.Model(&model.HelpRequestModel{}).
		Where("status IN ?", openStatuses).
		Count(&stats.OpenHelpRequests).Error; err != nil {
		return nil, fmt.Errorf("failed to count open help requests: %w", err)
	}

	if err := s.db.Model(&model.AppointmentModel{}).
		Where("status IN ?", []string{string(model.AppointmentAgendado), string(model.AppointmentConfirmado)}).
		Count(&stats.UpcomingAppointments).Error; err != nil {
		return nil, fmt.Errorf("failed to count upcoming appointments: %w", err)
	}

	if err := s.db.Model(&model.ProjectModel{}).Where("active = ?", true).Count(&stats.ActiveProjects).Error; err != nil {
		return nil, fmt.Errorf("failed to count active projects: %w", err)
	}

	// 财务流水汇总,空表时 SUM 为 NULL,用 COALESCE 归零
	if err := s.db.Model(&model.TransactionModel{}).
		Where("direction = ?", "entrada").
		Select("COALESCE(SUM(amount_cents), 0)").
		Scan(&stats.IncomeCents).Error; err != nil {
		return nil, fmt.Errorf("failed to sum income: %w", err)
	}
	if err := s.db.Model(&model.TransactionModel{}).
		Where("direction = ?", "saida").
		Select("COALESCE(SUM(amount_cents), 0)").
		Scan(&stats.ExpenseCents).Error; err != nil {
		return nil, fmt.Errorf("failed to sum expenses: %w", err)
	}

	return stats, nil
}
