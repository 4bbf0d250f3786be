package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// ExportService 数据导出服务接口
// 导出统计与备份元数据,供前端下载
type ExportService interface {
	ExportJSON(ctx context.Context) ([]byte, error)
	ExportCSV(ctx context.Context) ([]byte, error)
}

// ExportPayload 导出内容
// 不包含生成时刻等易变字段:数据不变时两次导出字节一致
type ExportPayload struct {
	Dashboard                 *DashboardStatistics  `json:"dashboard"`
	HelpRequestsByStatus      []*CountByStatus      `json:"help_requests_by_status"`
	HelpRequestsBySpecialty   []*CountBySpecialty   `json:"help_requests_by_specialty"`
	AppointmentsByServiceType []*CountByServiceType `json:"appointments_by_service_type"`
	VisitorsByStatus          []*CountByStatus      `json:"visitors_by_status"`
	Backups                   []ExportBackupEntry   `json:"backups"`
}

// ExportBackupEntry 导出中的备份元数据
type ExportBackupEntry struct {
	Filename     string `json:"filename"`
	Size         int64  `json:"size"`
	DatabaseType string `json:"database_type"`
}

// exportService 导出服务实现
type exportService struct {
	statisticsSvc StatisticsService
	backupSvc     *BackupService
}

// NewExportService 创建导出服务
func NewExportService(statisticsSvc StatisticsService, backupSvc *BackupService) ExportService {
	return &exportService{
		statisticsSvc: statisticsSvc,
		backupSvc:     backupSvc,
	}
}

// buildPayload 组装导出内容,所有列表均固定排序
func (s *exportService) buildPayload(ctx context.Context) (*ExportPayload, error) {
	dashboard, err := s.statisticsSvc.GetDashboard()
	if err != nil {
		return nil, err
	}
	byStatus, err := s.statisticsSvc.GetHelpRequestsByStatus()
	if err != nil {
		return nil, err
	}
	bySpecialty, err := s.statisticsSvc.GetHelpRequestsBySpecialty()
	if err != nil {
		return nil, err
	}
	byServiceType, err := s.statisticsSvc.GetAppointmentsByServiceType()
	if err != nil {
		return nil, err
	}
	visitorsByStatus, err := s.statisticsSvc.GetVisitorsByStatus()
	if err != nil {
		return nil, err
	}

	payload := &ExportPayload{
		Dashboard:                 dashboard,
		HelpRequestsByStatus:      byStatus,
		HelpRequestsBySpecialty:   bySpecialty,
		AppointmentsByServiceType: byServiceType,
		VisitorsByStatus:          visitorsByStatus,
		Backups:                   []ExportBackupEntry{},
	}

	if s.backupSvc != nil {
		backups, err := s.backupSvc.ListBackups(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list backups: %w", err)
		}
		for _, b := range backups {
			payload.Backups = append(payload.Backups, ExportBackupEntry{
				Filename:     b.Filename,
				Size:         b.Size,
				DatabaseType: b.DatabaseType,
			})
		}
		sort.Slice(payload.Backups, func(i, j int) bool {
			return payload.Backups[i].Filename < payload.Backups[j].Filename
		})
	}

	return payload, nil
}

// ExportJSON 导出 JSON 格式
func (s *exportService) ExportJSON(ctx context.Context) ([]byte, error) {
	payload, err := s.buildPayload(ctx)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(payload, "", "  ")
}

// ExportCSV 导出 CSV 格式
// 扁平化为 section/key/value 三列
func (s *exportService) ExportCSV(ctx context.Context) ([]byte, error) {
	payload, err := s.buildPayload(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"section", "key", "value"}); err != nil {
		return nil, err
	}

	dashboardRows := [][2]string{
		{"total_members", strconv.FormatInt(payload.Dashboard.TotalMembers, 10)},
		{"active_members", strconv.FormatInt(payload.Dashboard.ActiveMembers, 10)},
		{"total_assisted", strconv.FormatInt(payload.Dashboard.TotalAssisted, 10)},
		{"total_visitors", strconv.FormatInt(payload.Dashboard.TotalVisitors, 10)},
		{"open_help_requests", strconv.FormatInt(payload.Dashboard.OpenHelpRequests, 10)},
		{"upcoming_appointments", strconv.FormatInt(payload.Dashboard.UpcomingAppointments, 10)},
		{"active_projects", strconv.FormatInt(payload.Dashboard.ActiveProjects, 10)},
		{"income_cents", strconv.FormatInt(payload.Dashboard.IncomeCents, 10)},
		{"expense_cents", strconv.FormatInt(payload.Dashboard.ExpenseCents, 10)},
	}
	for _, row := range dashboardRows {
		if err := w.Write([]string{"dashboard", row[0], row[1]}); err != nil {
			return nil, err
		}
	}

	for _, r := range payload.HelpRequestsByStatus {
		if err := w.Write([]string{"help_requests_by_status", r.Status, strconv.FormatInt(r.Count, 10)}); err != nil {
			return nil, err
		}
	}
	for _, r := range payload.HelpRequestsBySpecialty {
		if err := w.Write([]string{"help_requests_by_specialty", r.Specialty, strconv.FormatInt(r.Count, 10)}); err != nil {
			return nil, err
		}
	}
	for _, r := range payload.AppointmentsByServiceType {
		if err := w.Write([]string{"appointments_by_service_type", r.ServiceType, strconv.FormatInt(r.Count, 10)}); err != nil {
			return nil, err
		}
	}
	for _, r := range payload.VisitorsByStatus {
		if err := w.Write([]string{"visitors_by_status", r.Status, strconv.FormatInt(r.Count, 10)}); err != nil {
			return nil, err
		}
	}
	for _, b := range payload.Backups {
		if err := w.Write([]string{"backups", b.Filename, strconv.FormatInt(b.Size, 10)}); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
