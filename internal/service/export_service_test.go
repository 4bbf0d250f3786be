package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/JohnPitter/church-management-sub005/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newExportService 构造测试用导出服务,备份目录为空临时目录
func newExportService(t *testing.T) (ExportService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	backupSvc := NewBackupService(db, t.TempDir(), nil)
	svc := NewExportService(NewStatisticsService(db), backupSvc)
	return svc, db
}

func seedExportData(t *testing.T, db *gorm.DB) {
	t.Helper()
	svc := NewHelpRequestService(
		db,
		repository.NewHelpRequestRepository(db),
		repository.NewStatusHistoryRepository(db),
		nil,
		nil,
	)
	request, err := svc.Create(context.Background(), &CreateHelpRequestRequest{
		RequesterID:      "prof-001",
		RequesterName:    "Ana Costa",
		ProfessionalID:   "prof-002",
		ProfessionalName: "Dr. Silva",
		Specialty:        "juridica",
	})
	require.NoError(t, err)
	_, err = svc.Transition(context.Background(), request.ID, &TransitionRequest{Status: "aceito"})
	require.NoError(t, err)
}

func TestExportJSONIsDeterministic(t *testing.T) {
	svc, db := newExportService(t)
	seedExportData(t, db)

	first, err := svc.ExportJSON(context.Background())
	require.NoError(t, err)

	// 数据不变时再次导出,字节完全一致
	second, err := svc.ExportJSON(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestExportJSONContent(t *testing.T) {
	svc, db := newExportService(t)
	seedExportData(t, db)

	data, err := svc.ExportJSON(context.Background())
	require.NoError(t, err)

	var payload ExportPayload
	require.NoError(t, json.Unmarshal(data, &payload))

	require.NotNil(t, payload.Dashboard)
	assert.Equal(t, int64(1), payload.Dashboard.OpenHelpRequests)

	require.Len(t, payload.HelpRequestsByStatus, 1)
	assert.Equal(t, "aceito", payload.HelpRequestsByStatus[0].Status)
	assert.Equal(t, int64(1), payload.HelpRequestsByStatus[0].Count)

	require.Len(t, payload.HelpRequestsBySpecialty, 1)
	assert.Equal(t, "juridica", payload.HelpRequestsBySpecialty[0].Specialty)

	// 无备份时导出空列表而非 null
	assert.NotNil(t, payload.Backups)
	assert.Empty(t, payload.Backups)
}

func TestExportCSVIsDeterministic(t *testing.T) {
	svc, db := newExportService(t)
	seedExportData(t, db)

	first, err := svc.ExportCSV(context.Background())
	require.NoError(t, err)
	second, err := svc.ExportCSV(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)

	lines := strings.Split(strings.TrimSpace(string(first)), "\n")
	assert.Equal(t, "section,key,value", lines[0])
	assert.Contains(t, string(first), "help_requests_by_status,aceito,1")
	assert.Contains(t, string(first), "dashboard,open_help_requests,1")
}
