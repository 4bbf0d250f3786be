package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/JohnPitter/church-management-sub005/internal/config"
	"github.com/JohnPitter/church-management-sub005/internal/model"
	"github.com/JohnPitter/church-management-sub005/internal/repository"
	"github.com/JohnPitter/church-management-sub005/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestRouter 构造测试路由:内存数据库,无认证
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	db := newAPITestDB(t)
	return setupTestRouter(t, db)
}

func newAPITestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.HelpRequestModel{},
		&model.AppointmentModel{},
		&model.StatusHistoryModel{},
		&model.MemberModel{},
		&model.AssistedModel{},
		&model.EventModel{},
		&model.TransactionModel{},
		&model.VisitorModel{},
		&model.ProjectModel{},
		&model.VolunteerModel{},
		&model.LeaderModel{},
		&model.SiteSettingsModel{},
		&model.UserAccountModel{},
		&model.NotificationModel{},
	))
	return db
}

func setupTestRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()

	helpRequestRepo := repository.NewHelpRequestRepository(db)
	historyRepo := repository.NewStatusHistoryRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	assistedRepo := repository.NewAssistedRepository(db)
	eventRepo := repository.NewEventRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	visitorRepo := repository.NewVisitorRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	volunteerRepo := repository.NewVolunteerRepository(db)
	leaderRepo := repository.NewLeaderRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	accountRepo := repository.NewUserAccountRepository(db)

	notificationSvc := service.NewNotificationService(notificationRepo, accountRepo, nil, nil)
	helpRequestSvc := service.NewHelpRequestService(db, helpRequestRepo, historyRepo, nil, notificationSvc)
	appointmentSvc := service.NewAppointmentService(db, appointmentRepo, historyRepo, nil, notificationSvc)
	memberSvc := service.NewMemberService(memberRepo, nil)
	directorySvc := service.NewDirectoryService(visitorRepo, projectRepo, volunteerRepo, leaderRepo, nil)
	settingsSvc := service.NewSettingsService(settingsRepo, nil)
	importSvc := service.NewImportService(memberRepo, assistedRepo, eventRepo, transactionRepo, accountRepo, nil, nil)
	statisticsSvc := service.NewStatisticsService(db)
	backupSvc := service.NewBackupService(db, t.TempDir(), nil)
	exportSvc := service.NewExportService(statisticsSvc, backupSvc)

	controllers := &Controllers{
		HelpRequest:  NewHelpRequestController(helpRequestSvc),
		Appointment:  NewAppointmentController(appointmentSvc),
		Member:       NewMemberController(memberSvc),
		Directory:    NewDirectoryController(directorySvc),
		Settings:     NewSettingsController(settingsSvc),
		Notification: NewNotificationController(notificationSvc),
		Import:       NewImportController(importSvc),
		Export:       NewExportController(exportSvc),
		Statistics:   NewStatisticsController(statisticsSvc),
		Backup:       NewBackupController(backupSvc),
	}

	gin.SetMode(gin.TestMode)
	return SetupRoutes(config.Default(), nil, nil, db, nil, controllers)
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var resp struct {
		Code    int             `json:"code"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 0, resp.Code)
	if out != nil {
		require.NoError(t, json.Unmarshal(resp.Data, out))
	}
}

func TestHelpRequestFlow(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/help-requests", map[string]interface{}{
		"requester_id":      "prof-001",
		"requester_name":    "Ana Costa",
		"professional_id":   "prof-002",
		"professional_name": "Dr. Silva",
		"specialty":         "psicologica",
		"description":       "encaminhamento urgente",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var created model.HelpRequestModel
	decodeData(t, w, &created)
	assert.Equal(t, "pendente", created.Status)
	require.NotEmpty(t, created.ID)

	// 状态流转
	w = doJSON(t, router, http.MethodPut, "/api/v1/help-requests/"+created.ID+"/status", map[string]interface{}{
		"status":     "aceito",
		"actor_name": "Dr. Silva",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated model.HelpRequestModel
	decodeData(t, w, &updated)
	assert.Equal(t, "aceito", updated.Status)

	// 历史按时间升序,末条对应当前状态
	w = doJSON(t, router, http.MethodGet, "/api/v1/help-requests/"+created.ID+"/history", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var history []model.StatusHistoryModel
	decodeData(t, w, &history)
	require.Len(t, history, 2)
	assert.Equal(t, "pendente", history[1].FromStatus)
	assert.Equal(t, "aceito", history[1].ToStatus)
	assert.Equal(t, "Dr. Silva", history[1].ActorName)
}

func TestHelpRequestNotFoundMapsTo404(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/help-requests/nao-existe", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodPut, "/api/v1/help-requests/nao-existe/status", map[string]interface{}{
		"status": "aceito",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHelpRequestInvalidStatusMapsTo400(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/help-requests", map[string]interface{}{
		"requester_id":      "prof-001",
		"requester_name":    "Ana Costa",
		"professional_id":   "prof-002",
		"professional_name": "Dr. Silva",
		"specialty":         "social",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var created model.HelpRequestModel
	decodeData(t, w, &created)

	w = doJSON(t, router, http.MethodPut, "/api/v1/help-requests/"+created.ID+"/status", map[string]interface{}{
		"status": "aprovado",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHelpRequestRejectsMalformedID(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/help-requests/id%20com%20espacos", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNotFoundUsesAcceptLanguage(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/help-requests/nao-existe", nil)
	req.Header.Set("Accept-Language", "en-US")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Resource not found", resp.Message)
}

func TestAppointmentFlow(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/appointments", map[string]interface{}{
		"person_name":       "Maria Santos",
		"professional_id":   "prof-002",
		"professional_name": "Dr. Silva",
		"service_type":      "juridica",
		"scheduled_at":      "2026-03-10T14:00:00Z",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var created model.AppointmentModel
	decodeData(t, w, &created)
	assert.Equal(t, "agendado", created.Status)

	w = doJSON(t, router, http.MethodPut, "/api/v1/appointments/"+created.ID+"/status", map[string]interface{}{
		"status": "confirmado",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestPublicSettingsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/settings", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var settings model.SiteSettingsModel
	decodeData(t, w, &settings)
	assert.Equal(t, "Comunidade", settings.CommunityName)
}

func TestImportEndpoint(t *testing.T) {
	router := newTestRouter(t)

	payload := `{
		"membros": {
			"-Mk1": {"nome": "João Pereira", "cpf": "111.444.777-35"}
		},
		"assistidos": {},
		"eventos": {},
		"transacoes": {}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/import", bytes.NewReader([]byte(payload)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var result service.ImportSummary
	decodeData(t, w, &result)
	assert.Equal(t, 1, result.Members.Created)

	// 成员已可查询
	list := doJSON(t, router, http.MethodGet, "/api/v1/members", nil)
	require.Equal(t, http.StatusOK, list.Code)
	var members []model.MemberModel
	decodeData(t, list, &members)
	require.Len(t, members, 1)
	assert.Equal(t, "11144477735", members[0].CPF)
}

func TestImportRejectsEmptyBody(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/import", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportEndpoints(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/export/json", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "estatisticas.json")

	w = doJSON(t, router, http.MethodGet, "/api/v1/export/csv", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "estatisticas.csv")
	assert.Contains(t, w.Body.String(), "section,key,value")
}

func TestStatisticsDashboard(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/statistics/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var dashboard service.DashboardStatistics
	decodeData(t, w, &dashboard)
	assert.Equal(t, int64(0), dashboard.OpenHelpRequests)
}

func TestStatisticsByMonthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/help-requests", map[string]interface{}{
		"requester_id":      "prof-001",
		"requester_name":    "Ana Costa",
		"professional_id":   "prof-002",
		"professional_name": "Dr. Silva",
		"specialty":         "psicologica",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/statistics/help-requests/by-month", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var counts []service.CountByMonth
	decodeData(t, w, &counts)
	require.Len(t, counts, 1)
	assert.Equal(t, int64(1), counts[0].Count)
	assert.NotEmpty(t, counts[0].Month)
}

func TestMemberDuplicateCPFConflict(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/members", map[string]interface{}{
		"name": "Maria Santos",
		"cpf":  "111.444.777-35",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/members", map[string]interface{}{
		"name": "Outra Maria",
		"cpf":  "111.444.777-35",
	})
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "CPF")
}

func TestBackupDeleteRejectsSeparatorInFilename(t *testing.T) {
	router := newTestRouter(t)

	// %5C 解码为反斜杠,路径分隔符不允许出现在文件名里
	w := doJSON(t, router, http.MethodDelete, "/api/v1/backups/..%5Cbackups-evil%5Cvictim.sql", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNotificationsRequireIdentity(t *testing.T) {
	router := newTestRouter(t)

	// 无认证中间件时上下文里没有 user_id
	w := doJSON(t, router, http.MethodGet, "/api/v1/notifications", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestRequestIDPropagation(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "req-teste-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "req-teste-123", w.Header().Get("X-Request-ID"))

	// 未提供时生成新的
	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestVisitorEndpoints(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/visitors", map[string]interface{}{
		"name":       "Carlos Lima",
		"phone":      "+55 11 98765-4321",
		"visit_date": "2026-02-01T00:00:00Z",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var visitor model.VisitorModel
	decodeData(t, w, &visitor)
	assert.Equal(t, "novo", visitor.Status)

	w = doJSON(t, router, http.MethodPut, "/api/v1/visitors/"+visitor.ID+"/status", map[string]interface{}{
		"status": "contatado",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/visitors?status=%s", "contatado"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var visitors []model.VisitorModel
	decodeData(t, w, &visitors)
	assert.Len(t, visitors, 1)
}

func TestBackupEndpoints(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/backups", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodGet, "/api/v1/backups", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var backups []service.BackupInfo
	decodeData(t, w, &backups)
	assert.Len(t, backups, 1)
}
