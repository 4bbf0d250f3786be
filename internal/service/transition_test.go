package service

import (
	"context"
	"testing"

	"github.com/JohnPitter/church-management-sub005/internal/model"
	"github.com/JohnPitter/church-management-sub005/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB 创建内存 SQLite 测试数据库
func newTestDB(t *testing.T) *gorm.DB {
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

// newHelpRequestService 构造测试用求助请求服务
func newHelpRequestService(t *testing.T) (HelpRequestService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return newHelpRequestServiceOn(db), db
}

func newHelpRequestServiceOn(db *gorm.DB) HelpRequestService {
	return NewHelpRequestService(
		db,
		repository.NewHelpRequestRepository(db),
		repository.NewStatusHistoryRepository(db),
		nil,
		nil,
	)
}

func createTestHelpRequest(t *testing.T, svc HelpRequestService) *model.HelpRequestModel {
	t.Helper()
	request, err := svc.Create(context.Background(), &CreateHelpRequestRequest{
		RequesterID:      "prof-001",
		RequesterName:    "Ana Costa",
		ProfessionalID:   "prof-002",
		ProfessionalName: "Dr. Silva",
		Specialty:        "psicologica",
		Description:      "encaminhamento de caso",
	})
	require.NoError(t, err)
	return request
}

func TestHelpRequestCreateStartsPendente(t *testing.T) {
	svc, _ := newHelpRequestService(t)

	request := createTestHelpRequest(t, svc)
	assert.Equal(t, "pendente", request.Status)

	// 创建即写入初始历史条目
	history, err := svc.GetHistory(request.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "", history[0].FromStatus)
	assert.Equal(t, "pendente", history[0].ToStatus)
}

func TestHelpRequestReadYourWrite(t *testing.T) {
	svc, _ := newHelpRequestService(t)

	created := createTestHelpRequest(t, svc)

	got, err := svc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Ana Costa", got.RequesterName)
	assert.Equal(t, "psicologica", got.Specialty)
	assert.Equal(t, "pendente", got.Status)
}

func TestHelpRequestTransitionAppendsHistory(t *testing.T) {
	svc, _ := newHelpRequestService(t)
	request := createTestHelpRequest(t, svc)

	transitions := []string{"em_analise", "aceito", "concluido"}
	for _, status := range transitions {
		_, err := svc.Transition(context.Background(), request.ID, &TransitionRequest{
			Status:    status,
			ActorName: "Dr. Silva",
		})
		require.NoError(t, err)
	}

	// 每次流转追加一条历史,加上初始条目
	history, err := svc.GetHistory(request.ID)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(history), len(transitions))
	assert.Len(t, history, len(transitions)+1)

	// 最后一条历史的目标状态等于记录当前状态
	got, err := svc.Get(request.ID)
	require.NoError(t, err)
	last := history[len(history)-1]
	assert.Equal(t, got.Status, last.ToStatus)
	assert.Equal(t, "concluido", got.Status)
}

func TestHelpRequestAcceptRecordsSingleEntry(t *testing.T) {
	svc, _ := newHelpRequestService(t)
	request := createTestHelpRequest(t, svc)

	_, err := svc.Transition(context.Background(), request.ID, &TransitionRequest{
		Status:    "aceito",
		ActorName: "Dr. Silva",
	})
	require.NoError(t, err)

	history, err := svc.GetHistory(request.ID)
	require.NoError(t, err)

	var matches []*model.StatusHistoryModel
	for _, h := range history {
		if h.FromStatus == "pendente" && h.ToStatus == "aceito" {
			matches = append(matches, h)
		}
	}
	require.Len(t, matches, 1)
	assert.Equal(t, "Dr. Silva", matches[0].ActorName)
}

func TestHelpRequestTransitionUnknownRecordWritesNothing(t *testing.T) {
	svc, db := newHelpRequestService(t)

	_, err := svc.Transition(context.Background(), "nao-existe", &TransitionRequest{
		Status: "aceito",
	})
	require.ErrorIs(t, err, ErrNotFound)

	// 失败的流转不产生任何写入
	var count int64
	require.NoError(t, db.Model(&model.StatusHistoryModel{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestHelpRequestTransitionRejectsUnknownStatus(t *testing.T) {
	svc, _ := newHelpRequestService(t)
	request := createTestHelpRequest(t, svc)

	_, err := svc.Transition(context.Background(), request.ID, &TransitionRequest{
		Status: "aprovado",
	})
	require.ErrorIs(t, err, ErrInvalidStatus)

	// 记录状态保持不变
	got, err := svc.Get(request.ID)
	require.NoError(t, err)
	assert.Equal(t, "pendente", got.Status)
}

func TestHelpRequestGetHistoryUnknownRecord(t *testing.T) {
	svc, _ := newHelpRequestService(t)

	_, err := svc.GetHistory("nao-existe")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestHelpRequestDeleteRemovesHistory(t *testing.T) {
	svc, db := newHelpRequestService(t)
	request := createTestHelpRequest(t, svc)

	_, err := svc.Transition(context.Background(), request.ID, &TransitionRequest{Status: "cancelado"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), request.ID))

	_, err = svc.Get(request.ID)
	require.ErrorIs(t, err, ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&model.StatusHistoryModel{}).
		Where("record_type = ? AND record_id = ?", "help_request", request.ID).
		Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestHelpRequestListByFilter(t *testing.T) {
	svc, _ := newHelpRequestService(t)
	request := createTestHelpRequest(t, svc)

	_, err := svc.Transition(context.Background(), request.ID, &TransitionRequest{Status: "aceito"})
	require.NoError(t, err)

	status := "aceito"
	requests, err := svc.List(&repository.HelpRequestFilter{Status: &status})
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, request.ID, requests[0].ID)

	other := "pendente"
	requests, err = svc.List(&repository.HelpRequestFilter{Status: &other})
	require.NoError(t, err)
	assert.Empty(t, requests)
}

func TestHelpRequestListRejectsBadSortField(t *testing.T) {
	svc, _ := newHelpRequestService(t)
	createTestHelpRequest(t, svc)

	_, err := svc.List(&repository.HelpRequestFilter{SortBy: "status; DROP TABLE help_requests"})
	require.Error(t, err)
}
