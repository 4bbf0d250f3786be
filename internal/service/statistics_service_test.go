package service

import (
	"context"
	"testing"
	"time"

	"github.com/JohnPitter/church-management-sub005/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedStatisticsData(t *testing.T, db *gorm.DB) {
	t.Helper()
	now := time.Now()

	require.NoError(t, db.Create(&model.MemberModel{
		ID: "m-1", Name: "João Pereira", Active: true, CreatedAt: now, UpdatedAt: now,
	}).Error)
	require.NoError(t, db.Create(&model.MemberModel{
		ID: "m-2", Name: "Maria Santos", Active: false, CreatedAt: now, UpdatedAt: now,
	}).Error)
	require.NoError(t, db.Create(&model.TransactionModel{
		ID: "t-1", Description: "dízimo", Direction: "entrada", AmountCents: 15050,
		OccurredAt: now, CreatedAt: now, UpdatedAt: now,
	}).Error)
	require.NoError(t, db.Create(&model.TransactionModel{
		ID: "t-2", Description: "aluguel", Direction: "saida", AmountCents: 120000,
		OccurredAt: now, CreatedAt: now, UpdatedAt: now,
	}).Error)
}

func TestDashboardStatistics(t *testing.T) {
	db := newTestDB(t)
	seedStatisticsData(t, db)

	helpSvc := newHelpRequestServiceOn(db)
	request := createTestHelpRequest(t, helpSvc)
	_, err := helpSvc.Transition(context.Background(), request.ID, &TransitionRequest{Status: "aceito"})
	require.NoError(t, err)

	stats, err := NewStatisticsService(db).GetDashboard()
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalMembers)
	assert.Equal(t, int64(1), stats.ActiveMembers)
	// aceito 仍是未完结状态
	assert.Equal(t, int64(1), stats.OpenHelpRequests)
	assert.Equal(t, int64(15050), stats.IncomeCents)
	assert.Equal(t, int64(120000), stats.ExpenseCents)
}

func TestHelpRequestsByMonthGrouping(t *testing.T) {
	db := newTestDB(t)

	older := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	for i, created := range []time.Time{older, older, older.AddDate(0, 1, 5)} {
		require.NoError(t, db.Create(&model.HelpRequestModel{
			ID:               "hr-" + string(rune('a'+i)),
			RequesterID:      "prof-001",
			RequesterName:    "Ana Costa",
			ProfessionalID:   "prof-002",
			ProfessionalName: "Dr. Silva",
			Specialty:        "psicologica",
			Status:           string(model.StatusPendente),
			CreatedAt:        created,
			UpdatedAt:        created,
		}).Error)
	}

	counts, err := NewStatisticsService(db).GetHelpRequestsByMonth()
	require.NoError(t, err)
	require.Len(t, counts, 2)

	// 按月份升序返回
	assert.Equal(t, "2026-03", counts[0].Month)
	assert.Equal(t, int64(2), counts[0].Count)
	assert.Equal(t, "2026-04", counts[1].Month)
	assert.Equal(t, int64(1), counts[1].Count)
}

func TestHelpRequestsByStatusGrouping(t *testing.T) {
	db := newTestDB(t)
	helpSvc := newHelpRequestServiceOn(db)

	first := createTestHelpRequest(t, helpSvc)
	createTestHelpRequest(t, helpSvc)
	_, err := helpSvc.Transition(context.Background(), first.ID, &TransitionRequest{Status: "recusado"})
	require.NoError(t, err)

	counts, err := NewStatisticsService(db).GetHelpRequestsByStatus()
	require.NoError(t, err)
	require.Len(t, counts, 2)

	byStatus := map[string]int64{}
	for _, c := range counts {
		byStatus[c.Status] = c.Count
	}
	assert.Equal(t, int64(1), byStatus["pendente"])
	assert.Equal(t, int64(1), byStatus["recusado"])
}
