package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/JohnPitter/church-management-sub005/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newHistoryTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.StatusHistoryModel{}))
	return db
}

func TestStatusHistoryOrderedAscending(t *testing.T) {
	db := newHistoryTestDB(t)
	repo := NewStatusHistoryRepository(db)

	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	// 倒序写入,读取仍按时间升序
	for i := 2; i >= 0; i-- {
		require.NoError(t, repo.Save(&model.StatusHistoryModel{
			ID:         fmt.Sprintf("h-%d", i),
			RecordType: "help_request",
			RecordID:   "hr-1",
			ToStatus:   fmt.Sprintf("status-%d", i),
			Actor:      "prof-002",
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		}))
	}

	histories, err := repo.FindByRecord("help_request", "hr-1")
	require.NoError(t, err)
	require.Len(t, histories, 3)
	for i, h := range histories {
		assert.Equal(t, fmt.Sprintf("status-%d", i), h.ToStatus)
	}
}

func TestStatusHistoryScopedByRecord(t *testing.T) {
	db := newHistoryTestDB(t)
	repo := NewStatusHistoryRepository(db)

	require.NoError(t, repo.Save(&model.StatusHistoryModel{
		ID: "h-1", RecordType: "help_request", RecordID: "hr-1",
		ToStatus: "pendente", Actor: "prof-001", CreatedAt: time.Now(),
	}))
	require.NoError(t, repo.Save(&model.StatusHistoryModel{
		ID: "h-2", RecordType: "appointment", RecordID: "hr-1",
		ToStatus: "agendado", Actor: "prof-001", CreatedAt: time.Now(),
	}))

	histories, err := repo.FindByRecord("help_request", "hr-1")
	require.NoError(t, err)
	require.Len(t, histories, 1)
	assert.Equal(t, "pendente", histories[0].ToStatus)

	count, err := repo.CountByRecord("appointment", "hr-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = repo.CountByRecord("appointment", "desconhecido")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
