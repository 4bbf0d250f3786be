package service

import (
	"testing"
	"time"

	"github.com/JohnPitter/church-management-sub005/internal/model"
	"github.com/JohnPitter/church-management-sub005/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newNotificationService(t *testing.T) (NotificationService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewNotificationService(
		repository.NewNotificationRepository(db),
		repository.NewUserAccountRepository(db),
		nil,
		nil,
	)
	return svc, db
}

func seedAccount(t *testing.T, db *gorm.DB, professionalID string) *model.UserAccountModel {
	t.Helper()
	account := &model.UserAccountModel{
		ID:             "acc-" + professionalID,
		Name:           "Dr. Silva",
		Email:          professionalID + "@example.com",
		ProfessionalID: professionalID,
		Active:         true,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	require.NoError(t, db.Create(account).Error)
	return account
}

func TestNotifyProfessionalPersistsNotification(t *testing.T) {
	svc, db := newNotificationService(t)
	account := seedAccount(t, db, "prof-002")

	svc.NotifyProfessional("prof-002", "Nova solicitação", "Ana Costa solicitou atendimento")
	// 投递异步执行,等它落库后再断言
	svc.Flush()

	notifications, err := svc.ListForUser(account.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "Nova solicitação", notifications[0].Title)
	assert.False(t, notifications[0].Read)
}

func TestNotifyProfessionalSkipsUnknownAccount(t *testing.T) {
	svc, db := newNotificationService(t)

	// 没有关联账户的专业人员直接跳过,不报错
	svc.NotifyProfessional("prof-sem-conta", "Nova solicitação", "corpo")
	svc.Flush()

	var count int64
	require.NoError(t, db.Model(&model.NotificationModel{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestNotificationMarkRead(t *testing.T) {
	svc, db := newNotificationService(t)
	account := seedAccount(t, db, "prof-002")

	svc.NotifyProfessional("prof-002", "Nova solicitação", "corpo")
	svc.Flush()

	notifications, err := svc.ListForUser(account.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)

	require.NoError(t, svc.MarkRead(notifications[0].ID))

	notifications, err = svc.ListForUser(account.ID)
	require.NoError(t, err)
	assert.True(t, notifications[0].Read)
}

func TestNotificationListOrderedNewestFirst(t *testing.T) {
	svc, db := newNotificationService(t)
	account := seedAccount(t, db, "prof-002")

	older := &model.NotificationModel{
		ID:        "n-1",
		UserID:    account.ID,
		Title:     "antiga",
		CreatedAt: time.Now().Add(-time.Hour),
	}
	newer := &model.NotificationModel{
		ID:        "n-2",
		UserID:    account.ID,
		Title:     "recente",
		CreatedAt: time.Now(),
	}
	require.NoError(t, db.Create(older).Error)
	require.NoError(t, db.Create(newer).Error)

	notifications, err := svc.ListForUser(account.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 2)
	assert.Equal(t, "recente", notifications[0].Title)
}
