package service

import (
	"context"
	"testing"

	"github.com/JohnPitter/church-management-sub005/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSettingsService(t *testing.T) SettingsService {
	t.Helper()
	db := newTestDB(t)
	return NewSettingsService(repository.NewSettingsRepository(db), nil)
}

func TestSettingsGetReturnsDefaultWhenUnset(t *testing.T) {
	svc := newSettingsService(t)

	settings, err := svc.Get()
	require.NoError(t, err)
	require.NotNil(t, settings)
	assert.Equal(t, "Comunidade", settings.CommunityName)
}

func TestSettingsUpdateUpserts(t *testing.T) {
	svc := newSettingsService(t)

	updated, err := svc.Update(context.Background(), &UpdateSettingsRequest{
		CommunityName: "Comunidade Esperança",
		ThemeColor:    "#1a5fb4",
		ServiceTimes:  "dom 10h, qua 19h30",
	})
	require.NoError(t, err)
	assert.Equal(t, "Comunidade Esperança", updated.CommunityName)

	got, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, "Comunidade Esperança", got.CommunityName)
	assert.Equal(t, "#1a5fb4", got.ThemeColor)
}

func TestSettingsUpdateLastWriteWins(t *testing.T) {
	svc := newSettingsService(t)

	_, err := svc.Update(context.Background(), &UpdateSettingsRequest{CommunityName: "Primeira"})
	require.NoError(t, err)
	_, err = svc.Update(context.Background(), &UpdateSettingsRequest{CommunityName: "Segunda", ContactEmail: "contato@example.com"})
	require.NoError(t, err)

	got, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, "Segunda", got.CommunityName)
	assert.Equal(t, "contato@example.com", got.ContactEmail)
}
