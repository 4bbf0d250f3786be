package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	require.NotNil(t, cfg)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "church", cfg.Database.DBName)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.Tracing.Enabled)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
env: production
server:
  port: 9090
database:
  dbname: igreja
backup:
  dir: /var/backups/igreja
  retention_days: 14
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.True(t, IsProduction(cfg))
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "igreja", cfg.Database.DBName)
	assert.Equal(t, 14, cfg.Backup.RetentionDays)
	// 未覆盖的键保留默认值
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := Load("/nao/existe/config.yaml")
	require.Error(t, err)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("APP_SERVER_PORT", "7070")
	t.Setenv("APP_DATABASE_HOST", "db.internal")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
}

func TestIsProductionNilSafe(t *testing.T) {
	assert.False(t, IsProduction(nil))
}
