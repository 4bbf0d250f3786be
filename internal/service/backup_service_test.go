package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBackupService(t *testing.T) *BackupService {
	t.Helper()
	return NewBackupService(newTestDB(t), t.TempDir(), nil)
}

func TestBackupCreateAndList(t *testing.T) {
	svc := newBackupService(t)

	path, err := svc.CreateBackup(context.Background())
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".tar.gz"))
	assert.Equal(t, svc.BackupDir(), filepath.Dir(path))

	backups, err := svc.ListBackups(context.Background())
	require.NoError(t, err)
	require.Len(t, backups, 1)
	assert.Equal(t, filepath.Base(path), backups[0].Filename)
	assert.Equal(t, "sqlite", backups[0].DatabaseType)
	assert.Greater(t, backups[0].Size, int64(0))
}

func TestBackupDelete(t *testing.T) {
	svc := newBackupService(t)

	path, err := svc.CreateBackup(context.Background())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBackup(context.Background(), filepath.Base(path)))

	backups, err := svc.ListBackups(context.Background())
	require.NoError(t, err)
	assert.Empty(t, backups)
}

func TestBackupDeleteRejectsPathTraversal(t *testing.T) {
	svc := newBackupService(t)

	err := svc.DeleteBackup(context.Background(), "../../etc/passwd")
	require.Error(t, err)
}

func TestBackupDeleteRejectsSiblingDirectory(t *testing.T) {
	base := t.TempDir()
	backupDir := filepath.Join(base, "backups")
	require.NoError(t, os.MkdirAll(backupDir, 0755))

	// 与备份目录共享路径前缀的兄弟目录
	evilDir := filepath.Join(base, "backups-evil")
	require.NoError(t, os.MkdirAll(evilDir, 0755))
	victim := filepath.Join(evilDir, "victim.sql")
	require.NoError(t, os.WriteFile(victim, []byte("-- dump"), 0644))

	svc := NewBackupService(newTestDB(t), backupDir, nil)

	err := svc.DeleteBackup(context.Background(), "../backups-evil/victim.sql")
	require.Error(t, err)
	assert.FileExists(t, victim)
}
