package service

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// BackupService 数据库备份服务
type BackupService struct {
	db          *gorm.DB
	backupDir   string
	compression bool
	logger      *logrus.Logger
}

// BackupInfo 备份信息
type BackupInfo struct {
	Filename     string    `json:"filename"`
	Path         string    `json:"path"`
	Size         int64     `json:"size"`
	CreatedAt    time.Time `json:"created_at"`
	DatabaseType string    `json:"database_type"`
}

// NewBackupService 创建备份服务
func NewBackupService(db *gorm.DB, backupDir string, logger *logrus.Logger) *BackupService {
	// 确保备份目录存在
	if err := os.MkdirAll(backupDir, 0755); err != nil {
		// 如果创建失败，使用临时目录
		backupDir = os.TempDir()
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &BackupService{
		db:          db,
		backupDir:   backupDir,
		compression: true, // 默认启用压缩
		logger:      logger,
	}
}

// CreateBackup 创建备份
func (s *BackupService) CreateBackup(ctx context.Context) (string, error) {
	// 获取数据库类型
	dialector := s.db.Dialector.Name()

	// 生成备份文件名
	timestamp := time.Now().Format("20060102_150405")
	var ext string
	if s.compression {
		ext = ".tar.gz"
	} else {
		ext = ".sql"
	}
	filename := fmt.Sprintf("backup_%s_%s%s", dialector, timestamp, ext)
	backupPath := filepath.Join(s.backupDir, filename)

	switch dialector {
	case "postgres", "sqlite", "sqlite3":
		return s.exportSQLBackup(ctx, backupPath)
	default:
		return "", fmt.Errorf("unsupported database type: %s", dialector)
	}
}

// exportSQLBackup 导出 SQL 备份
// 先在内存生成完整转储,tar 头需要准确的文件大小
func (s *BackupService) exportSQLBackup(ctx context.Context, backupPath string) (string, error) {
	var dump bytes.Buffer
	if err := s.exportTables(ctx, &dump); err != nil {
		return "", fmt.Errorf("failed to export tables: %w", err)
	}

	file, err := os.Create(backupPath)
	if err != nil {
		return "", fmt.Errorf("failed to create backup file: %w", err)
	}
	defer file.Close()

	if s.compression {
		gzWriter := gzip.NewWriter(file)
		defer gzWriter.Close()

		tarWriter := tar.NewWriter(gzWriter)
		defer tarWriter.Close()

		sqlFilename := strings.TrimSuffix(filepath.Base(backupPath), ".tar.gz") + ".sql"
		header := &tar.Header{
			Name:    sqlFilename,
			Mode:    0644,
			Size:    int64(dump.Len()),
			ModTime: time.Now(),
		}
		if err := tarWriter.WriteHeader(header); err != nil {
			return "", fmt.Errorf("failed to write tar header: %w", err)
		}
		if _, err := tarWriter.Write(dump.Bytes()); err != nil {
			return "", fmt.Errorf("failed to write backup: %w", err)
		}
	} else {
		if _, err := file.Write(dump.Bytes()); err != nil {
			return "", fmt.Errorf("failed to write backup: %w", err)
		}
	}

	s.logger.WithField("path", backupPath).Info("backup created")
	return backupPath, nil
}

// exportTables 导出所有表的数据
func (s *BackupService) exportTables(ctx context.Context, writer io.Writer) error {
	var tables []string
	dialector := s.db.Dialector.Name()

	if dialector == "sqlite" || dialector == "sqlite3" {
		if err := s.db.Raw("SELECT name FROM sqlite_master WHERE type='table' AND name NOT LIKE 'sqlite_%' ORDER BY name").Scan(&tables).Error; err != nil {
			return fmt.Errorf("failed to get table names: %w", err)
		}
	} else if dialector == "postgres" {
		if err := s.db.Raw("SELECT tablename FROM pg_tables WHERE schemaname='public' ORDER BY tablename").Scan(&tables).Error; err != nil {
			return fmt.Errorf("failed to get table names: %w", err)
		}
	} else {
		return fmt.Errorf("unsupported database type: %s", dialector)
	}

	for _, table := range tables {
		if err := s.exportTable(ctx, writer, table); err != nil {
			return fmt.Errorf("failed to export table %s: %w", table, err)
		}
	}

	return nil
}

// exportTable 导出单个表的结构
// 生产环境恢复应使用 pg_dump / sqlite3 .dump 生成的完整转储
func (s *BackupService) exportTable(ctx context.Context, writer io.Writer, tableName string) error {
	_, err := fmt.Fprintf(writer, "-- Table: %s\n", tableName)
	if err != nil {
		return err
	}

	dialector := s.db.Dialector.Name()
	var createTableSQL string

	if dialector == "sqlite" || dialector == "sqlite3" {
		if err := s.db.Raw("SELECT sql FROM sqlite_master WHERE type='table' AND name=?", tableName).Scan(&createTableSQL).Error; err != nil {
			return fmt.Errorf("failed to get table schema: %w", err)
		}
	} else {
		createTableSQL = fmt.Sprintf("-- CREATE TABLE %s (...);", tableName)
	}

	_, err = fmt.Fprintf(writer, "%s\n\n", createTableSQL)
	return err
}

// RestoreBackup 恢复备份
func (s *BackupService) RestoreBackup(ctx context.Context, backupPath string) error {
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return fmt.Errorf("backup file not found: %s", backupPath)
	}

	file, err := os.Open(backupPath)
	if err != nil {
		return fmt.Errorf("failed to open backup file: %w", err)
	}
	defer file.Close()

	var reader io.Reader = file

	// 如果是压缩文件，解压
	if filepath.Ext(backupPath) == ".gz" {
		gzReader, err := gzip.NewReader(file)
		if err != nil {
			return fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzReader.Close()

		tarReader := tar.NewReader(gzReader)

		// 读取 tar 文件中的 SQL 文件
		for {
			header, err := tarReader.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				return fmt.Errorf("failed to read tar: %w", err)
			}

			if filepath.Ext(header.Name) == ".sql" {
				reader = tarReader
				break
			}
		}
	}

	sqlBytes, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("failed to read SQL: %w", err)
	}

	if err := s.db.Exec(string(sqlBytes)).Error; err != nil {
		return fmt.Errorf("failed to restore database: %w", err)
	}

	s.logger.WithField("path", backupPath).Info("backup restored")
	return nil
}

// ListBackups 列出所有备份
func (s *BackupService) ListBackups(ctx context.Context) ([]BackupInfo, error) {
	var backups []BackupInfo

	entries, err := os.ReadDir(s.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if !isBackupFile(entry.Name()) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		backups = append(backups, BackupInfo{
			Filename:     entry.Name(),
			Path:         filepath.Join(s.backupDir, entry.Name()),
			Size:         info.Size(),
			CreatedAt:    info.ModTime(),
			DatabaseType: detectDatabaseType(entry.Name()),
		})
	}

	return backups, nil
}

// BackupDir 获取备份目录
func (s *BackupService) BackupDir() string {
	return s.backupDir
}

// DeleteBackup 删除备份
func (s *BackupService) DeleteBackup(ctx context.Context, filename string) error {
	backupPath := filepath.Join(s.backupDir, filename)

	// 安全检查：确保文件在备份目录内
	absBackupDir, err := filepath.Abs(s.backupDir)
	if err != nil {
		return fmt.Errorf("failed to get absolute backup directory: %w", err)
	}

	absBackupPath, err := filepath.Abs(backupPath)
	if err != nil {
		return fmt.Errorf("failed to get absolute backup path: %w", err)
	}

	// 备份目录是平坦的:解析后的路径必须直接位于备份目录内,
	// 前缀比较会放过共享前缀的兄弟目录(如 backups-evil)
	if filepath.Dir(absBackupPath) != absBackupDir {
		return fmt.Errorf("invalid backup path: %s", filename)
	}

	if err := os.Remove(backupPath); err != nil {
		return fmt.Errorf("failed to delete backup: %w", err)
	}

	return nil
}

// isBackupFile 检查是否是备份文件
func isBackupFile(filename string) bool {
	// 检查 .tar.gz 扩展名（需要先检查，因为 filepath.Ext 只返回最后一个扩展名）
	if strings.HasSuffix(filename, ".tar.gz") {
		return true
	}
	ext := filepath.Ext(filename)
	return ext == ".sql" || ext == ".gz" || strings.HasPrefix(filename, "backup_")
}

// detectDatabaseType 检测数据库类型
func detectDatabaseType(filename string) string {
	if strings.Contains(filename, "postgres") {
		return "postgres"
	}
	if strings.Contains(filename, "sqlite") {
		return "sqlite"
	}
	return "unknown"
}
