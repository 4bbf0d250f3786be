package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// BackupScheduler 备份调度器
// 每日执行全量备份并清理过期文件
type BackupScheduler struct {
	backupService *BackupService
	config        *BackupScheduleConfig
	logger        *logrus.Logger
	stopChan      chan struct{}
}

// BackupScheduleConfig 备份计划配置
type BackupScheduleConfig struct {
	Enabled       bool          // 是否启用自动备份
	Interval      time.Duration // 备份间隔
	RetentionDays int           // 备份保留天数
}

// NewBackupScheduler 创建备份调度器
func NewBackupScheduler(backupService *BackupService, config *BackupScheduleConfig, logger *logrus.Logger) *BackupScheduler {
	if config == nil {
		config = &BackupScheduleConfig{
			Enabled:       true,
			Interval:      24 * time.Hour,
			RetentionDays: 30,
		}
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &BackupScheduler{
		backupService: backupService,
		config:        config,
		logger:        logger,
		stopChan:      make(chan struct{}),
	}
}

// Start 启动备份调度器
func (s *BackupScheduler) Start(ctx context.Context) error {
	if s.config.Enabled {
		go s.scheduleBackup(ctx)
	}

	go s.scheduleCleanup(ctx)

	return nil
}

// Stop 停止备份调度器
func (s *BackupScheduler) Stop() {
	close(s.stopChan)
}

// Config 获取备份配置
func (s *BackupScheduler) Config() *BackupScheduleConfig {
	return s.config
}

// scheduleBackup 调度备份
func (s *BackupScheduler) scheduleBackup(ctx context.Context) {
	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	// 立即执行一次
	s.performBackup(ctx)

	for {
		select {
		case <-ticker.C:
			s.performBackup(ctx)
		case <-s.stopChan:
			return
		case <-ctx.Done():
			return
		}
	}
}

// scheduleCleanup 调度备份清理
func (s *BackupScheduler) scheduleCleanup(ctx context.Context) {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.CleanupOldBackups(ctx)
		case <-s.stopChan:
			return
		case <-ctx.Done():
			return
		}
	}
}

// performBackup 执行备份
func (s *BackupScheduler) performBackup(ctx context.Context) {
	backupPath, err := s.backupService.CreateBackup(ctx)
	if err != nil {
		s.logger.WithError(err).Error("scheduled backup failed")
		return
	}

	s.logger.WithField("path", backupPath).Info("scheduled backup created")
}

// CleanupOldBackups 清理过期备份
func (s *BackupScheduler) CleanupOldBackups(ctx context.Context) {
	backups, err := s.backupService.ListBackups(ctx)
	if err != nil {
		s.logger.WithError(err).Error("failed to list backups for cleanup")
		return
	}

	now := time.Now()
	retention := time.Duration(s.config.RetentionDays) * 24 * time.Hour

	for _, backup := range backups {
		if now.Sub(backup.CreatedAt) <= retention {
			continue
		}
		if err := s.backupService.DeleteBackup(ctx, backup.Filename); err != nil {
			s.logger.WithError(err).WithField("filename", backup.Filename).Warn("failed to delete old backup")
		} else {
			s.logger.WithField("filename", backup.Filename).Info("deleted old backup")
		}
	}
}
