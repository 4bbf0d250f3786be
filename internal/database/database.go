package database

import (
	"context"
	"fmt"
	"time"

	"github.com/JohnPitter/church-management-sub005/internal/config"
	"github.com/JohnPitter/church-management-sub005/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// PoolConfig 连接池配置
type PoolConfig struct {
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime int // 秒
	ConnMaxIdleTime int // 秒
}

// BuildDSN 构建 PostgreSQL DSN
func BuildDSN(cfg config.DatabaseConfig) string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)
}

// GetPoolConfig 获取连接池配置
func GetPoolConfig() *PoolConfig {
	return &PoolConfig{
		MaxIdleConns:    10,
		MaxOpenConns:    100,
		ConnMaxLifetime: 3600, // 1 小时
		ConnMaxIdleTime: 600,  // 10 分钟
	}
}

// GetProductionPoolConfig 获取生产环境连接池配置
func GetProductionPoolConfig() *PoolConfig {
	return &PoolConfig{
		MaxIdleConns:    20,
		MaxOpenConns:    200,
		ConnMaxLifetime: 3600,
		ConnMaxIdleTime: 300,
	}
}

// Connect 连接数据库
func Connect(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := BuildDSN(cfg)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	// 配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// 从配置中读取连接池参数,如果没有配置则使用默认值
	poolConfig := resolvePoolConfig(cfg, GetPoolConfig())

	sqlDB.SetMaxIdleConns(poolConfig.MaxIdleConns)
	sqlDB.SetMaxOpenConns(poolConfig.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Duration(poolConfig.ConnMaxLifetime) * time.Second)
	sqlDB.SetConnMaxIdleTime(time.Duration(poolConfig.ConnMaxIdleTime) * time.Second)

	return db, nil
}

// resolvePoolConfig 合并配置与默认连接池参数
func resolvePoolConfig(cfg config.DatabaseConfig, defaults *PoolConfig) *PoolConfig {
	if cfg.MaxIdleConns <= 0 && cfg.MaxOpenConns <= 0 {
		return defaults
	}

	poolConfig := &PoolConfig{
		MaxIdleConns:    cfg.MaxIdleConns,
		MaxOpenConns:    cfg.MaxOpenConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.ConnMaxIdleTime,
	}
	if poolConfig.MaxIdleConns == 0 {
		poolConfig.MaxIdleConns = defaults.MaxIdleConns
	}
	if poolConfig.MaxOpenConns == 0 {
		poolConfig.MaxOpenConns = defaults.MaxOpenConns
	}
	if poolConfig.ConnMaxLifetime == 0 {
		poolConfig.ConnMaxLifetime = defaults.ConnMaxLifetime
	}
	if poolConfig.ConnMaxIdleTime == 0 {
		poolConfig.ConnMaxIdleTime = defaults.ConnMaxIdleTime
	}
	return poolConfig
}

// Migrate 执行数据库迁移
func Migrate(db *gorm.DB) error {
	// 检测数据库类型
	dialector := db.Dialector.Name()

	// SQLite 不支持 jsonb,需要手动创建审计日志表
	// GORM SQLite dialector 的名称可能是 "sqlite" 或 "sqlite3"
	if dialector == "sqlite" || dialector == "sqlite3" {
		if err := createSQLiteAuditTable(db); err != nil {
			return fmt.Errorf("failed to create SQLite audit table: %w", err)
		}
		if err := db.AutoMigrate(sqliteModels()...); err != nil {
			return fmt.Errorf("failed to auto migrate: %w", err)
		}
	} else {
		if err := db.AutoMigrate(allModels()...); err != nil {
			return fmt.Errorf("failed to auto migrate: %w", err)
		}
	}

	// 创建索引
	if err := CreateIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	return nil
}

// allModels 全部数据模型
func allModels() []interface{} {
	return []interface{}{
		&model.MemberModel{},
		&model.AssistedModel{},
		&model.HelpRequestModel{},
		&model.StatusHistoryModel{},
		&model.AppointmentModel{},
		&model.VisitorModel{},
		&model.ProjectModel{},
		&model.VolunteerModel{},
		&model.LeaderModel{},
		&model.EventModel{},
		&model.TransactionModel{},
		&model.SiteSettingsModel{},
		&model.UserAccountModel{},
		&model.NotificationModel{},
		&model.AuditLogModel{},
	}
}

// sqliteModels SQLite 下由 AutoMigrate 处理的模型(审计日志表手动建)
func sqliteModels() []interface{} {
	models := make([]interface{}, 0)
	for _, m := range allModels() {
		if _, ok := m.(*model.AuditLogModel); ok {
			continue
		}
		models = append(models, m)
	}
	return models
}

// createSQLiteAuditTable 为 SQLite 手动创建审计日志表(使用 TEXT 替代 jsonb)
func createSQLiteAuditTable(db *gorm.DB) error {
	return db.Exec(`
		CREATE TABLE IF NOT EXISTS audit_logs (
			id VARCHAR(64) PRIMARY KEY,
			user_id VARCHAR(64) NOT NULL,
			action VARCHAR(64) NOT NULL,
			resource_type VARCHAR(32) NOT NULL,
			resource_id VARCHAR(64) NOT NULL,
			request_id VARCHAR(64),
			ip VARCHAR(45),
			user_agent TEXT,
			details TEXT,
			created_at DATETIME NOT NULL
		)
	`).Error
}

// CreateIndexes 创建数据库索引
func CreateIndexes(db *gorm.DB) error {
	indexes := []struct {
		name string
		stmt string
	}{
		{"idx_help_requests_status_specialty", "CREATE INDEX IF NOT EXISTS idx_help_requests_status_specialty ON help_requests(status, specialty)"},
		{"idx_help_requests_professional", "CREATE INDEX IF NOT EXISTS idx_help_requests_professional ON help_requests(professional_id)"},
		{"idx_history_record", "CREATE INDEX IF NOT EXISTS idx_history_record ON status_history(record_type, record_id)"},
		{"idx_history_created_at", "CREATE INDEX IF NOT EXISTS idx_history_created_at ON status_history(created_at)"},
		{"idx_appointments_status_service", "CREATE INDEX IF NOT EXISTS idx_appointments_status_service ON appointments(status, service_type)"},
		{"idx_appointments_scheduled_at", "CREATE INDEX IF NOT EXISTS idx_appointments_scheduled_at ON appointments(scheduled_at)"},
		{"idx_members_name", "CREATE INDEX IF NOT EXISTS idx_members_name ON members(name)"},
		{"idx_visitors_visit_date", "CREATE INDEX IF NOT EXISTS idx_visitors_visit_date ON visitors(visit_date)"},
		{"idx_volunteers_project", "CREATE INDEX IF NOT EXISTS idx_volunteers_project ON volunteers(project_id)"},
		{"idx_notifications_user_read", "CREATE INDEX IF NOT EXISTS idx_notifications_user_read ON notifications(user_id, read)"},
		{"idx_audit_resource", "CREATE INDEX IF NOT EXISTS idx_audit_resource ON audit_logs(resource_type, resource_id)"},
		{"idx_audit_user_id", "CREATE INDEX IF NOT EXISTS idx_audit_user_id ON audit_logs(user_id)"},
		{"idx_audit_created_at", "CREATE INDEX IF NOT EXISTS idx_audit_created_at ON audit_logs(created_at)"},
		{"idx_transactions_occurred_at", "CREATE INDEX IF NOT EXISTS idx_transactions_occurred_at ON transactions(occurred_at)"},
	}

	for _, idx := range indexes {
		if err := db.Exec(idx.stmt).Error; err != nil {
			return fmt.Errorf("failed to create %s: %w", idx.name, err)
		}
	}

	// PostgreSQL 特定的 GIN 索引
	if db.Dialector.Name() == "postgres" {
		if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_audit_details_gin ON audit_logs USING GIN (details)").Error; err != nil {
			return fmt.Errorf("failed to create idx_audit_details_gin: %w", err)
		}
	}

	return nil
}

// ConnectWithRetry 带重试的数据库连接
func ConnectWithRetry(cfg config.DatabaseConfig, maxRetries int, retryInterval time.Duration) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	for i := 0; i < maxRetries; i++ {
		db, err = Connect(cfg)
		if err == nil {
			return db, nil
		}

		// 如果不是最后一次重试,等待后重试
		if i < maxRetries-1 {
			time.Sleep(retryInterval)
			retryInterval *= 2 // 指数退避
		}
	}

	return nil, fmt.Errorf("failed to connect database after %d retries: %w", maxRetries, err)
}

// CheckHealth 检查数据库连接健康状态
func CheckHealth(db *gorm.DB) bool {
	if db == nil {
		return false
	}

	sqlDB, err := db.DB()
	if err != nil {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return false
	}

	return true
}

// Reconnect 重新连接数据库
func Reconnect(cfg config.DatabaseConfig, oldDB *gorm.DB) (*gorm.DB, error) {
	// 关闭旧连接
	if oldDB != nil {
		if sqlDB, err := oldDB.DB(); err == nil {
			sqlDB.Close()
		}
	}

	return Connect(cfg)
}
