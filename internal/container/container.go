package container

import (
	"fmt"
	"time"

	"github.com/JohnPitter/church-management-sub005/internal/api"
	"github.com/JohnPitter/church-management-sub005/internal/auth"
	"github.com/JohnPitter/church-management-sub005/internal/config"
	"github.com/JohnPitter/church-management-sub005/internal/database"
	"github.com/JohnPitter/church-management-sub005/internal/repository"
	"github.com/JohnPitter/church-management-sub005/internal/service"
	"github.com/JohnPitter/church-management-sub005/internal/websocket"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Container 依赖注入容器
// 管理所有应用依赖,包括数据库、服务、客户端等
type Container struct {
	cfg               *config.Config
	db                *gorm.DB
	logger            *logrus.Logger
	hub               *websocket.Hub
	fgaClient         *auth.OpenFGAClient
	keycloakValidator *auth.KeycloakTokenValidator

	auditLogSvc     service.AuditLogService
	notificationSvc service.NotificationService
	helpRequestSvc  service.HelpRequestService
	appointmentSvc  service.AppointmentService
	memberSvc       service.MemberService
	directorySvc    service.DirectoryService
	settingsSvc     service.SettingsService
	importSvc       service.ImportService
	statisticsSvc   service.StatisticsService
	exportSvc       service.ExportService
	backupService   *service.BackupService
	backupScheduler *service.BackupScheduler
}

// NewContainer 创建依赖注入容器
// 根据配置初始化所有依赖组件
func NewContainer(cfg *config.Config) (*Container, error) {
	// 1. 初始化日志
	logger, err := api.NewLoggerFromConfig(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	// 2. 初始化数据库(带重试机制)
	// 默认重试 3 次,初始间隔 1 秒,指数退避
	db, err := database.ConnectWithRetry(cfg.Database, 3, time.Second)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// 执行数据库迁移
	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	if err := database.CreateIndexes(db); err != nil {
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}

	// 3. 初始化 WebSocket Hub
	hub := websocket.NewHub()

	// 4. 初始化 OpenFGA 客户端(带重试机制)
	var fgaClient *auth.OpenFGAClient
	if cfg.OpenFGA.StoreID != "" {
		fgaClient, err = auth.NewOpenFGAClientWithRetry(cfg.OpenFGA.APIURL, cfg.OpenFGA.StoreID, cfg.OpenFGA.ModelID, 3, time.Second)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize OpenFGA client: %w", err)
		}
	}

	// 5. 初始化 Keycloak Token 验证器
	var keycloakValidator *auth.KeycloakTokenValidator
	if cfg.Keycloak.Issuer != "" {
		keycloakValidator = auth.NewKeycloakTokenValidator(cfg.Keycloak.Issuer)
	}

	// 6. 初始化仓储层
	helpRequestRepo := repository.NewHelpRequestRepository(db)
	historyRepo := repository.NewStatusHistoryRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	assistedRepo := repository.NewAssistedRepository(db)
	visitorRepo := repository.NewVisitorRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	volunteerRepo := repository.NewVolunteerRepository(db)
	leaderRepo := repository.NewLeaderRepository(db)
	eventRepo := repository.NewEventRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	accountRepo := repository.NewUserAccountRepository(db)
	auditLogRepo := repository.NewAuditLogRepository(db)

	// 7. 初始化服务层
	auditLogSvc := service.NewAuditLogService(auditLogRepo)
	notificationSvc := service.NewNotificationService(notificationRepo, accountRepo, hub, logger)
	helpRequestSvc := service.NewHelpRequestService(db, helpRequestRepo, historyRepo, auditLogSvc, notificationSvc)
	appointmentSvc := service.NewAppointmentService(db, appointmentRepo, historyRepo, auditLogSvc, notificationSvc)
	memberSvc := service.NewMemberService(memberRepo, auditLogSvc)
	directorySvc := service.NewDirectoryService(visitorRepo, projectRepo, volunteerRepo, leaderRepo, auditLogSvc)
	settingsSvc := service.NewSettingsService(settingsRepo, auditLogSvc)
	importSvc := service.NewImportService(memberRepo, assistedRepo, eventRepo, transactionRepo, accountRepo, auditLogSvc, logger)
	statisticsSvc := service.NewStatisticsService(db)

	// 8. 初始化备份服务与调度器
	backupService := service.NewBackupService(db, cfg.Backup.Dir, logger)
	backupScheduler := service.NewBackupScheduler(backupService, &service.BackupScheduleConfig{
		Enabled:       true,
		Interval:      24 * time.Hour,
		RetentionDays: cfg.Backup.RetentionDays,
	}, logger)

	// 9. 初始化导出服务
	exportSvc := service.NewExportService(statisticsSvc, backupService)

	return &Container{
		cfg:               cfg,
		db:                db,
		logger:            logger,
		hub:               hub,
		fgaClient:         fgaClient,
		keycloakValidator: keycloakValidator,
		auditLogSvc:       auditLogSvc,
		notificationSvc:   notificationSvc,
		helpRequestSvc:    helpRequestSvc,
		appointmentSvc:    appointmentSvc,
		memberSvc:         memberSvc,
		directorySvc:      directorySvc,
		settingsSvc:       settingsSvc,
		importSvc:         importSvc,
		statisticsSvc:     statisticsSvc,
		exportSvc:         exportSvc,
		backupService:     backupService,
		backupScheduler:   backupScheduler,
	}, nil
}

// Config 获取应用配置
func (c *Container) Config() *config.Config {
	return c.cfg
}

// DB 获取数据库连接
func (c *Container) DB() *gorm.DB {
	return c.db
}

// Logger 获取日志器
func (c *Container) Logger() *logrus.Logger {
	return c.logger
}

// Hub 获取 WebSocket Hub
func (c *Container) Hub() *websocket.Hub {
	return c.hub
}

// OpenFGAClient 获取 OpenFGA 客户端
func (c *Container) OpenFGAClient() *auth.OpenFGAClient {
	return c.fgaClient
}

// KeycloakValidator 获取 Keycloak Token 验证器
func (c *Container) KeycloakValidator() *auth.KeycloakTokenValidator {
	return c.keycloakValidator
}

// HelpRequestService 获取求助请求服务
func (c *Container) HelpRequestService() service.HelpRequestService {
	return c.helpRequestSvc
}

// AppointmentService 获取预约服务
func (c *Container) AppointmentService() service.AppointmentService {
	return c.appointmentSvc
}

// MemberService 获取成员服务
func (c *Container) MemberService() service.MemberService {
	return c.memberSvc
}

// DirectoryService 获取社区名录服务
func (c *Container) DirectoryService() service.DirectoryService {
	return c.directorySvc
}

// SettingsService 获取站点设置服务
func (c *Container) SettingsService() service.SettingsService {
	return c.settingsSvc
}

// NotificationService 获取通知服务
func (c *Container) NotificationService() service.NotificationService {
	return c.notificationSvc
}

// ImportService 获取导入服务
func (c *Container) ImportService() service.ImportService {
	return c.importSvc
}

// StatisticsService 获取统计服务
func (c *Container) StatisticsService() service.StatisticsService {
	return c.statisticsSvc
}

// ExportService 获取导出服务
func (c *Container) ExportService() service.ExportService {
	return c.exportSvc
}

// BackupService 获取备份服务
func (c *Container) BackupService() *service.BackupService {
	return c.backupService
}

// BackupScheduler 获取备份调度器
func (c *Container) BackupScheduler() *service.BackupScheduler {
	return c.backupScheduler
}

// Controllers 构造路由所需的全部控制器
func (c *Container) Controllers() *api.Controllers {
	return &api.Controllers{
		HelpRequest:  api.NewHelpRequestController(c.helpRequestSvc),
		Appointment:  api.NewAppointmentController(c.appointmentSvc),
		Member:       api.NewMemberController(c.memberSvc),
		Directory:    api.NewDirectoryController(c.directorySvc),
		Settings:     api.NewSettingsController(c.settingsSvc),
		Notification: api.NewNotificationController(c.notificationSvc),
		Import:       api.NewImportController(c.importSvc),
		Export:       api.NewExportController(c.exportSvc),
		Statistics:   api.NewStatisticsController(c.statisticsSvc),
		Backup:       api.NewBackupController(c.backupService),
	}
}

// Close 关闭容器,清理资源
func (c *Container) Close() error {
	if c.backupScheduler != nil {
		c.backupScheduler.Stop()
	}
	if c.db != nil {
		sqlDB, err := c.db.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
	return nil
}
