package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/JohnPitter/church-management-sub005/internal/auth"
	"github.com/JohnPitter/church-management-sub005/internal/config"
	"github.com/JohnPitter/church-management-sub005/internal/websocket"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	_ "github.com/JohnPitter/church-management-sub005/docs" // 导入生成的 docs 包
	"gorm.io/gorm"
)

// Controllers 路由所需的全部控制器
type Controllers struct {
	HelpRequest  *HelpRequestController
	Appointment  *AppointmentController
	Member       *MemberController
	Directory    *DirectoryController
	Settings     *SettingsController
	Notification *NotificationController
	Import       *ImportController
	Export       *ExportController
	Statistics   *StatisticsController
	Backup       *BackupController
}

// SetupRoutes 配置路由
func SetupRoutes(
	cfg *config.Config,
	hub *websocket.Hub,
	validator *auth.KeycloakTokenValidator,
	db *gorm.DB,
	fgaClient *auth.OpenFGAClient,
	controllers *Controllers,
) *gin.Engine {
	if config.IsProduction(cfg) {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	// 中间件
	router.Use(RequestIDMiddleware())
	router.Use(RequestLogMiddleware())
	router.Use(ErrorHandlerMiddleware())
	router.Use(SecurityHeadersMiddleware())
	router.Use(I18nMiddleware())
	router.Use(VersionMiddleware())
	if cfg != nil {
		router.Use(CORSMiddleware(cfg.CORS.AllowedOrigins))
		if cfg.Tracing.Enabled {
			router.Use(TracingMiddleware())
		}
	}
	router.Use(RateLimitMiddleware(100, 200))

	// 健康检查
	healthController := NewHealthController(db, fgaClient)
	router.GET("/health", healthController.Check)

	// Prometheus 指标端点
	router.GET("/metrics", MetricsHandler)

	// WebSocket 路由
	if hub != nil && validator != nil {
		router.GET("/ws", websocket.WebSocketHandler(hub, validator))
	}

	// SSE 路由
	if validator != nil {
		router.GET("/sse/help-requests/:id", SSEHandler(validator))
	}

	// Swagger UI 路由
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
		ginSwagger.URL("http://localhost:8080/swagger/doc.json"), // Swagger JSON URL
	))

	// 公开路由:站点展示信息无需认证
	public := router.Group("/api/v1")
	{
		public.GET("/settings", controllers.Settings.Get)
		public.GET("/leaders", controllers.Directory.ListLeaders)
	}

	// 启用 OpenFGA 时,硬删除等管理操作走带缓存的权限检查
	var permChecker auth.PermissionChecker
	if fgaClient != nil {
		permChecker = auth.NewCachedOpenFGAClient(fgaClient, auth.NewPermissionCache(5*time.Minute))
	}
	requirePermission := func(objectType, relation string) gin.HandlerFunc {
		if permChecker == nil {
			return func(c *gin.Context) { c.Next() }
		}
		return auth.PermissionMiddleware(permChecker, objectType, relation)
	}

	// API v1 路由组
	v1 := router.Group("/api/v1")
	if validator != nil {
		v1.Use(auth.KeycloakAuthMiddleware(validator))
	}
	{
		// 求助请求路由
		helpRequests := v1.Group("/help-requests")
		{
			helpRequests.POST("", controllers.HelpRequest.Create)
			helpRequests.GET("", controllers.HelpRequest.List)
			helpRequests.GET("/:id", controllers.HelpRequest.Get)
			helpRequests.GET("/:id/history", controllers.HelpRequest.GetHistory)
			helpRequests.PUT("/:id/status", controllers.HelpRequest.Transition)
			helpRequests.DELETE("/:id", requirePermission("help_request", "operator"), controllers.HelpRequest.Delete)
		}

		// 预约路由
		appointments := v1.Group("/appointments")
		{
			appointments.POST("", controllers.Appointment.Create)
			appointments.GET("", controllers.Appointment.List)
			appointments.GET("/:id", controllers.Appointment.Get)
			appointments.GET("/:id/history", controllers.Appointment.GetHistory)
			appointments.PUT("/:id/status", controllers.Appointment.Transition)
			appointments.PUT("/:id", controllers.Appointment.Update)
			appointments.DELETE("/:id", requirePermission("appointment", "operator"), controllers.Appointment.Delete)
		}

		// 成员路由
		members := v1.Group("/members")
		{
			members.POST("", controllers.Member.Create)
			members.GET("", controllers.Member.List)
			members.GET("/:id", controllers.Member.Get)
			members.PUT("/:id", controllers.Member.Update)
			members.DELETE("/:id", requirePermission("community", "secretary"), controllers.Member.Deactivate)
		}

		// 访客路由
		visitors := v1.Group("/visitors")
		{
			visitors.POST("", controllers.Directory.CreateVisitor)
			visitors.GET("", controllers.Directory.ListVisitors)
			visitors.GET("/:id", controllers.Directory.GetVisitor)
			visitors.PUT("/:id/status", controllers.Directory.UpdateVisitorStatus)
			visitors.DELETE("/:id", controllers.Directory.DeleteVisitor)
		}

		// 项目与志愿者路由
		projects := v1.Group("/projects")
		{
			projects.POST("", controllers.Directory.CreateProject)
			projects.GET("", controllers.Directory.ListProjects)
			projects.GET("/:id", controllers.Directory.GetProject)
			projects.PUT("/:id", controllers.Directory.UpdateProject)
		}
		volunteers := v1.Group("/volunteers")
		{
			volunteers.POST("", controllers.Directory.AddVolunteer)
			volunteers.GET("", controllers.Directory.ListVolunteers)
			volunteers.DELETE("/:id", controllers.Directory.RemoveVolunteer)
		}

		// 领导层名录路由(写操作需认证)
		leaders := v1.Group("/leaders")
		{
			leaders.POST("", controllers.Directory.CreateLeader)
			leaders.PUT("/:id", controllers.Directory.UpdateLeader)
			leaders.DELETE("/:id", controllers.Directory.DeleteLeader)
		}

		// 站点设置路由(写操作需认证)
		v1.PUT("/settings", controllers.Settings.Update)

		// 通知路由
		notifications := v1.Group("/notifications")
		{
			notifications.GET("", controllers.Notification.List)
			notifications.PUT("/:id/read", controllers.Notification.MarkRead)
		}

		// 数据导入导出路由
		v1.POST("/import", controllers.Import.Import)
		v1.GET("/export/json", controllers.Export.ExportJSON)
		v1.GET("/export/csv", controllers.Export.ExportCSV)

		// 统计路由
		statistics := v1.Group("/statistics")
		{
			statistics.GET("/dashboard", controllers.Statistics.Dashboard)
			statistics.GET("/help-requests/by-status", controllers.Statistics.HelpRequestsByStatus)
			statistics.GET("/help-requests/by-specialty", controllers.Statistics.HelpRequestsBySpecialty)
			statistics.GET("/help-requests/by-month", controllers.Statistics.HelpRequestsByMonth)
			statistics.GET("/appointments/by-service-type", controllers.Statistics.AppointmentsByServiceType)
			statistics.GET("/visitors/by-status", controllers.Statistics.VisitorsByStatus)
		}

		// 备份管理路由
		backups := v1.Group("/backups")
		{
			backups.POST("", controllers.Backup.CreateBackup)
			backups.GET("", controllers.Backup.ListBackups)
			backups.POST("/:filename/restore", controllers.Backup.RestoreBackup)
			backups.DELETE("/:filename", controllers.Backup.DeleteBackup)
		}
	}

	return router
}
