package metrics

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

var (
	// API 请求计数器
	apiRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "path", "status"},
	)

	// API 请求响应时间
	apiRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// 求助请求创建数
	helpRequestsCreatedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "help_requests_created_total",
			Help: "Total number of help requests created",
		},
		[]string{"specialty"},
	)

	// 状态流转数
	statusTransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "status_transitions_total",
			Help: "Total number of status transitions",
		},
		[]string{"record_type", "to_status"},
	)

	// 预约创建数
	appointmentsCreatedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "appointments_created_total",
			Help: "Total number of appointments created",
		},
		[]string{"service_type"},
	)

	// 旧系统数据导入记录数
	importedRecordsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "imported_records_total",
			Help: "Total number of legacy records imported",
		},
		[]string{"collection", "outcome"}, // outcome: created, updated, skipped
	)

	// 数据库连接数
	databaseConnectionsActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "database_connections_active",
			Help: "Number of active database connections",
		},
	)

	databaseConnectionsIdle = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "database_connections_idle",
			Help: "Number of idle database connections",
		},
	)

	databaseConnectionsMax = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "database_connections_max",
			Help: "Maximum number of database connections",
		},
	)

	// 求助请求状态分布
	helpRequestsByStatus = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "help_requests_by_status",
			Help: "Number of help requests by status",
		},
		[]string{"status"},
	)
)

var (
	once sync.Once
)

func init() {
	// 注册指标
	prometheus.MustRegister(apiRequestsTotal)
	prometheus.MustRegister(apiRequestDuration)
	prometheus.MustRegister(helpRequestsCreatedTotal)
	prometheus.MustRegister(statusTransitionsTotal)
	prometheus.MustRegister(appointmentsCreatedTotal)
	prometheus.MustRegister(importedRecordsTotal)
	prometheus.MustRegister(databaseConnectionsActive)
	prometheus.MustRegister(databaseConnectionsIdle)
	prometheus.MustRegister(databaseConnectionsMax)
	prometheus.MustRegister(helpRequestsByStatus)

	// 注册 Go 运行时指标（只注册一次）
	once.Do(func() {
		// 尝试注册 Go 运行时指标，如果已注册则忽略错误
		_ = prometheus.Register(prometheus.NewGoCollector())
		_ = prometheus.Register(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))
	})
}

// Handler 返回 Prometheus 指标处理器
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordAPIRequest 记录 API 请求
func RecordAPIRequest(method, path string, status int, duration float64) {
	statusText := http.StatusText(status)
	if statusText == "" {
		statusText = fmt.Sprintf("%d", status)
	}
	apiRequestsTotal.WithLabelValues(method, path, statusText).Inc()
	apiRequestDuration.WithLabelValues(method, path).Observe(duration)
}

// RecordHelpRequestCreated 记录求助请求创建
func RecordHelpRequestCreated(specialty string) {
	helpRequestsCreatedTotal.WithLabelValues(specialty).Inc()
}

// RecordStatusTransition 记录状态流转
func RecordStatusTransition(recordType, toStatus string) {
	statusTransitionsTotal.WithLabelValues(recordType, toStatus).Inc()
}

// RecordAppointmentCreated 记录预约创建
func RecordAppointmentCreated(serviceType string) {
	appointmentsCreatedTotal.WithLabelValues(serviceType).Inc()
}

// RecordImportedRecord 记录导入结果
func RecordImportedRecord(collection, outcome string) {
	importedRecordsTotal.WithLabelValues(collection, outcome).Inc()
}

// UpdateDatabaseConnections 更新数据库连接数指标
func UpdateDatabaseConnections(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	stats := sqlDB.Stats()
	databaseConnectionsActive.Set(float64(stats.OpenConnections - stats.Idle))
	databaseConnectionsIdle.Set(float64(stats.Idle))
	databaseConnectionsMax.Set(float64(stats.MaxOpenConnections))

	return nil
}

// UpdateHelpRequestsByStatus 更新求助请求状态分布指标
func UpdateHelpRequestsByStatus(status string, count float64) {
	helpRequestsByStatus.WithLabelValues(status).Set(count)
}
