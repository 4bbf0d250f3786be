package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/JohnPitter/church-management-sub005/internal/auth"
	"github.com/JohnPitter/church-management-sub005/internal/database"
	"gorm.io/gorm"
)

// HealthController 健康检查控制器
type HealthController struct {
	db        *gorm.DB
	fgaClient *auth.OpenFGAClient
}

// NewHealthController 创建健康检查控制器
func NewHealthController(db *gorm.DB, fgaClient *auth.OpenFGAClient) *HealthController {
	return &HealthController{
		db:        db,
		fgaClient: fgaClient,
	}
}

// Check 健康检查
// @Summary      服务健康检查
// @Description  检查数据库与 OpenFGA 连接状态
// @Tags         系统管理
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      503  {object}  map[string]interface{}
// @Router       /health [get]
func (c *HealthController) Check(ctx *gin.Context) {
	status := "healthy"
	checks := make(map[string]string)

	// 检查数据库连接
	if c.db != nil {
		if database.CheckHealth(c.db) {
			checks["database"] = "healthy"
		} else {
			status = "unhealthy"
			checks["database"] = "unhealthy"
		}
	} else {
		checks["database"] = "not configured"
	}

	// 检查 OpenFGA 连接
	if c.fgaClient != nil {
		if c.fgaClient.CheckHealth(ctx.Request.Context()) {
			checks["openfga"] = "healthy"
		} else {
			status = "unhealthy"
			checks["openfga"] = "unhealthy"
		}
	} else {
		checks["openfga"] = "not configured"
	}

	httpStatus := http.StatusOK
	if status == "unhealthy" {
		httpStatus = http.StatusServiceUnavailable
	}

	ctx.JSON(httpStatus, gin.H{
		"status":    status,
		"timestamp": time.Now().Unix(),
		"checks":    checks,
	})
}
