package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/JohnPitter/church-management-sub005/internal/service"
)

// ExportController 统计导出控制器
type ExportController struct {
	exportService service.ExportService
}

// NewExportController 创建导出控制器
func NewExportController(exportService service.ExportService) *ExportController {
	return &ExportController{
		exportService: exportService,
	}
}

// ExportJSON 导出 JSON 报表
// @Summary      导出 JSON 统计报表
// @Description  数据不变时两次导出字节一致
// @Tags         数据导出
// @Produce      json
// @Success      200  {string}  string  "JSON 报表"
// @Failure      500  {object}  ErrorResponse
// @Router       /export/json [get]
// @Security     BearerAuth
func (c *ExportController) ExportJSON(ctx *gin.Context) {
	data, err := c.exportService.ExportJSON(ctx.Request.Context())
	if err != nil {
		Error(ctx, http.StatusInternalServerError, "failed to export statistics", err.Error())
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="estatisticas.json"`)
	ctx.Data(http.StatusOK, "application/json", data)
}

// ExportCSV 导出 CSV 报表
// @Summary      导出 CSV 统计报表
// @Tags         数据导出
// @Produce      text/csv
// @Success      200  {string}  string  "CSV 报表"
// @Failure      500  {object}  ErrorResponse
// @Router       /export/csv [get]
// @Security     BearerAuth
func (c *ExportController) ExportCSV(ctx *gin.Context) {
	data, err := c.exportService.ExportCSV(ctx.Request.Context())
	if err != nil {
		Error(ctx, http.StatusInternalServerError, "failed to export statistics", err.Error())
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="estatisticas.csv"`)
	ctx.Data(http.StatusOK, "text/csv", data)
}
