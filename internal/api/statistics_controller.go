package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/JohnPitter/church-management-sub005/internal/service"
)

// StatisticsController 统计控制器
type StatisticsController struct {
	statisticsService service.StatisticsService
}

// NewStatisticsController 创建统计控制器
func NewStatisticsController(statisticsService service.StatisticsService) *StatisticsController {
	return &StatisticsController{
		statisticsService: statisticsService,
	}
}

// Dashboard 仪表盘汇总
// @Summary      获取仪表盘汇总统计
// @Description  成员、受助者、访客、预约计数及财务进出合计
// @Tags         统计
// @Produce      json
// @Success      200  {object}  Response
// @Failure      500  {object}  ErrorResponse
// @Router       /statistics/dashboard [get]
// @Security     BearerAuth
func (c *StatisticsController) Dashboard(ctx *gin.Context) {
	dashboard, err := c.statisticsService.GetDashboard()
	if err != nil {
		Error(ctx, http.StatusInternalServerError, "failed to get dashboard statistics", err.Error())
		return
	}

	Success(ctx, dashboard)
}

// HelpRequestsByStatus 按状态统计求助请求
// @Summary      按状态统计求助请求
// @Tags         统计
// @Produce      json
// @Success      200  {object}  Response
// @Failure      500  {object}  ErrorResponse
// @Router       /statistics/help-requests/by-status [get]
// @Security     BearerAuth
func (c *StatisticsController) HelpRequestsByStatus(ctx *gin.Context) {
	counts, err := c.statisticsService.GetHelpRequestsByStatus()
	if err != nil {
		Error(ctx, http.StatusInternalServerError, "failed to get statistics", err.Error())
		return
	}

	Success(ctx, counts)
}

// HelpRequestsByMonth 按创建月份统计求助请求
// @Summary      按创建月份统计求助请求
// @Tags         统计
// @Produce      json
// @Success      200  {object}  Response
// @Failure      500  {object}  ErrorResponse
// @Router       /statistics/help-requests/by-month [get]
// @Security     BearerAuth
func (c *StatisticsController) HelpRequestsByMonth(ctx *gin.Context) {
	counts, err := c.statisticsService.GetHelpRequestsByMonth()
	if err != nil {
		Error(ctx, http.StatusInternalServerError, "failed to get statistics", err.Error())
		return
	}

	Success(ctx, counts)
}

// HelpRequestsBySpecialty 按专业领域统计求助请求
// @Summary      按专业领域统计求助请求
// @Tags         统计
// @Produce      json
// @Success      200  {object}  Response
// @Failure      500  {object}  ErrorResponse
// @Router       /statistics/help-requests/by-specialty [get]
// @Security     BearerAuth
func (c *StatisticsController) HelpRequestsBySpecialty(ctx *gin.Context) {
	counts, err := c.statisticsService.GetHelpRequestsBySpecialty()
	if err != nil {
		Error(ctx, http.StatusInternalServerError, "failed to get statistics", err.Error())
		return
	}

	Success(ctx, counts)
}

// AppointmentsByServiceType 按服务类型统计预约
// @Summary      按服务类型统计预约
// @Tags         统计
// @Produce      json
// @Success      200  {object}  Response
// @Failure      500  {object}  ErrorResponse
// @Router       /statistics/appointments/by-service-type [get]
// @Security     BearerAuth
func (c *StatisticsController) AppointmentsByServiceType(ctx *gin.Context) {
	counts, err := c.statisticsService.GetAppointmentsByServiceType()
	if err != nil {
		Error(ctx, http.StatusInternalServerError, "failed to get statistics", err.Error())
		return
	}

	Success(ctx, counts)
}

// VisitorsByStatus 按跟进状态统计访客
// @Summary      按跟进状态统计访客
// @Tags         统计
// @Produce      json
// @Success      200  {object}  Response
// @Failure      500  {object}  ErrorResponse
// @Router       /statistics/visitors/by-status [get]
// @Security     BearerAuth
func (c *StatisticsController) VisitorsByStatus(ctx *gin.Context) {
	counts, err := c.statisticsService.GetVisitorsByStatus()
	if err != nil {
		Error(ctx, http.StatusInternalServerError, "failed to get statistics", err.Error())
		return
	}

	Success(ctx, counts)
}
