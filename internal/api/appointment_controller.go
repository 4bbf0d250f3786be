package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/JohnPitter/church-management-sub005/internal/repository"
	"github.com/JohnPitter/church-management-sub005/internal/service"
)

// AppointmentController 预约控制器
type AppointmentController struct {
	appointmentService service.AppointmentService
}

// NewAppointmentController 创建预约控制器
func NewAppointmentController(appointmentService service.AppointmentService) *AppointmentController {
	return &AppointmentController{
		appointmentService: appointmentService,
	}
}

// Create 创建预约
// @Summary      创建援助服务预约
// @Description  为受助者登记援助服务预约,新预约总是 agendado 状态
// @Tags         预约管理
// @Accept       json
// @Produce      json
// @Param        request body service.CreateAppointmentRequest true "预约信息"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /appointments [post]
// @Security     BearerAuth
func (c *AppointmentController) Create(ctx *gin.Context) {
	var req service.CreateAppointmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	appointment, err := c.appointmentService.Create(ctx.Request.Context(), &req)
	if err != nil {
		Error(ctx, http.StatusInternalServerError, "failed to create appointment", err.Error())
		return
	}

	Success(ctx, appointment)
}

// List 列出预约
// @Summary      列出预约
// @Description  支持按状态、服务类型、专业人员和时间区间过滤
// @Tags         预约管理
// @Produce      json
// @Param        status query string false "状态过滤"
// @Param        service_type query string false "服务类型过滤"
// @Param        professional_id query string false "专业人员过滤"
// @Param        start_time query string false "起始时间"
// @Param        end_time query string false "结束时间"
// @Success      200  {object}  Response
// @Failure      500  {object}  ErrorResponse
// @Router       /appointments [get]
// @Security     BearerAuth
func (c *AppointmentController) List(ctx *gin.Context) {
	filter := &repository.AppointmentFilter{}
	if status := ctx.Query("status"); status != "" {
		filter.Status = &status
	}
	if serviceType := ctx.Query("service_type"); serviceType != "" {
		filter.ServiceType = &serviceType
	}
	if professionalID := ctx.Query("professional_id"); professionalID != "" {
		filter.ProfessionalID = &professionalID
	}
	if startTime := ctx.Query("start_time"); startTime != "" {
		if t, err := time.Parse(time.RFC3339, startTime); err == nil {
			filter.StartTime = &t
		}
	}
	if endTime := ctx.Query("end_time"); endTime != "" {
		if t, err := time.Parse(time.RFC3339, endTime); err == nil {
			filter.EndTime = &t
		}
	}

	appointments, err := c.appointmentService.List(filter)
	if err != nil {
		Error(ctx, http.StatusInternalServerError, "failed to list appointments", err.Error())
		return
	}

	Success(ctx, appointments)
}

// Get 获取预约详情
// @Summary      获取预约详情
// @Tags         预约管理
// @Produce      json
// @Param        id path string true "预约 ID"
// @Success      200  {object}  Response
// @Failure      404  {object}  ErrorResponse
// @Router       /appointments/{id} [get]
// @Security     BearerAuth
func (c *AppointmentController) Get(ctx *gin.Context) {
	id := ctx.Param("id")
	if !validateRecordID(ctx, id) {
		return
	}

	appointment, err := c.appointmentService.Get(id)
	if !respondServiceError(ctx, err, "get appointment") {
		return
	}

	Success(ctx, appointment)
}

// GetHistory 获取预约的状态历史
// @Summary      获取预约的状态历史
// @Description  按时间升序返回全部状态流转条目
// @Tags         预约管理
// @Produce      json
// @Param        id path string true "预约 ID"
// @Success      200  {object}  Response
// @Failure      404  {object}  ErrorResponse
// @Router       /appointments/{id}/history [get]
// @Security     BearerAuth
func (c *AppointmentController) GetHistory(ctx *gin.Context) {
	id := ctx.Param("id")
	if !validateRecordID(ctx, id) {
		return
	}

	history, err := c.appointmentService.GetHistory(id)
	if !respondServiceError(ctx, err, "get status history") {
		return
	}

	Success(ctx, history)
}

// Transition 预约状态流转
// @Summary      执行预约状态流转
// @Tags         预约管理
// @Accept       json
// @Produce      json
// @Param        id path string true "预约 ID"
// @Param        request body service.TransitionRequest true "流转信息"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /appointments/{id}/status [put]
// @Security     BearerAuth
func (c *AppointmentController) Transition(ctx *gin.Context) {
	id := ctx.Param("id")
	if !validateRecordID(ctx, id) {
		return
	}

	var req service.TransitionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	appointment, err := c.appointmentService.Transition(ctx.Request.Context(), id, &req)
	if !respondServiceError(ctx, err, "transition appointment") {
		return
	}

	Success(ctx, appointment)
}

// Update 更新预约
// @Summary      更新预约基础字段
// @Description  状态流转走专门接口,此接口不接受状态变更
// @Tags         预约管理
// @Accept       json
// @Produce      json
// @Param        id path string true "预约 ID"
// @Param        request body service.UpdateAppointmentRequest true "更新内容"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /appointments/{id} [put]
// @Security     BearerAuth
func (c *AppointmentController) Update(ctx *gin.Context) {
	id := ctx.Param("id")
	if !validateRecordID(ctx, id) {
		return
	}

	var req service.UpdateAppointmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	appointment, err := c.appointmentService.Update(ctx.Request.Context(), id, &req)
	if !respondServiceError(ctx, err, "update appointment") {
		return
	}

	Success(ctx, appointment)
}

// Delete 删除预约
// @Summary      删除预约
// @Description  硬删除预约及其状态历史,管理操作
// @Tags         预约管理
// @Produce      json
// @Param        id path string true "预约 ID"
// @Success      200  {object}  Response
// @Failure      404  {object}  ErrorResponse
// @Router       /appointments/{id} [delete]
// @Security     BearerAuth
func (c *AppointmentController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")
	if !validateRecordID(ctx, id) {
		return
	}

	if !respondServiceError(ctx, c.appointmentService.Delete(ctx.Request.Context(), id), "delete appointment") {
		return
	}

	Success(ctx, nil)
}
