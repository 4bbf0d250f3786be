package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/JohnPitter/church-management-sub005/internal/repository"
	"github.com/JohnPitter/church-management-sub005/internal/service"
	"github.com/JohnPitter/church-management-sub005/internal/utils"
)

// HelpRequestController 求助请求控制器
type HelpRequestController struct {
	helpRequestService service.HelpRequestService
}

// NewHelpRequestController 创建求助请求控制器
func NewHelpRequestController(helpRequestService service.HelpRequestService) *HelpRequestController {
	return &HelpRequestController{
		helpRequestService: helpRequestService,
	}
}

// validateRecordID 验证记录 ID 并返回错误响应(如果无效)
func validateRecordID(ctx *gin.Context, id string) bool {
	if err := utils.ValidateRecordID(id); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid record ID", err.Error())
		return false
	}
	return true
}

// respondServiceError 统一处理服务层错误
// NotFound 映射 404,非法状态映射 400,其余为 500
func respondServiceError(ctx *gin.Context, err error, operation string) bool {
	if err == nil {
		return true
	}
	switch {
	case errors.Is(err, service.ErrNotFound):
		Error(ctx, http.StatusNotFound, T(ctx, "error.not_found"), err.Error())
	case errors.Is(err, service.ErrInvalidStatus):
		Error(ctx, http.StatusBadRequest, "invalid status", err.Error())
	case errors.Is(err, service.ErrDuplicateCPF):
		Error(ctx, http.StatusConflict, T(ctx, "error.duplicate_cpf"), err.Error())
	default:
		Error(ctx, http.StatusInternalServerError, "failed to "+operation, err.Error())
	}
	return false
}

// Create 创建求助请求
// @Summary      创建求助请求
// @Description  专业人员向另一位专业人员发起求助,新请求总是 pendente 状态
// @Tags         求助请求
// @Accept       json
// @Produce      json
// @Param        request body service.CreateHelpRequestRequest true "求助请求信息"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /help-requests [post]
// @Security     BearerAuth
func (c *HelpRequestController) Create(ctx *gin.Context) {
	var req service.CreateHelpRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	request, err := c.helpRequestService.Create(ctx.Request.Context(), &req)
	if err != nil {
		Error(ctx, http.StatusInternalServerError, "failed to create help request", err.Error())
		return
	}

	Success(ctx, request)
}

// List 列出求助请求
// @Summary      列出求助请求
// @Description  支持按状态、专业领域、发起人、目标专业人员过滤
// @Tags         求助请求
// @Accept       json
// @Produce      json
// @Param        status path string false "状态过滤"
// @Param        specialty query string false "专业领域过滤"
// @Param        requester_id query string false "发起人过滤"
// @Param        professional_id query string false "目标专业人员过滤"
// @Param        sort_by query string false "排序字段"
// @Param        order query string false "排序方向 asc/desc"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /help-requests [get]
// @Security     BearerAuth
func (c *HelpRequestController) List(ctx *gin.Context) {
	filter := &repository.HelpRequestFilter{
		SortBy: ctx.Query("sort_by"),
		Order:  ctx.Query("order"),
	}
	if status := ctx.Query("status"); status != "" {
		filter.Status = &status
	}
	if specialty := ctx.Query("specialty"); specialty != "" {
		filter.Specialty = &specialty
	}
	if requesterID := ctx.Query("requester_id"); requesterID != "" {
		filter.RequesterID = &requesterID
	}
	if professionalID := ctx.Query("professional_id"); professionalID != "" {
		filter.ProfessionalID = &professionalID
	}

	requests, err := c.helpRequestService.List(filter)
	if err != nil {
		Error(ctx, http.StatusBadRequest, "failed to list help requests", err.Error())
		return
	}

	Success(ctx, requests)
}

// Get 获取求助请求详情
// @Summary      获取求助请求详情
// @Tags         求助请求
// @Produce      json
// @Param        id path string true "请求 ID"
// @Success      200  {object}  Response
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /help-requests/{id} [get]
// @Security     BearerAuth
func (c *HelpRequestController) Get(ctx *gin.Context) {
	id := ctx.Param("id")
	if !validateRecordID(ctx, id) {
		return
	}

	request, err := c.helpRequestService.Get(id)
	if !respondServiceError(ctx, err, "get help request") {
		return
	}

	Success(ctx, request)
}

// GetHistory 获取状态历史
// @Summary      获取求助请求的状态历史
// @Description  按时间升序返回全部状态流转条目
// @Tags         求助请求
// @Produce      json
// @Param        id path string true "请求 ID"
// @Success      200  {object}  Response
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /help-requests/{id}/history [get]
// @Security     BearerAuth
func (c *HelpRequestController) GetHistory(ctx *gin.Context) {
	id := ctx.Param("id")
	if !validateRecordID(ctx, id) {
		return
	}

	history, err := c.helpRequestService.GetHistory(id)
	if !respondServiceError(ctx, err, "get status history") {
		return
	}

	Success(ctx, history)
}

// Transition 状态流转
// @Summary      执行状态流转
// @Description  将请求流转到目标状态并追加历史条目
// @Tags         求助请求
// @Accept       json
// @Produce      json
// @Param        id path string true "请求 ID"
// @Param        request body service.TransitionRequest true "流转信息"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /help-requests/{id}/status [put]
// @Security     BearerAuth
func (c *HelpRequestController) Transition(ctx *gin.Context) {
	id := ctx.Param("id")
	if !validateRecordID(ctx, id) {
		return
	}

	var req service.TransitionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	request, err := c.helpRequestService.Transition(ctx.Request.Context(), id, &req)
	if !respondServiceError(ctx, err, "transition help request") {
		return
	}

	Success(ctx, request)
}

// Delete 删除求助请求
// @Summary      删除求助请求
// @Description  硬删除请求及其状态历史,管理操作
// @Tags         求助请求
// @Produce      json
// @Param        id path string true "请求 ID"
// @Success      200  {object}  Response
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /help-requests/{id} [delete]
// @Security     BearerAuth
func (c *HelpRequestController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")
	if !validateRecordID(ctx, id) {
		return
	}

	if !respondServiceError(ctx, c.helpRequestService.Delete(ctx.Request.Context(), id), "delete help request") {
		return
	}

	Success(ctx, nil)
}
