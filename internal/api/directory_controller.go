package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/JohnPitter/church-management-sub005/internal/repository"
	"github.com/JohnPitter/church-management-sub005/internal/service"
)

// DirectoryController 社区名录控制器
// 覆盖访客、项目、志愿者和领导层名录
type DirectoryController struct {
	directoryService service.DirectoryService
}

// NewDirectoryController 创建社区名录控制器
func NewDirectoryController(directoryService service.DirectoryService) *DirectoryController {
	return &DirectoryController{
		directoryService: directoryService,
	}
}

// CreateVisitor 登记访客
// @Summary      登记访客
// @Description  新访客总是 novo 状态
// @Tags         访客管理
// @Accept       json
// @Produce      json
// @Param        request body service.CreateVisitorRequest true "访客信息"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Router       /visitors [post]
// @Security     BearerAuth
func (c *DirectoryController) CreateVisitor(ctx *gin.Context) {
	var req service.CreateVisitorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	visitor, err := c.directoryService.CreateVisitor(ctx.Request.Context(), &req)
	if err != nil {
		Error(ctx, http.StatusInternalServerError, "failed to create visitor", err.Error())
		return
	}

	Success(ctx, visitor)
}

// ListVisitors 列出访客
// @Summary      列出访客
// @Tags         访客管理
// @Produce      json
// @Param        status query string false "状态过滤 novo/contatado/integrado"
// @Success      200  {object}  Response
// @Router       /visitors [get]
// @Security     BearerAuth
func (c *DirectoryController) ListVisitors(ctx *gin.Context) {
	filter := &repository.VisitorFilter{}
	if status := ctx.Query("status"); status != "" {
		filter.Status = &status
	}

	visitors, err := c.directoryService.ListVisitors(filter)
	if err != nil {
		Error(ctx, http.StatusInternalServerError, "failed to list visitors", err.Error())
		return
	}

	Success(ctx, visitors)
}

// GetVisitor 获取访客详情
// @Summary      获取访客详情
// @Tags         访客管理
// @Produce      json
// @Param        id path string true "访客 ID"
// @Success      200  {object}  Response
// @Failure      404  {object}  ErrorResponse
// @Router       /visitors/{id} [get]
// @Security     BearerAuth
func (c *DirectoryController) GetVisitor(ctx *gin.Context) {
	id := ctx.Param("id")
	if !validateRecordID(ctx, id) {
		return
	}

	visitor, err := c.directoryService.GetVisitor(id)
	if !respondServiceError(ctx, err, "get visitor") {
		return
	}

	Success(ctx, visitor)
}

// UpdateVisitorStatus 更新访客跟进状态
// @Summary      更新访客跟进状态
// @Description  合法状态为 novo、contatado、integrado
// @Tags         访客管理
// @Accept       json
// @Produce      json
// @Param        id path string true "访客 ID"
// @Param        request body object true "状态"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /visitors/{id}/status [put]
// @Security     BearerAuth
func (c *DirectoryController) UpdateVisitorStatus(ctx *gin.Context) {
	id := ctx.Param("id")
	if !validateRecordID(ctx, id) {
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	visitor, err := c.directoryService.UpdateVisitorStatus(ctx.Request.Context(), id, req.Status)
	if !respondServiceError(ctx, err, "update visitor status") {
		return
	}

	Success(ctx, visitor)
}

// DeleteVisitor 删除访客
// @Summary      删除访客
// @Tags         访客管理
// @Produce      json
// @Param        id path string true "访客 ID"
// @Success      200  {object}  Response
// @Failure      404  {object}  ErrorResponse
// @Router       /visitors/{id} [delete]
// @Security     BearerAuth
func (c *DirectoryController) DeleteVisitor(ctx *gin.Context) {
	id := ctx.Param("id")
	if !validateRecordID(ctx, id) {
		return
	}

	if !respondServiceError(ctx, c.directoryService.DeleteVisitor(ctx.Request.Context(), id), "delete visitor") {
		return
	}

	Success(ctx, nil)
}

// CreateProject 创建项目
// @Summary      创建社区项目
// @Tags         项目管理
// @Accept       json
// @Produce      json
// @Param        request body service.CreateProjectRequest true "项目信息"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Router       /projects [post]
// @Security     BearerAuth
func (c *DirectoryController) CreateProject(ctx *gin.Context) {
	var req service.CreateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	project, err := c.directoryService.CreateProject(ctx.Request.Context(), &req)
	if err != nil {
		Error(ctx, http.StatusInternalServerError, "failed to create project", err.Error())
		return
	}

	Success(ctx, project)
}

// ListProjects 列出项目
// @Summary      列出社区项目
// @Tags         项目管理
// @Produce      json
// @Param        active query bool false "只看进行中的项目"
// @Success      200  {object}  Response
// @Router       /projects [get]
// @Security     BearerAuth
func (c *DirectoryController) ListProjects(ctx *gin.Context) {
	onlyActive := ctx.Query("active") == "true"

	projects, err := c.directoryService.ListProjects(onlyActive)
	if err != nil {
		Error(ctx, http.StatusInternalServerError, "failed to list projects", err.Error())
		return
	}

	Success(ctx, projects)
}

// GetProject 获取项目详情
// @Summary      获取项目详情
// @Tags         项目管理
// @Produce      json
// @Param        id path string true "项目 ID"
// @Success      200  {object}  Response
// @Failure      404  {object}  ErrorResponse
// @Router       /projects/{id} [get]
// @Security     BearerAuth
func (c *DirectoryController) GetProject(ctx *gin.Context) {
	id := ctx.Param("id")
	if !validateRecordID(ctx, id) {
		return
	}

	project, err := c.directoryService.GetProject(id)
	if !respondServiceError(ctx, err, "get project") {
		return
	}

	Success(ctx, project)
}

// UpdateProject 更新项目
// @Summary      更新社区项目
// @Tags         项目管理
// @Accept       json
// @Produce      json
// @Param        id path string true "项目 ID"
// @Param        request body service.UpdateProjectRequest true "更新内容"
// @Success      200  {object}  Response
// @Failure      404  {object}  ErrorResponse
// @Router       /projects/{id} [put]
// @Security     BearerAuth
func (c *DirectoryController) UpdateProject(ctx *gin.Context) {
	id := ctx.Param("id")
	if !validateRecordID(ctx, id) {
		return
	}

	var req service.UpdateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	project, err := c.directoryService.UpdateProject(ctx.Request.Context(), id, &req)
	if !respondServiceError(ctx, err, "update project") {
		return
	}

	Success(ctx, project)
}

// AddVolunteer 添加志愿者
// @Summary      将志愿者加入项目
// @Tags         项目管理
// @Accept       json
// @Produce      json
// @Param        request body service.AddVolunteerRequest true "志愿者信息"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /volunteers [post]
// @Security     BearerAuth
func (c *DirectoryController) AddVolunteer(ctx *gin.Context) {
	var req service.AddVolunteerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	volunteer, err := c.directoryService.AddVolunteer(ctx.Request.Context(), &req)
	if !respondServiceError(ctx, err, "add volunteer") {
		return
	}

	Success(ctx, volunteer)
}

// ListVolunteers 列出项目志愿者
// @Summary      列出项目志愿者
// @Tags         项目管理
// @Produce      json
// @Param        project_id query string true "项目 ID"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Router       /volunteers [get]
// @Security     BearerAuth
func (c *DirectoryController) ListVolunteers(ctx *gin.Context) {
	projectID := ctx.Query("project_id")
	if projectID == "" {
		Error(ctx, http.StatusBadRequest, "invalid request", "project_id is required")
		return
	}

	volunteers, err := c.directoryService.ListVolunteers(projectID)
	if err != nil {
		Error(ctx, http.StatusInternalServerError, "failed to list volunteers", err.Error())
		return
	}

	Success(ctx, volunteers)
}

// RemoveVolunteer 移除志愿者
// @Summary      将志愿者移出项目
// @Tags         项目管理
// @Produce      json
// @Param        id path string true "志愿者 ID"
// @Success      200  {object}  Response
// @Failure      404  {object}  ErrorResponse
// @Router       /volunteers/{id} [delete]
// @Security     BearerAuth
func (c *DirectoryController) RemoveVolunteer(ctx *gin.Context) {
	id := ctx.Param("id")
	if !validateRecordID(ctx, id) {
		return
	}

	if !respondServiceError(ctx, c.directoryService.RemoveVolunteer(ctx.Request.Context(), id), "remove volunteer") {
		return
	}

	Success(ctx, nil)
}

// CreateLeader 创建领导层条目
// @Summary      登记领导层名录条目
// @Tags         领导层名录
// @Accept       json
// @Produce      json
// @Param        request body service.CreateLeaderRequest true "条目信息"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Router       /leaders [post]
// @Security     BearerAuth
func (c *DirectoryController) CreateLeader(ctx *gin.Context) {
	var req service.CreateLeaderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	leader, err := c.directoryService.CreateLeader(ctx.Request.Context(), &req)
	if err != nil {
		Error(ctx, http.StatusInternalServerError, "failed to create leader", err.Error())
		return
	}

	Success(ctx, leader)
}

// ListLeaders 列出领导层
// @Summary      列出领导层名录
// @Description  按展示排序返回
// @Tags         领导层名录
// @Produce      json
// @Success      200  {object}  Response
// @Router       /leaders [get]
// @Security     BearerAuth
func (c *DirectoryController) ListLeaders(ctx *gin.Context) {
	leaders, err := c.directoryService.ListLeaders()
	if err != nil {
		Error(ctx, http.StatusInternalServerError, "failed to list leaders", err.Error())
		return
	}

	Success(ctx, leaders)
}

// UpdateLeader 更新领导层条目
// @Summary      更新领导层名录条目
// @Tags         领导层名录
// @Accept       json
// @Produce      json
// @Param        id path string true "条目 ID"
// @Param        request body service.UpdateLeaderRequest true "更新内容"
// @Success      200  {object}  Response
// @Failure      404  {object}  ErrorResponse
// @Router       /leaders/{id} [put]
// @Security     BearerAuth
func (c *DirectoryController) UpdateLeader(ctx *gin.Context) {
	id := ctx.Param("id")
	if !validateRecordID(ctx, id) {
		return
	}

	var req service.UpdateLeaderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	leader, err := c.directoryService.UpdateLeader(ctx.Request.Context(), id, &req)
	if !respondServiceError(ctx, err, "update leader") {
		return
	}

	Success(ctx, leader)
}

// DeleteLeader 删除领导层条目
// @Summary      删除领导层名录条目
// @Tags         领导层名录
// @Produce      json
// @Param        id path string true "条目 ID"
// @Success      200  {object}  Response
// @Failure      404  {object}  ErrorResponse
// @Router       /leaders/{id} [delete]
// @Security     BearerAuth
func (c *DirectoryController) DeleteLeader(ctx *gin.Context) {
	id := ctx.Param("id")
	if !validateRecordID(ctx, id) {
		return
	}

	if !respondServiceError(ctx, c.directoryService.DeleteLeader(ctx.Request.Context(), id), "delete leader") {
		return
	}

	Success(ctx, nil)
}
