package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/JohnPitter/church-management-sub005/internal/service"
)

// MemberController 成员控制器
type MemberController struct {
	memberService service.MemberService
}

// NewMemberController 创建成员控制器
func NewMemberController(memberService service.MemberService) *MemberController {
	return &MemberController{
		memberService: memberService,
	}
}

// Create 创建成员
// @Summary      创建教会成员
// @Description  登记成员档案,CPF 可选但提供时必须有效
// @Tags         成员管理
// @Accept       json
// @Produce      json
// @Param        request body service.CreateMemberRequest true "成员信息"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /members [post]
// @Security     BearerAuth
func (c *MemberController) Create(ctx *gin.Context) {
	var req service.CreateMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	member, err := c.memberService.Create(ctx.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateCPF) {
			Error(ctx, http.StatusConflict, T(ctx, "error.duplicate_cpf"), err.Error())
			return
		}
		Error(ctx, http.StatusBadRequest, "failed to create member", err.Error())
		return
	}

	Success(ctx, member)
}

// List 列出成员
// @Summary      列出全部成员
// @Tags         成员管理
// @Produce      json
// @Success      200  {object}  Response
// @Failure      500  {object}  ErrorResponse
// @Router       /members [get]
// @Security     BearerAuth
func (c *MemberController) List(ctx *gin.Context) {
	members, err := c.memberService.List()
	if err != nil {
		Error(ctx, http.StatusInternalServerError, "failed to list members", err.Error())
		return
	}

	Success(ctx, members)
}

// Get 获取成员详情
// @Summary      获取成员详情
// @Tags         成员管理
// @Produce      json
// @Param        id path string true "成员 ID"
// @Success      200  {object}  Response
// @Failure      404  {object}  ErrorResponse
// @Router       /members/{id} [get]
// @Security     BearerAuth
func (c *MemberController) Get(ctx *gin.Context) {
	id := ctx.Param("id")
	if !validateRecordID(ctx, id) {
		return
	}

	member, err := c.memberService.Get(id)
	if !respondServiceError(ctx, err, "get member") {
		return
	}

	Success(ctx, member)
}

// Update 更新成员
// @Summary      更新成员档案
// @Tags         成员管理
// @Accept       json
// @Produce      json
// @Param        id path string true "成员 ID"
// @Param        request body service.UpdateMemberRequest true "更新内容"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /members/{id} [put]
// @Security     BearerAuth
func (c *MemberController) Update(ctx *gin.Context) {
	id := ctx.Param("id")
	if !validateRecordID(ctx, id) {
		return
	}

	var req service.UpdateMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	member, err := c.memberService.Update(ctx.Request.Context(), id, &req)
	if !respondServiceError(ctx, err, "update member") {
		return
	}

	Success(ctx, member)
}

// Deactivate 停用成员
// @Summary      停用成员
// @Description  软删除:标记 active=false,档案保留
// @Tags         成员管理
// @Produce      json
// @Param        id path string true "成员 ID"
// @Success      200  {object}  Response
// @Failure      404  {object}  ErrorResponse
// @Router       /members/{id} [delete]
// @Security     BearerAuth
func (c *MemberController) Deactivate(ctx *gin.Context) {
	id := ctx.Param("id")
	if !validateRecordID(ctx, id) {
		return
	}

	if !respondServiceError(ctx, c.memberService.Deactivate(ctx.Request.Context(), id), "deactivate member") {
		return
	}

	Success(ctx, nil)
}
