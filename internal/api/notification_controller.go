package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/JohnPitter/church-management-sub005/internal/service"
)

// NotificationController 通知控制器
type NotificationController struct {
	notificationService service.NotificationService
}

// NewNotificationController 创建通知控制器
func NewNotificationController(notificationService service.NotificationService) *NotificationController {
	return &NotificationController{
		notificationService: notificationService,
	}
}

// List 列出当前用户的通知
// @Summary      列出当前用户的通知
// @Tags         通知
// @Produce      json
// @Success      200  {object}  Response
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /notifications [get]
// @Security     BearerAuth
func (c *NotificationController) List(ctx *gin.Context) {
	userID := ctx.GetString("user_id")
	if userID == "" {
		Error(ctx, http.StatusUnauthorized, T(ctx, "error.unauthorized"), "missing user identity")
		return
	}

	notifications, err := c.notificationService.ListForUser(userID)
	if err != nil {
		Error(ctx, http.StatusInternalServerError, "failed to list notifications", err.Error())
		return
	}

	Success(ctx, notifications)
}

// MarkRead 标记通知已读
// @Summary      标记通知已读
// @Tags         通知
// @Produce      json
// @Param        id path string true "通知 ID"
// @Success      200  {object}  Response
// @Failure      404  {object}  ErrorResponse
// @Router       /notifications/{id}/read [put]
// @Security     BearerAuth
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	id := ctx.Param("id")
	if !validateRecordID(ctx, id) {
		return
	}

	if !respondServiceError(ctx, c.notificationService.MarkRead(id), "mark notification read") {
		return
	}

	Success(ctx, nil)
}
