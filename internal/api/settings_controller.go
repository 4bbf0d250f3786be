package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/JohnPitter/church-management-sub005/internal/service"
)

// SettingsController 站点设置控制器
type SettingsController struct {
	settingsService service.SettingsService
}

// NewSettingsController 创建站点设置控制器
func NewSettingsController(settingsService service.SettingsService) *SettingsController {
	return &SettingsController{
		settingsService: settingsService,
	}
}

// Get 获取站点设置
// @Summary      获取站点设置
// @Description  设置不存在时返回默认值
// @Tags         站点设置
// @Produce      json
// @Success      200  {object}  Response
// @Failure      500  {object}  ErrorResponse
// @Router       /settings [get]
func (c *SettingsController) Get(ctx *gin.Context) {
	settings, err := c.settingsService.Get()
	if err != nil {
		Error(ctx, http.StatusInternalServerError, "failed to get settings", err.Error())
		return
	}

	Success(ctx, settings)
}

// Update 更新站点设置
// @Summary      更新站点设置
// @Description  整体覆盖,后写者胜
// @Tags         站点设置
// @Accept       json
// @Produce      json
// @Param        request body service.UpdateSettingsRequest true "设置内容"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /settings [put]
// @Security     BearerAuth
func (c *SettingsController) Update(ctx *gin.Context) {
	var req service.UpdateSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	settings, err := c.settingsService.Update(ctx.Request.Context(), &req)
	if err != nil {
		Error(ctx, http.StatusInternalServerError, "failed to update settings", err.Error())
		return
	}

	Success(ctx, settings)
}
