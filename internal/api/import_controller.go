package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/JohnPitter/church-management-sub005/internal/service"
)

// 导入文件大小上限,旧系统全量导出远小于此值
const maxImportSize = 32 << 20 // 32 MB

// ImportController 旧系统数据导入控制器
type ImportController struct {
	importService service.ImportService
}

// NewImportController 创建导入控制器
func NewImportController(importService service.ImportService) *ImportController {
	return &ImportController{
		importService: importService,
	}
}

// Import 导入旧系统数据
// @Summary      导入旧系统导出的 JSON 数据
// @Description  接受旧系统全量导出文件,按 CPF 去重,重复导入同一文件不产生重复记录
// @Tags         数据导入
// @Accept       json
// @Produce      json
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /import [post]
// @Security     BearerAuth
func (c *ImportController) Import(ctx *gin.Context) {
	var data []byte
	var err error

	// 支持 multipart 文件上传和原始 JSON 请求体两种方式
	if file, fileErr := ctx.FormFile("file"); fileErr == nil {
		f, openErr := file.Open()
		if openErr != nil {
			Error(ctx, http.StatusBadRequest, "invalid upload", openErr.Error())
			return
		}
		defer f.Close()
		data, err = io.ReadAll(io.LimitReader(f, maxImportSize))
	} else {
		data, err = io.ReadAll(io.LimitReader(ctx.Request.Body, maxImportSize))
	}
	if err != nil {
		Error(ctx, http.StatusBadRequest, "failed to read import data", err.Error())
		return
	}
	if len(data) == 0 {
		Error(ctx, http.StatusBadRequest, "invalid request", "empty import payload")
		return
	}

	summary, err := c.importService.Import(ctx.Request.Context(), data)
	if err != nil {
		Error(ctx, http.StatusBadRequest, "failed to import data", err.Error())
		return
	}

	Success(ctx, summary)
}
