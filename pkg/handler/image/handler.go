package image

import (
	"net/http"

	"github.com/codepulse-cc/codepulse-app/pkg/response"
	image_service "github.com/codepulse-cc/codepulse-app/pkg/service/image"

	"github.com/gin-gonic/gin"
)

// Handler 封装了博客图片相关的 HTTP 处理器。
type Handler struct {
	svc *image_service.Service
}

// NewHandler 是 Handler 的构造函数。
func NewHandler(svc *image_service.Service) *Handler {
	return &Handler{svc: svc}
}

// Upload 接收 multipart 表单中的 file 与 title 字段并落盘。
func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "缺少上传文件: "+err.Error())
		return
	}

	title := c.PostForm("title")
	if title == "" {
		title = fileHeader.Filename
	}

	img, err := h.svc.Upload(c.Request.Context(), fileHeader, title)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "上传图片失败: "+err.Error())
		return
	}

	response.JSON(c, img)
}

// List 返回所有已上传图片，最新的在前。
func (h *Handler) List(c *gin.Context) {
	images, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "获取图片列表失败: "+err.Error())
		return
	}

	response.JSON(c, images)
}
