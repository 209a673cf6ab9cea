package post

import (
	"errors"
	"net/http"

	"github.com/codepulse-cc/codepulse-app/pkg/constant"
	"github.com/codepulse-cc/codepulse-app/pkg/domain/model"
	"github.com/codepulse-cc/codepulse-app/pkg/response"
	post_service "github.com/codepulse-cc/codepulse-app/pkg/service/post"

	"github.com/gin-gonic/gin"
)

// Handler 封装了所有与博客文章相关的 HTTP 处理器。
type Handler struct {
	svc *post_service.Service
}

// NewHandler 是 Handler 的构造函数。
func NewHandler(svc *post_service.Service) *Handler {
	return &Handler{svc: svc}
}

// Create 创建新文章，请求中的 categories 为分类公共 ID 列表。
func (h *Handler) Create(c *gin.Context) {
	var req model.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数无效: "+err.Error())
		return
	}

	post, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "创建文章失败: "+err.Error())
		return
	}

	response.JSON(c, post)
}

// List 返回全部文章。
func (h *Handler) List(c *gin.Context) {
	posts, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "获取文章列表失败: "+err.Error())
		return
	}

	response.JSON(c, posts)
}

// Get 返回单篇文章。路径参数优先按公共 ID 解析，
// 解析不到再按短链接标识查找。
func (h *Handler) Get(c *gin.Context) {
	slug := c.Param("slug")

	post, err := h.svc.GetByID(c.Request.Context(), slug)
	if err != nil && errors.Is(err, constant.ErrNotFound) {
		post, err = h.svc.GetByURLHandle(c.Request.Context(), slug)
	}
	if err != nil {
		if errors.Is(err, constant.ErrNotFound) {
			response.NotFound(c)
			return
		}
		response.Fail(c, http.StatusInternalServerError, "获取文章失败: "+err.Error())
		return
	}

	response.JSON(c, post)
}

// Update 整体更新文章，分类集合全量替换。
func (h *Handler) Update(c *gin.Context) {
	var req model.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数无效: "+err.Error())
		return
	}

	post, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, constant.ErrNotFound) {
			response.NotFound(c)
			return
		}
		response.Fail(c, http.StatusInternalServerError, "更新文章失败: "+err.Error())
		return
	}

	response.JSON(c, post)
}

// Delete 删除文章并返回删除前的快照（不含分类）。
func (h *Handler) Delete(c *gin.Context) {
	post, err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, constant.ErrNotFound) {
			response.NotFound(c)
			return
		}
		response.Fail(c, http.StatusInternalServerError, "删除文章失败: "+err.Error())
		return
	}

	response.JSON(c, post)
}
