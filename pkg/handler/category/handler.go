package category

import (
	"errors"
	"net/http"

	"github.com/codepulse-cc/codepulse-app/pkg/constant"
	"github.com/codepulse-cc/codepulse-app/pkg/domain/model"
	"github.com/codepulse-cc/codepulse-app/pkg/response"
	category_service "github.com/codepulse-cc/codepulse-app/pkg/service/category"

	"github.com/gin-gonic/gin"
)

// Handler 封装了所有与文章分类相关的 HTTP 处理器。
type Handler struct {
	svc *category_service.Service
}

// NewHandler 是 Handler 的构造函数。
func NewHandler(svc *category_service.Service) *Handler {
	return &Handler{svc: svc}
}

// Create 创建新分类。
func (h *Handler) Create(c *gin.Context) {
	var req model.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数无效: "+err.Error())
		return
	}

	category, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "创建分类失败: "+err.Error())
		return
	}

	response.JSON(c, category)
}

// List 按查询参数返回分类列表。
func (h *Handler) List(c *gin.Context) {
	var query model.ListCategoriesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Fail(c, http.StatusBadRequest, "查询参数无效: "+err.Error())
		return
	}

	categories, err := h.svc.List(c.Request.Context(), query)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "获取分类列表失败: "+err.Error())
		return
	}

	response.JSON(c, categories)
}

// Count 返回分类总数。
func (h *Handler) Count(c *gin.Context) {
	count, err := h.svc.Count(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "统计分类数量失败: "+err.Error())
		return
	}

	response.JSON(c, count)
}

// Get 按公共 ID 返回单个分类。
func (h *Handler) Get(c *gin.Context) {
	category, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, constant.ErrNotFound) {
			response.NotFound(c)
			return
		}
		response.Fail(c, http.StatusInternalServerError, "获取分类失败: "+err.Error())
		return
	}

	response.JSON(c, category)
}

// Update 更新分类。
func (h *Handler) Update(c *gin.Context) {
	var req model.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数无效: "+err.Error())
		return
	}

	category, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, constant.ErrNotFound) {
			response.NotFound(c)
			return
		}
		response.Fail(c, http.StatusInternalServerError, "更新分类失败: "+err.Error())
		return
	}

	response.JSON(c, category)
}

// Delete 删除分类并返回删除前的快照。
func (h *Handler) Delete(c *gin.Context) {
	category, err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, constant.ErrNotFound) {
			response.NotFound(c)
			return
		}
		response.Fail(c, http.StatusInternalServerError, "删除分类失败: "+err.Error())
		return
	}

	response.JSON(c, category)
}
