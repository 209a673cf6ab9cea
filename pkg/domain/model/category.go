package model

import "time"

// --- 核心领域对象 (Domain Object) ---

// Category 是文章分类的核心领域模型。
type Category struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time
	Name      string
	URLHandle string
}

// --- API 数据传输对象 (Data Transfer Objects) ---

// CreateCategoryRequest 定义了创建分类的请求体
type CreateCategoryRequest struct {
	Name      string `json:"name"`
	URLHandle string `json:"urlHandle"`
}

// UpdateCategoryRequest 定义了更新分类的请求体，所有标量字段整体覆盖
type UpdateCategoryRequest struct {
	Name      string `json:"name"`
	URLHandle string `json:"urlHandle"`
}

// ListCategoriesQuery 定义了分类列表接口的查询参数。
// PageNumber/PageSize 使用指针以区分"未传"与"传了零值"。
type ListCategoriesQuery struct {
	Query         string `form:"query"`
	SortBy        string `form:"sortBy"`
	SortDirection string `form:"sortDirection"`
	PageNumber    *int   `form:"pageNumber"`
	PageSize      *int   `form:"pageSize"`
}

// CategoryResponse 定义了分类的标准 API 响应结构
type CategoryResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	URLHandle string `json:"urlHandle"`
}
