package model

import "time"

// --- 核心领域对象 (Domain Object) ---

// Post 是博客文章的核心领域模型，携带已解析的分类集合。
type Post struct {
	ID               string
	CreatedAt        time.Time
	UpdatedAt        time.Time
	Author           string
	Title            string
	ShortDescription string
	Content          string
	FeaturedImageURL string
	PublishedDate    time.Time
	IsVisible        bool
	URLHandle        string
	Categories       []*Category
}

// CreatePostParams 是仓储层创建文章的参数，分类已被解析为内部数据库 ID。
type CreatePostParams struct {
	Author           string
	Title            string
	ShortDescription string
	Content          string
	FeaturedImageURL string
	PublishedDate    time.Time
	IsVisible        bool
	URLHandle        string
	CategoryDBIDs    []uint
}

// UpdatePostParams 是仓储层更新文章的参数，标量字段与分类集合整体替换。
type UpdatePostParams struct {
	Author           string
	Title            string
	ShortDescription string
	Content          string
	FeaturedImageURL string
	PublishedDate    time.Time
	IsVisible        bool
	URLHandle        string
	CategoryDBIDs    []uint
}

// --- API 数据传输对象 (Data Transfer Objects) ---

// CreatePostRequest 定义了创建文章的请求体，categories 为分类公共 ID 列表。
type CreatePostRequest struct {
	Author           string    `json:"author"`
	Title            string    `json:"title"`
	ShortDescription string    `json:"shortDescription"`
	Content          string    `json:"content"`
	FeaturedImageURL string    `json:"featuredImageUrl"`
	PublishedDate    time.Time `json:"publishedDate"`
	IsVisible        bool      `json:"isVisible"`
	URLHandle        string    `json:"urlHandle"`
	Categories       []string  `json:"categories"`
}

// UpdatePostRequest 定义了更新文章的请求体，语义为整体替换而非合并。
type UpdatePostRequest struct {
	Author           string    `json:"author"`
	Title            string    `json:"title"`
	ShortDescription string    `json:"shortDescription"`
	Content          string    `json:"content"`
	FeaturedImageURL string    `json:"featuredImageUrl"`
	PublishedDate    time.Time `json:"publishedDate"`
	IsVisible        bool      `json:"isVisible"`
	URLHandle        string    `json:"urlHandle"`
	Categories       []string  `json:"categories"`
}

// PostResponse 定义了文章的标准 API 响应结构。
// 删除接口按约定不附带分类集合，Categories 保持为 nil。
type PostResponse struct {
	ID               string              `json:"id"`
	Author           string              `json:"author"`
	Title            string              `json:"title"`
	ShortDescription string              `json:"shortDescription"`
	Content          string              `json:"content"`
	FeaturedImageURL string              `json:"featuredImageUrl"`
	PublishedDate    time.Time           `json:"publishedDate"`
	IsVisible        bool                `json:"isVisible"`
	URLHandle        string              `json:"urlHandle"`
	Categories       []*CategoryResponse `json:"categories"`
}
