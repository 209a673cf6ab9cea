package model

import "time"

// Image 是博客图片的核心领域模型，二进制内容存放在本地磁盘。
type Image struct {
	ID        string
	CreatedAt time.Time
	FileName  string
	Title     string
	Extension string
	Size      int64
	URL       string
}

// CreateImageParams 是仓储层记录已落盘图片的参数。
type CreateImageParams struct {
	FileName  string
	Title     string
	Extension string
	Size      int64
	URL       string
}

// ImageResponse 定义了图片的标准 API 响应结构
type ImageResponse struct {
	ID        string    `json:"id"`
	FileName  string    `json:"fileName"`
	Title     string    `json:"title"`
	Extension string    `json:"extension"`
	Size      int64     `json:"size"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
}
