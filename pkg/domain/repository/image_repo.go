package repository

import (
	"context"

	"github.com/codepulse-cc/codepulse-app/pkg/domain/model"
)

// ImageRepository 定义了博客图片元数据的数据仓库接口。
type ImageRepository interface {
	Create(ctx context.Context, params *model.CreateImageParams) (*model.Image, error)
	// List 返回所有图片，最新的在前
	List(ctx context.Context) ([]*model.Image, error)
}
