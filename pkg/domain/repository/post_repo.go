package repository

import (
	"context"

	"github.com/codepulse-cc/codepulse-app/pkg/domain/model"
)

// PostRepository 定义了博客文章的数据仓库接口。
// 读取操作均急加载文章的分类集合；Delete 返回的快照不含分类。
type PostRepository interface {
	Create(ctx context.Context, params *model.CreatePostParams) (*model.Post, error)
	GetAll(ctx context.Context) ([]*model.Post, error)
	GetByID(ctx context.Context, publicID string) (*model.Post, error)
	GetByURLHandle(ctx context.Context, urlHandle string) (*model.Post, error)
	// Update 整体覆盖标量字段并全量替换分类集合
	Update(ctx context.Context, publicID string, params *model.UpdatePostParams) (*model.Post, error)
	// Delete 删除记录并返回删除前的快照（不含分类）
	Delete(ctx context.Context, publicID string) (*model.Post, error)
}
