package repository

import (
	"context"

	"github.com/codepulse-cc/codepulse-app/pkg/domain/model"
)

// CategoryRepository 定义了文章分类的数据仓库接口。
// 所有以公共 ID 为参数的方法在记录不存在（或 ID 无法解码）时
// 返回 constant.ErrNotFound。
type CategoryRepository interface {
	Create(ctx context.Context, req *model.CreateCategoryRequest) (*model.Category, error)
	GetByID(ctx context.Context, publicID string) (*model.Category, error)
	Update(ctx context.Context, publicID string, req *model.UpdateCategoryRequest) (*model.Category, error)
	// Delete 删除记录并返回删除前的快照
	Delete(ctx context.Context, publicID string) (*model.Category, error)
	List(ctx context.Context, opts ListCategoriesOptions) ([]*model.Category, error)
	Count(ctx context.Context) (int, error)
}
