package category

import (
	"context"
	"strings"

	"github.com/codepulse-cc/codepulse-app/pkg/domain/model"
	"github.com/codepulse-cc/codepulse-app/pkg/domain/repository"
)

// defaultPageSize 是列表接口未指定 pageSize 时的默认取数上限。
const defaultPageSize = 100

// Service 封装了文章分类的业务逻辑。
type Service struct {
	repo repository.CategoryRepository
}

// NewService 是 Category Service 的构造函数。
func NewService(repo repository.CategoryRepository) *Service {
	return &Service{repo: repo}
}

// toAPIResponse 是一个私有的辅助函数，将领域模型转换为用于API响应的DTO。
func (s *Service) toAPIResponse(c *model.Category) *model.CategoryResponse {
	if c == nil {
		return nil
	}
	return &model.CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		URLHandle: c.URLHandle,
	}
}

// Create 处理创建新分类的业务逻辑。
func (s *Service) Create(ctx context.Context, req *model.CreateCategoryRequest) (*model.CategoryResponse, error) {
	newCategory, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.toAPIResponse(newCategory), nil
}

// GetByID 按公共 ID 获取单个分类。
func (s *Service) GetByID(ctx context.Context, publicID string) (*model.CategoryResponse, error) {
	c, err := s.repo.GetByID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	return s.toAPIResponse(c), nil
}

// Update 处理更新分类的业务逻辑，标量字段整体覆盖。
func (s *Service) Update(ctx context.Context, publicID string, req *model.UpdateCategoryRequest) (*model.CategoryResponse, error) {
	updated, err := s.repo.Update(ctx, publicID, req)
	if err != nil {
		return nil, err
	}
	return s.toAPIResponse(updated), nil
}

// Delete 删除分类并返回删除前的快照。
func (s *Service) Delete(ctx context.Context, publicID string) (*model.CategoryResponse, error) {
	deleted, err := s.repo.Delete(ctx, publicID)
	if err != nil {
		return nil, err
	}
	return s.toAPIResponse(deleted), nil
}

// Count 返回分类总数。
func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

// List 处理分类列表查询，固定按 过滤 → 排序 → 分页 的顺序组合。
func (s *Service) List(ctx context.Context, q model.ListCategoriesQuery) ([]*model.CategoryResponse, error) {
	categories, err := s.repo.List(ctx, buildListOptions(q))
	if err != nil {
		return nil, err
	}

	responses := make([]*model.CategoryResponse, len(categories))
	for i, c := range categories {
		responses[i] = s.toAPIResponse(c)
	}
	return responses, nil
}

// buildListOptions 把原始查询参数规范化为仓储层的列表选项。
// 规则：
//   - query 非空才参与名称子串过滤；
//   - sortBy 忽略大小写匹配 "name" 或 "url"，其余取值不排序；
//   - 仅当 sortDirection 忽略大小写等于 "asc" 时升序，否则一律降序；
//   - 偏移量 (pageNumber-1)*pageSize 仅在两个分页参数同时给出时生效；
//   - 取数上限为 pageSize，缺省 100。
func buildListOptions(q model.ListCategoriesQuery) repository.ListCategoriesOptions {
	opts := repository.ListCategoriesOptions{
		NameContains: q.Query,
		Limit:        defaultPageSize,
	}

	switch {
	case strings.EqualFold(q.SortBy, "name"):
		opts.SortBy = repository.CategorySortName
	case strings.EqualFold(q.SortBy, "url"):
		opts.SortBy = repository.CategorySortURLHandle
	default:
		opts.SortBy = repository.CategorySortNone
	}
	opts.Ascending = strings.EqualFold(q.SortDirection, "asc")

	if q.PageSize != nil {
		opts.Limit = *q.PageSize
	}
	if q.PageNumber != nil && q.PageSize != nil {
		opts.Offset = (*q.PageNumber - 1) * (*q.PageSize)
	}

	return opts
}
