package post

import (
	"context"
	"errors"
	"fmt"

	"github.com/codepulse-cc/codepulse-app/pkg/constant"
	"github.com/codepulse-cc/codepulse-app/pkg/domain/model"
	"github.com/codepulse-cc/codepulse-app/pkg/domain/repository"
	"github.com/codepulse-cc/codepulse-app/pkg/idgen"
)

// Service 封装了博客文章的业务逻辑。
type Service struct {
	repo repository.PostRepository
	txm  repository.TransactionManager
}

// NewService 是 Post Service 的构造函数。
func NewService(repo repository.PostRepository, txm repository.TransactionManager) *Service {
	return &Service{repo: repo, txm: txm}
}

// toCategoryResponse 将分类领域模型转换为响应 DTO。
func toCategoryResponse(c *model.Category) *model.CategoryResponse {
	if c == nil {
		return nil
	}
	return &model.CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		URLHandle: c.URLHandle,
	}
}

// toAPIResponse 将文章领域模型转换为响应 DTO。
// categories 传 nil 时沿用模型自带的分类集合。
func (s *Service) toAPIResponse(p *model.Post, resolved []*model.Category) *model.PostResponse {
	if p == nil {
		return nil
	}

	source := p.Categories
	if resolved != nil {
		source = resolved
	}
	categories := make([]*model.CategoryResponse, len(source))
	for i, c := range source {
		categories[i] = toCategoryResponse(c)
	}

	return &model.PostResponse{
		ID:               p.ID,
		Author:           p.Author,
		Title:            p.Title,
		ShortDescription: p.ShortDescription,
		Content:          p.Content,
		FeaturedImageURL: p.FeaturedImageURL,
		PublishedDate:    p.PublishedDate,
		IsVisible:        p.IsVisible,
		URLHandle:        p.URLHandle,
		Categories:       categories,
	}
}

// resolveCategories 逐个解析请求携带的分类公共 ID。
// 解码失败或记录不存在的 ID 会被静默丢弃，保留成功解析的顺序。
func resolveCategories(ctx context.Context, categoryRepo repository.CategoryRepository, publicIDs []string) ([]uint, []*model.Category, error) {
	dbIDs := make([]uint, 0, len(publicIDs))
	resolved := make([]*model.Category, 0, len(publicIDs))

	for _, publicID := range publicIDs {
		dbID, entityType, err := idgen.DecodePublicID(publicID)
		if err != nil || entityType != idgen.EntityTypeCategory {
			continue
		}

		c, err := categoryRepo.GetByID(ctx, publicID)
		if err != nil {
			if errors.Is(err, constant.ErrNotFound) {
				continue
			}
			return nil, nil, fmt.Errorf("解析分类 '%s' 失败: %w", publicID, err)
		}

		dbIDs = append(dbIDs, dbID)
		resolved = append(resolved, c)
	}

	return dbIDs, resolved, nil
}

// Create 处理创建文章的业务逻辑：解析分类引用并在同一事务中落库。
func (s *Service) Create(ctx context.Context, req *model.CreatePostRequest) (*model.PostResponse, error) {
	var created *model.Post
	var resolved []*model.Category

	err := s.txm.Do(ctx, func(repos repository.Repositories) error {
		dbIDs, categories, err := resolveCategories(ctx, repos.Category, req.Categories)
		if err != nil {
			return err
		}
		resolved = categories

		params := &model.CreatePostParams{
			Author:           req.Author,
			Title:            req.Title,
			ShortDescription: req.ShortDescription,
			Content:          req.Content,
			FeaturedImageURL: req.FeaturedImageURL,
			PublishedDate:    req.PublishedDate,
			IsVisible:        req.IsVisible,
			URLHandle:        req.URLHandle,
			CategoryDBIDs:    dbIDs,
		}

		created, err = repos.Post.Create(ctx, params)
		return err
	})
	if err != nil {
		return nil, err
	}

	return s.toAPIResponse(created, resolved), nil
}

// GetAll 返回全部文章，分类集合随文章一并加载。
func (s *Service) GetAll(ctx context.Context) ([]*model.PostResponse, error) {
	posts, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*model.PostResponse, len(posts))
	for i, p := range posts {
		responses[i] = s.toAPIResponse(p, nil)
	}
	return responses, nil
}

// GetByID 按公共 ID 获取单篇文章。
func (s *Service) GetByID(ctx context.Context, publicID string) (*model.PostResponse, error) {
	p, err := s.repo.GetByID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	return s.toAPIResponse(p, nil), nil
}

// GetByURLHandle 按短链接标识获取单篇文章。
func (s *Service) GetByURLHandle(ctx context.Context, urlHandle string) (*model.PostResponse, error) {
	p, err := s.repo.GetByURLHandle(ctx, urlHandle)
	if err != nil {
		return nil, err
	}
	return s.toAPIResponse(p, nil), nil
}

// Update 处理更新文章的业务逻辑：标量字段整体覆盖，分类集合全量替换。
func (s *Service) Update(ctx context.Context, publicID string, req *model.UpdatePostRequest) (*model.PostResponse, error) {
	var updated *model.Post
	var resolved []*model.Category

	err := s.txm.Do(ctx, func(repos repository.Repositories) error {
		dbIDs, categories, err := resolveCategories(ctx, repos.Category, req.Categories)
		if err != nil {
			return err
		}
		resolved = categories

		params := &model.UpdatePostParams{
			Author:           req.Author,
			Title:            req.Title,
			ShortDescription: req.ShortDescription,
			Content:          req.Content,
			FeaturedImageURL: req.FeaturedImageURL,
			PublishedDate:    req.PublishedDate,
			IsVisible:        req.IsVisible,
			URLHandle:        req.URLHandle,
			CategoryDBIDs:    dbIDs,
		}

		updated, err = repos.Post.Update(ctx, publicID, params)
		return err
	})
	if err != nil {
		return nil, err
	}

	return s.toAPIResponse(updated, resolved), nil
}

// Delete 删除文章并返回删除前的快照，响应不附带分类集合。
func (s *Service) Delete(ctx context.Context, publicID string) (*model.PostResponse, error) {
	deleted, err := s.repo.Delete(ctx, publicID)
	if err != nil {
		return nil, err
	}
	return s.toAPIResponse(deleted, nil), nil
}
