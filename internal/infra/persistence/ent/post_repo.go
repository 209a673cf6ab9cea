package ent

import (
	"context"

	"github.com/codepulse-cc/codepulse-app/ent"
	"github.com/codepulse-cc/codepulse-app/ent/post"
	"github.com/codepulse-cc/codepulse-app/pkg/constant"
	"github.com/codepulse-cc/codepulse-app/pkg/domain/model"
	"github.com/codepulse-cc/codepulse-app/pkg/domain/repository"
	"github.com/codepulse-cc/codepulse-app/pkg/idgen"
)

type postRepo struct {
	db *ent.Client
}

// NewPostRepo 是 postRepo 的构造函数。
func NewPostRepo(db *ent.Client) repository.PostRepository {
	return &postRepo{db: db}
}

func decodePostID(publicID string) (uint, error) {
	dbID, entityType, err := idgen.DecodePublicID(publicID)
	if err != nil || entityType != idgen.EntityTypePost {
		return 0, constant.ErrNotFound
	}
	return dbID, nil
}

// toModel 将 ent.Post 实体转换为领域模型，携带已加载的分类边。
func (r *postRepo) toModel(p *ent.Post) *model.Post {
	if p == nil {
		return nil
	}
	publicID, _ := idgen.GeneratePublicID(p.ID, idgen.EntityTypePost)

	var categories []*model.Category
	if p.Edges.Categories != nil {
		categories = make([]*model.Category, len(p.Edges.Categories))
		for i, c := range p.Edges.Categories {
			categoryPublicID, _ := idgen.GeneratePublicID(c.ID, idgen.EntityTypeCategory)
			categories[i] = &model.Category{
				ID:        categoryPublicID,
				CreatedAt: c.CreatedAt,
				UpdatedAt: c.UpdatedAt,
				Name:      c.Name,
				URLHandle: c.URLHandle,
			}
		}
	}

	return &model.Post{
		ID:               publicID,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
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

func (r *postRepo) toModelSlice(entities []*ent.Post) []*model.Post {
	models := make([]*model.Post, len(entities))
	for i, entity := range entities {
		models[i] = r.toModel(entity)
	}
	return models
}

func (r *postRepo) Create(ctx context.Context, params *model.CreatePostParams) (*model.Post, error) {
	saved, err := r.db.Post.Create().
		SetAuthor(params.Author).
		SetTitle(params.Title).
		SetShortDescription(params.ShortDescription).
		SetContent(params.Content).
		SetFeaturedImageURL(params.FeaturedImageURL).
		SetPublishedDate(params.PublishedDate).
		SetIsVisible(params.IsVisible).
		SetURLHandle(params.URLHandle).
		AddCategoryIDs(params.CategoryDBIDs...).
		Save(ctx)
	if err != nil {
		return nil, err
	}

	// 重新加载以附带分类边
	entity, err := r.db.Post.Query().
		Where(post.ID(saved.ID)).
		WithCategories().
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return r.toModel(entity), nil
}

func (r *postRepo) GetAll(ctx context.Context) ([]*model.Post, error) {
	entities, err := r.db.Post.Query().
		WithCategories().
		All(ctx)
	if err != nil {
		return nil, err
	}
	return r.toModelSlice(entities), nil
}

func (r *postRepo) GetByID(ctx context.Context, publicID string) (*model.Post, error) {
	dbID, err := decodePostID(publicID)
	if err != nil {
		return nil, err
	}
	entity, err := r.db.Post.Query().
		Where(post.ID(dbID)).
		WithCategories().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, err
	}
	return r.toModel(entity), nil
}

// GetByURLHandle 返回第一条匹配记录，短链接标识不保证唯一。
func (r *postRepo) GetByURLHandle(ctx context.Context, urlHandle string) (*model.Post, error) {
	entity, err := r.db.Post.Query().
		Where(post.URLHandle(urlHandle)).
		WithCategories().
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, err
	}
	return r.toModel(entity), nil
}

// Update 整体覆盖标量字段，并以清空后重加的方式全量替换分类集合。
func (r *postRepo) Update(ctx context.Context, publicID string, params *model.UpdatePostParams) (*model.Post, error) {
	dbID, err := decodePostID(publicID)
	if err != nil {
		return nil, err
	}
	saved, err := r.db.Post.UpdateOneID(dbID).
		SetAuthor(params.Author).
		SetTitle(params.Title).
		SetShortDescription(params.ShortDescription).
		SetContent(params.Content).
		SetFeaturedImageURL(params.FeaturedImageURL).
		SetPublishedDate(params.PublishedDate).
		SetIsVisible(params.IsVisible).
		SetURLHandle(params.URLHandle).
		ClearCategories().
		AddCategoryIDs(params.CategoryDBIDs...).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, err
	}

	entity, err := r.db.Post.Query().
		Where(post.ID(saved.ID)).
		WithCategories().
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return r.toModel(entity), nil
}

// Delete 删除路径不加载分类边，返回的快照 Categories 为 nil。
func (r *postRepo) Delete(ctx context.Context, publicID string) (*model.Post, error) {
	dbID, err := decodePostID(publicID)
	if err != nil {
		return nil, err
	}
	entity, err := r.db.Post.Query().
		Where(post.ID(dbID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, err
	}
	if err := r.db.Post.DeleteOneID(dbID).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, err
	}
	return r.toModel(entity), nil
}
