package ent

import (
	"context"

	"github.com/codepulse-cc/codepulse-app/ent"
	"github.com/codepulse-cc/codepulse-app/ent/category"
	"github.com/codepulse-cc/codepulse-app/pkg/constant"
	"github.com/codepulse-cc/codepulse-app/pkg/domain/model"
	"github.com/codepulse-cc/codepulse-app/pkg/domain/repository"
	"github.com/codepulse-cc/codepulse-app/pkg/idgen"
)

type categoryRepo struct {
	db *ent.Client
}

// NewCategoryRepo 是 categoryRepo 的构造函数。
func NewCategoryRepo(db *ent.Client) repository.CategoryRepository {
	return &categoryRepo{db: db}
}

// decodeCategoryID 将公共 ID 解码为内部数据库 ID。
// 解码失败或实体类型不匹配时按"记录不存在"处理，调用方无须区分。
func decodeCategoryID(publicID string) (uint, error) {
	dbID, entityType, err := idgen.DecodePublicID(publicID)
	if err != nil || entityType != idgen.EntityTypeCategory {
		return 0, constant.ErrNotFound
	}
	return dbID, nil
}

// toModel 将 ent 实体转换为领域模型。
func (r *categoryRepo) toModel(c *ent.Category) *model.Category {
	if c == nil {
		return nil
	}
	publicID, _ := idgen.GeneratePublicID(c.ID, idgen.EntityTypeCategory)
	return &model.Category{
		ID:        publicID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Name:      c.Name,
		URLHandle: c.URLHandle,
	}
}

func (r *categoryRepo) Create(ctx context.Context, req *model.CreateCategoryRequest) (*model.Category, error) {
	entity, err := r.db.Category.Create().
		SetName(req.Name).
		SetURLHandle(req.URLHandle).
		Save(ctx)
	if err != nil {
		return nil, err
	}
	return r.toModel(entity), nil
}

func (r *categoryRepo) GetByID(ctx context.Context, publicID string) (*model.Category, error) {
	dbID, err := decodeCategoryID(publicID)
	if err != nil {
		return nil, err
	}
	entity, err := r.db.Category.Query().
		Where(category.ID(dbID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, err
	}
	return r.toModel(entity), nil
}

func (r *categoryRepo) Update(ctx context.Context, publicID string, req *model.UpdateCategoryRequest) (*model.Category, error) {
	dbID, err := decodeCategoryID(publicID)
	if err != nil {
		return nil, err
	}
	entity, err := r.db.Category.UpdateOneID(dbID).
		SetName(req.Name).
		SetURLHandle(req.URLHandle).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, err
	}
	return r.toModel(entity), nil
}

func (r *categoryRepo) Delete(ctx context.Context, publicID string) (*model.Category, error) {
	dbID, err := decodeCategoryID(publicID)
	if err != nil {
		return nil, err
	}
	// 先取删除前快照，约定删除成功后将其返回
	entity, err := r.db.Category.Query().
		Where(category.ID(dbID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, err
	}
	if err := r.db.Category.DeleteOneID(dbID).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, err
	}
	return r.toModel(entity), nil
}

// List 按固定的 过滤 → 排序 → 分页 顺序组合查询。
func (r *categoryRepo) List(ctx context.Context, opts repository.ListCategoriesOptions) ([]*model.Category, error) {
	q := r.db.Category.Query()

	if opts.NameContains != "" {
		q = q.Where(category.NameContains(opts.NameContains))
	}

	var sortField string
	switch opts.SortBy {
	case repository.CategorySortName:
		sortField = category.FieldName
	case repository.CategorySortURLHandle:
		sortField = category.FieldURLHandle
	}
	if sortField != "" {
		if opts.Ascending {
			q = q.Order(ent.Asc(sortField))
		} else {
			q = q.Order(ent.Desc(sortField))
		}
	}

	if opts.Offset > 0 {
		q = q.Offset(opts.Offset)
	}
	q = q.Limit(opts.Limit)

	entities, err := q.All(ctx)
	if err != nil {
		return nil, err
	}

	models := make([]*model.Category, len(entities))
	for i, entity := range entities {
		models[i] = r.toModel(entity)
	}
	return models, nil
}

func (r *categoryRepo) Count(ctx context.Context) (int, error) {
	return r.db.Category.Query().Count(ctx)
}
