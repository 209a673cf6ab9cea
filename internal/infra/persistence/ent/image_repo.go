package ent

import (
	"context"

	"github.com/codepulse-cc/codepulse-app/ent"
	"github.com/codepulse-cc/codepulse-app/ent/image"
	"github.com/codepulse-cc/codepulse-app/pkg/domain/model"
	"github.com/codepulse-cc/codepulse-app/pkg/domain/repository"
	"github.com/codepulse-cc/codepulse-app/pkg/idgen"
)

type imageRepo struct {
	db *ent.Client
}

// NewImageRepo 是 imageRepo 的构造函数。
func NewImageRepo(db *ent.Client) repository.ImageRepository {
	return &imageRepo{db: db}
}

func (r *imageRepo) toModel(i *ent.Image) *model.Image {
	if i == nil {
		return nil
	}
	publicID, _ := idgen.GeneratePublicID(i.ID, idgen.EntityTypeImage)
	return &model.Image{
		ID:        publicID,
		CreatedAt: i.CreatedAt,
		FileName:  i.FileName,
		Title:     i.Title,
		Extension: i.Extension,
		Size:      i.Size,
		URL:       i.URL,
	}
}

func (r *imageRepo) Create(ctx context.Context, params *model.CreateImageParams) (*model.Image, error) {
	entity, err := r.db.Image.Create().
		SetFileName(params.FileName).
		SetTitle(params.Title).
		SetExtension(params.Extension).
		SetSize(params.Size).
		SetURL(params.URL).
		Save(ctx)
	if err != nil {
		return nil, err
	}
	return r.toModel(entity), nil
}

func (r *imageRepo) List(ctx context.Context) ([]*model.Image, error) {
	entities, err := r.db.Image.Query().
		Order(ent.Desc(image.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}

	models := make([]*model.Image, len(entities))
	for i, entity := range entities {
		models[i] = r.toModel(entity)
	}
	return models, nil
}
