package ent

import (
	"context"

	"github.com/codepulse-cc/codepulse-app/ent"
	"github.com/codepulse-cc/codepulse-app/ent/usergroup"
	"github.com/codepulse-cc/codepulse-app/pkg/constant"
	"github.com/codepulse-cc/codepulse-app/pkg/domain/model"
	"github.com/codepulse-cc/codepulse-app/pkg/domain/repository"
)

type userGroupRepo struct {
	db *ent.Client
}

// NewUserGroupRepo 是 userGroupRepo 的构造函数。
func NewUserGroupRepo(db *ent.Client) repository.UserGroupRepository {
	return &userGroupRepo{db: db}
}

func (r *userGroupRepo) GetByID(ctx context.Context, id uint) (*model.UserGroup, error) {
	entity, err := r.db.UserGroup.Query().
		Where(usergroup.ID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, err
	}
	return &model.UserGroup{
		ID:          entity.ID,
		Name:        entity.Name,
		Description: entity.Description,
	}, nil
}

// Upsert 按固定 ID 幂等写入播种记录，已存在时不做任何修改。
func (r *userGroupRepo) Upsert(ctx context.Context, id uint, name, description string) error {
	exists, err := r.db.UserGroup.Query().
		Where(usergroup.ID(id)).
		Exist(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return r.db.UserGroup.Create().
		SetID(id).
		SetName(name).
		SetDescription(description).
		Exec(ctx)
}
