package ent

import (
	"context"
	"time"

	"github.com/codepulse-cc/codepulse-app/ent"
	"github.com/codepulse-cc/codepulse-app/ent/user"
	"github.com/codepulse-cc/codepulse-app/pkg/constant"
	"github.com/codepulse-cc/codepulse-app/pkg/domain/model"
	"github.com/codepulse-cc/codepulse-app/pkg/domain/repository"
)

type userRepo struct {
	db *ent.Client
}

// NewUserRepo 是 userRepo 的构造函数。
func NewUserRepo(db *ent.Client) repository.UserRepository {
	return &userRepo{db: db}
}

// toModel 将 ent.User 转换为领域模型，用户组边已加载时一并转换。
func (r *userRepo) toModel(u *ent.User) *model.User {
	if u == nil {
		return nil
	}
	var group *model.UserGroup
	if u.Edges.UserGroup != nil {
		group = &model.UserGroup{
			ID:          u.Edges.UserGroup.ID,
			Name:        u.Edges.UserGroup.Name,
			Description: u.Edges.UserGroup.Description,
		}
	}
	return &model.User{
		ID:           u.ID,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
		Email:        u.Email,
		Nickname:     u.Nickname,
		PasswordHash: u.PasswordHash,
		Status:       u.Status,
		LastLoginAt:  u.LastLoginAt,
		UserGroup:    group,
	}
}

func (r *userRepo) Create(ctx context.Context, email, nickname, passwordHash string, groupID uint) (*model.User, error) {
	saved, err := r.db.User.Create().
		SetEmail(email).
		SetNickname(nickname).
		SetPasswordHash(passwordHash).
		SetUserGroupID(groupID).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, constant.ErrEmailExists
		}
		return nil, err
	}
	return r.FindByID(ctx, saved.ID)
}

func (r *userRepo) FindByID(ctx context.Context, id uint) (*model.User, error) {
	entity, err := r.db.User.Query().
		Where(user.ID(id)).
		WithUserGroup().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, err
	}
	return r.toModel(entity), nil
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	entity, err := r.db.User.Query().
		Where(user.Email(email)).
		WithUserGroup().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, err
	}
	return r.toModel(entity), nil
}

func (r *userRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.db.User.Query().
		Where(user.Email(email)).
		Exist(ctx)
}

func (r *userRepo) UpdateLastLogin(ctx context.Context, id uint, at time.Time) error {
	return r.db.User.UpdateOneID(id).
		SetLastLoginAt(at).
		Exec(ctx)
}
