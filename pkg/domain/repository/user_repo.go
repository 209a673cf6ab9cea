package repository

import (
	"context"
	"time"

	"github.com/codepulse-cc/codepulse-app/pkg/domain/model"
)

// UserRepository 定义了用户的数据仓库接口。
type UserRepository interface {
	Create(ctx context.Context, email, nickname, passwordHash string, groupID uint) (*model.User, error)
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateLastLogin(ctx context.Context, id uint, at time.Time) error
}

// UserGroupRepository 定义了用户组的数据仓库接口。
type UserGroupRepository interface {
	GetByID(ctx context.Context, id uint) (*model.UserGroup, error)
	// Upsert 按固定 ID 幂等写入播种记录
	Upsert(ctx context.Context, id uint, name, description string) error
}
