package ent

import (
	"context"
	"fmt"

	"github.com/codepulse-cc/codepulse-app/ent"
	"github.com/codepulse-cc/codepulse-app/pkg/domain/repository"
)

// entTransactionManager 是完全基于 Ent 的事务管理器实现。
type entTransactionManager struct {
	entClient *ent.Client
}

// NewEntTransactionManager 是 entTransactionManager 的构造函数。
func NewEntTransactionManager(client *ent.Client) repository.TransactionManager {
	return &entTransactionManager{entClient: client}
}

// Do 开启一个 Ent 事务，并将 Repositories 中的所有仓库绑定到该事务。
func (tm *entTransactionManager) Do(ctx context.Context, fn func(repos repository.Repositories) error) error {
	tx, err := tm.entClient.Tx(ctx)
	if err != nil {
		return fmt.Errorf("开启 Ent 事务失败: %w", err)
	}

	defer func() {
		if v := recover(); v != nil {
			tx.Rollback()
			panic(v)
		}
	}()

	repos := repository.Repositories{
		Category:  NewCategoryRepo(tx.Client()),
		Post:      NewPostRepo(tx.Client()),
		User:      NewUserRepo(tx.Client()),
		UserGroup: NewUserGroupRepo(tx.Client()),
		Image:     NewImageRepo(tx.Client()),
	}

	if err := fn(repos); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("事务执行失败: %w, 回滚事务也失败: %v", err, rerr)
		}
		return err
	}

	return tx.Commit()
}
