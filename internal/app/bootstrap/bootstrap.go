package bootstrap

import (
	"context"
	"fmt"
	"log"

	"github.com/codepulse-cc/codepulse-app/internal/pkg/security"
	"github.com/codepulse-cc/codepulse-app/pkg/config"
	"github.com/codepulse-cc/codepulse-app/pkg/domain/model"
	"github.com/codepulse-cc/codepulse-app/pkg/domain/repository"
)

// seedGroup 描述一条需要播种的用户组记录。
type seedGroup struct {
	ID          uint
	Name        string
	Description string
}

var defaultUserGroups = []seedGroup{
	{ID: model.UserGroupWriterID, Name: "Writer", Description: "可以创建和管理文章与分类"},
	{ID: model.UserGroupReaderID, Name: "Reader", Description: "只能浏览内容"},
}

// Bootstrapper 负责应用启动时的数据播种。
type Bootstrapper struct {
	txm repository.TransactionManager
	cfg *config.Config
}

// NewBootstrapper 是 Bootstrapper 的构造函数。
func NewBootstrapper(txm repository.TransactionManager, cfg *config.Config) *Bootstrapper {
	return &Bootstrapper{txm: txm, cfg: cfg}
}

// InitializeDatabase 幂等地播种用户组与管理员账号，可安全地重复执行。
func (b *Bootstrapper) InitializeDatabase(ctx context.Context) error {
	log.Println("--- 开始初始化基础数据 ---")

	if err := b.initUserGroups(ctx); err != nil {
		return err
	}
	if err := b.initAdminUser(ctx); err != nil {
		return err
	}

	log.Println("--- 基础数据初始化完成 ---")
	return nil
}

// initUserGroups 检查并初始化默认用户组。
func (b *Bootstrapper) initUserGroups(ctx context.Context) error {
	return b.txm.Do(ctx, func(repos repository.Repositories) error {
		for _, group := range defaultUserGroups {
			if err := repos.UserGroup.Upsert(ctx, group.ID, group.Name, group.Description); err != nil {
				return fmt.Errorf("创建默认用户组 '%s' (ID: %d) 失败: %w", group.Name, group.ID, err)
			}
		}
		return nil
	})
}

// initAdminUser 在管理员账号不存在时创建它，管理员属于 Writer 组。
func (b *Bootstrapper) initAdminUser(ctx context.Context) error {
	adminEmail := b.cfg.GetString(config.KeyAdminEmail)
	adminPassword := b.cfg.GetString(config.KeyAdminPassword)
	if adminEmail == "" || adminPassword == "" {
		return fmt.Errorf("管理员邮箱或密码未配置")
	}

	return b.txm.Do(ctx, func(repos repository.Repositories) error {
		exists, err := repos.User.ExistsByEmail(ctx, adminEmail)
		if err != nil {
			return fmt.Errorf("查询管理员账号失败: %w", err)
		}
		if exists {
			return nil
		}

		passwordHash, err := security.HashPassword(adminPassword)
		if err != nil {
			return fmt.Errorf("管理员密码哈希失败: %w", err)
		}

		if _, err := repos.User.Create(ctx, adminEmail, "Admin", passwordHash, model.UserGroupWriterID); err != nil {
			return fmt.Errorf("创建管理员账号失败: %w", err)
		}
		log.Printf("✅ 已创建管理员账号: %s", adminEmail)
		return nil
	})
}
