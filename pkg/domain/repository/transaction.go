package repository

import "context"

// Repositories 结构体聚合了所有在单个事务中可能用到的仓储接口。
type Repositories struct {
	Category  CategoryRepository
	Post      PostRepository
	User      UserRepository
	UserGroup UserGroupRepository
	Image     ImageRepository
}

// TransactionManager 定义了事务管理器的接口。
// Do 方法接收一个函数，该函数会在一个事务中被调用，并获得一组
// 绑定到该事务的仓储。函数返回错误时事务回滚，否则提交。
type TransactionManager interface {
	Do(ctx context.Context, fn func(repos Repositories) error) error
}
