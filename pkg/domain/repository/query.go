package repository

// CategorySortField 枚举分类列表支持的排序字段。
type CategorySortField int

const (
	// CategorySortNone 表示不排序，保持存储默认顺序
	CategorySortNone CategorySortField = iota
	// CategorySortName 按分类名称排序
	CategorySortName
	// CategorySortURLHandle 按短链接标识排序
	CategorySortURLHandle
)

// ListCategoriesOptions 是分类列表查询的规范化选项。
// 组合顺序固定为：过滤 → 排序 → 分页。
type ListCategoriesOptions struct {
	// NameContains 非空时按名称子串过滤，大小写敏感性由存储排序规则决定
	NameContains string
	// SortBy 为 CategorySortNone 时跳过排序
	SortBy CategorySortField
	// Ascending 仅当方向参数等于 "asc"（忽略大小写）时为真
	Ascending bool
	// Offset/Limit 在过滤和排序之后应用
	Offset int
	Limit  int
}
