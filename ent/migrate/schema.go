// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CategoriesColumns holds the columns for the "categories" table.
	CategoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Comment: "分类名称"},
		{Name: "url_handle", Type: field.TypeString, Comment: "短链接标识"},
	}
	// CategoriesTable holds the schema information for the "categories" table.
	CategoriesTable = &schema.Table{
		Name:       "categories",
		Comment:    "文章分类表",
		Columns:    CategoriesColumns,
		PrimaryKey: []*schema.Column{CategoriesColumns[0]},
	}
	// ImagesColumns holds the columns for the "images" table.
	ImagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "file_name", Type: field.TypeString, Comment: "磁盘上的文件名（不含扩展名）"},
		{Name: "title", Type: field.TypeString, Nullable: true, Comment: "图片标题"},
		{Name: "extension", Type: field.TypeString, Comment: "文件扩展名，例如 .png"},
		{Name: "size", Type: field.TypeInt64, Comment: "文件大小（字节）"},
		{Name: "url", Type: field.TypeString, Comment: "对外访问URL"},
	}
	// ImagesTable holds the schema information for the "images" table.
	ImagesTable = &schema.Table{
		Name:       "images",
		Comment:    "博客图片表，二进制内容存储在本地磁盘",
		Columns:    ImagesColumns,
		PrimaryKey: []*schema.Column{ImagesColumns[0]},
	}
	// PostsColumns holds the columns for the "posts" table.
	PostsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "author", Type: field.TypeString, Comment: "文章作者名称"},
		{Name: "title", Type: field.TypeString, Comment: "文章标题"},
		{Name: "short_description", Type: field.TypeString, Nullable: true, Comment: "文章摘要"},
		{Name: "content", Type: field.TypeString, Nullable: true, Size: 2147483647, Comment: "文章正文"},
		{Name: "featured_image_url", Type: field.TypeString, Nullable: true, Comment: "封面图URL"},
		{Name: "published_date", Type: field.TypeTime, Comment: "发布时间"},
		{Name: "is_visible", Type: field.TypeBool, Comment: "是否对外可见", Default: true},
		{Name: "url_handle", Type: field.TypeString, Comment: "用于人类可读访问的短链接标识，不保证唯一"},
	}
	// PostsTable holds the schema information for the "posts" table.
	PostsTable = &schema.Table{
		Name:       "posts",
		Comment:    "博客文章表",
		Columns:    PostsColumns,
		PrimaryKey: []*schema.Column{PostsColumns[0]},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "email", Type: field.TypeString, Unique: true, Comment: "登录邮箱"},
		{Name: "nickname", Type: field.TypeString, Nullable: true, Comment: "显示昵称"},
		{Name: "password_hash", Type: field.TypeString, Comment: "bcrypt 密码哈希"},
		{Name: "status", Type: field.TypeInt, Comment: "用户状态：1-正常，2-禁用", Default: 1},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true, Comment: "最后登录时间"},
		{Name: "user_group_id", Type: field.TypeUint, Comment: "所属用户组ID"},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Comment:    "用户表",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "users_user_groups_users",
				Columns:    []*schema.Column{UsersColumns[8]},
				RefColumns: []*schema.Column{UserGroupsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// UserGroupsColumns holds the columns for the "user_groups" table.
	UserGroupsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Comment: "用户组名称"},
		{Name: "description", Type: field.TypeString, Nullable: true, Comment: "用户组描述"},
	}
	// UserGroupsTable holds the schema information for the "user_groups" table.
	UserGroupsTable = &schema.Table{
		Name:       "user_groups",
		Comment:    "用户组表，启动时播种固定记录",
		Columns:    UserGroupsColumns,
		PrimaryKey: []*schema.Column{UserGroupsColumns[0]},
	}
	// PostCategoriesColumns holds the columns for the "post_categories" table.
	PostCategoriesColumns = []*schema.Column{
		{Name: "post_id", Type: field.TypeUint},
		{Name: "category_id", Type: field.TypeUint},
	}
	// PostCategoriesTable holds the schema information for the "post_categories" table.
	PostCategoriesTable = &schema.Table{
		Name:       "post_categories",
		Columns:    PostCategoriesColumns,
		PrimaryKey: []*schema.Column{PostCategoriesColumns[0], PostCategoriesColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "post_categories_post_id",
				Columns:    []*schema.Column{PostCategoriesColumns[0]},
				RefColumns: []*schema.Column{PostsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "post_categories_category_id",
				Columns:    []*schema.Column{PostCategoriesColumns[1]},
				RefColumns: []*schema.Column{CategoriesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CategoriesTable,
		ImagesTable,
		PostsTable,
		UsersTable,
		UserGroupsTable,
		PostCategoriesTable,
	}
)

func init() {
	UsersTable.ForeignKeys[0].RefTable = UserGroupsTable
	PostCategoriesTable.ForeignKeys[0].RefTable = PostsTable
	PostCategoriesTable.ForeignKeys[1].RefTable = CategoriesTable
}
