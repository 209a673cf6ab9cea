package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Annotations of the User.
func (User) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("用户表"),
	}
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),

		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),

		field.String("email").
			Comment("登录邮箱").
			Unique().
			NotEmpty(),

		field.String("nickname").
			Comment("显示昵称").
			Optional(),

		field.String("password_hash").
			Comment("bcrypt 密码哈希").
			Sensitive().
			NotEmpty(),

		field.Int("status").
			Comment("用户状态：1-正常，2-禁用").
			Default(1),

		field.Time("last_login_at").
			Comment("最后登录时间").
			Optional().
			Nillable(),

		field.Uint("user_group_id").
			Comment("所属用户组ID"),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user_group", UserGroup.Type).
			Ref("users").
			Field("user_group_id").
			Unique().
			Required(),
	}
}
