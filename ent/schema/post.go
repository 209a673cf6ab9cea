package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Post holds the schema definition for the Post entity.
type Post struct {
	ent.Schema
}

// Annotations of the Post.
func (Post) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("博客文章表"),
	}
}

// Fields of the Post.
func (Post) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),

		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),

		field.String("author").
			Comment("文章作者名称").
			NotEmpty(),

		field.String("title").
			Comment("文章标题").
			NotEmpty(),

		field.String("short_description").
			Comment("文章摘要").
			Optional(),

		field.Text("content").
			Comment("文章正文").
			Optional(),

		field.String("featured_image_url").
			Comment("封面图URL").
			Optional(),

		field.Time("published_date").
			Comment("发布时间").
			Default(time.Now),

		field.Bool("is_visible").
			Comment("是否对外可见").
			Default(true),

		field.String("url_handle").
			Comment("用于人类可读访问的短链接标识，不保证唯一").
			NotEmpty(),
	}
}

// Edges of the Post.
func (Post) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("categories", Category.Type),
	}
}
