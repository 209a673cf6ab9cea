package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// Image holds the schema definition for the Image entity.
type Image struct {
	ent.Schema
}

// Annotations of the Image.
func (Image) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("博客图片表，二进制内容存储在本地磁盘"),
	}
}

// Fields of the Image.
func (Image) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),

		field.String("file_name").
			Comment("磁盘上的文件名（不含扩展名）").
			NotEmpty(),

		field.String("title").
			Comment("图片标题").
			Optional(),

		field.String("extension").
			Comment("文件扩展名，例如 .png").
			NotEmpty(),

		field.Int64("size").
			Comment("文件大小（字节）").
			NonNegative(),

		field.String("url").
			Comment("对外访问URL").
			NotEmpty(),
	}
}
