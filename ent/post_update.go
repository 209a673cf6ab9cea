// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codepulse-cc/codepulse-app/ent/category"
	"github.com/codepulse-cc/codepulse-app/ent/post"
	"github.com/codepulse-cc/codepulse-app/ent/predicate"
)

// PostUpdate is the builder for updating Post entities.
type PostUpdate struct {
	config
	hooks    []Hook
	mutation *PostMutation
}

// Where appends a list predicates to the PostUpdate builder.
func (_u *PostUpdate) Where(ps ...predicate.Post) *PostUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PostUpdate) SetUpdatedAt(v time.Time) *PostUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAuthor sets the "author" field.
func (_u *PostUpdate) SetAuthor(v string) *PostUpdate {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *PostUpdate) SetNillableAuthor(v *string) *PostUpdate {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *PostUpdate) SetTitle(v string) *PostUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PostUpdate) SetNillableTitle(v *string) *PostUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetShortDescription sets the "short_description" field.
func (_u *PostUpdate) SetShortDescription(v string) *PostUpdate {
	_u.mutation.SetShortDescription(v)
	return _u
}

// SetNillableShortDescription sets the "short_description" field if the given value is not nil.
func (_u *PostUpdate) SetNillableShortDescription(v *string) *PostUpdate {
	if v != nil {
		_u.SetShortDescription(*v)
	}
	return _u
}

// ClearShortDescription clears the value of the "short_description" field.
func (_u *PostUpdate) ClearShortDescription() *PostUpdate {
	_u.mutation.ClearShortDescription()
	return _u
}

// SetContent sets the "content" field.
func (_u *PostUpdate) SetContent(v string) *PostUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *PostUpdate) SetNillableContent(v *string) *PostUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *PostUpdate) ClearContent() *PostUpdate {
	_u.mutation.ClearContent()
	return _u
}

// SetFeaturedImageURL sets the "featured_image_url" field.
func (_u *PostUpdate) SetFeaturedImageURL(v string) *PostUpdate {
	_u.mutation.SetFeaturedImageURL(v)
	return _u
}

// SetNillableFeaturedImageURL sets the "featured_image_url" field if the given value is not nil.
func (_u *PostUpdate) SetNillableFeaturedImageURL(v *string) *PostUpdate {
	if v != nil {
		_u.SetFeaturedImageURL(*v)
	}
	return _u
}

// ClearFeaturedImageURL clears the value of the "featured_image_url" field.
func (_u *PostUpdate) ClearFeaturedImageURL() *PostUpdate {
	_u.mutation.ClearFeaturedImageURL()
	return _u
}

// SetPublishedDate sets the "published_date" field.
func (_u *PostUpdate) SetPublishedDate(v time.Time) *PostUpdate {
	_u.mutation.SetPublishedDate(v)
	return _u
}

// SetNillablePublishedDate sets the "published_date" field if the given value is not nil.
func (_u *PostUpdate) SetNillablePublishedDate(v *time.Time) *PostUpdate {
	if v != nil {
		_u.SetPublishedDate(*v)
	}
	return _u
}

// SetIsVisible sets the "is_visible" field.
func (_u *PostUpdate) SetIsVisible(v bool) *PostUpdate {
	_u.mutation.SetIsVisible(v)
	return _u
}

// SetNillableIsVisible sets the "is_visible" field if the given value is not nil.
func (_u *PostUpdate) SetNillableIsVisible(v *bool) *PostUpdate {
	if v != nil {
		_u.SetIsVisible(*v)
	}
	return _u
}

// SetURLHandle sets the "url_handle" field.
func (_u *PostUpdate) SetURLHandle(v string) *PostUpdate {
	_u.mutation.SetURLHandle(v)
	return _u
}

// SetNillableURLHandle sets the "url_handle" field if the given value is not nil.
func (_u *PostUpdate) SetNillableURLHandle(v *string) *PostUpdate {
	if v != nil {
		_u.SetURLHandle(*v)
	}
	return _u
}

// AddCategoryIDs adds the "categories" edge to the Category entity by IDs.
func (_u *PostUpdate) AddCategoryIDs(ids ...uint) *PostUpdate {
	_u.mutation.AddCategoryIDs(ids...)
	return _u
}

// AddCategories adds the "categories" edges to the Category entity.
func (_u *PostUpdate) AddCategories(v ...*Category) *PostUpdate {
	ids := make([]uint, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCategoryIDs(ids...)
}

// Mutation returns the PostMutation object of the builder.
func (_u *PostUpdate) Mutation() *PostMutation {
	return _u.mutation
}

// ClearCategories clears all "categories" edges to the Category entity.
func (_u *PostUpdate) ClearCategories() *PostUpdate {
	_u.mutation.ClearCategories()
	return _u
}

// RemoveCategoryIDs removes the "categories" edge to Category entities by IDs.
func (_u *PostUpdate) RemoveCategoryIDs(ids ...uint) *PostUpdate {
	_u.mutation.RemoveCategoryIDs(ids...)
	return _u
}

// RemoveCategories removes "categories" edges to Category entities.
func (_u *PostUpdate) RemoveCategories(v ...*Category) *PostUpdate {
	ids := make([]uint, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCategoryIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PostUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PostUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PostUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PostUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PostUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := post.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PostUpdate) check() error {
	if v, ok := _u.mutation.Author(); ok {
		if err := post.AuthorValidator(v); err != nil {
			return &ValidationError{Name: "author", err: fmt.Errorf(`ent: validator failed for field "Post.author": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := post.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Post.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.URLHandle(); ok {
		if err := post.URLHandleValidator(v); err != nil {
			return &ValidationError{Name: "url_handle", err: fmt.Errorf(`ent: validator failed for field "Post.url_handle": %w`, err)}
		}
	}
	return nil
}

func (_u *PostUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(post.Table, post.Columns, sqlgraph.NewFieldSpec(post.FieldID, field.TypeUint))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(post.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(post.FieldAuthor, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(post.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.ShortDescription(); ok {
		_spec.SetField(post.FieldShortDescription, field.TypeString, value)
	}
	if _u.mutation.ShortDescriptionCleared() {
		_spec.ClearField(post.FieldShortDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(post.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(post.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.FeaturedImageURL(); ok {
		_spec.SetField(post.FieldFeaturedImageURL, field.TypeString, value)
	}
	if _u.mutation.FeaturedImageURLCleared() {
		_spec.ClearField(post.FieldFeaturedImageURL, field.TypeString)
	}
	if value, ok := _u.mutation.PublishedDate(); ok {
		_spec.SetField(post.FieldPublishedDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsVisible(); ok {
		_spec.SetField(post.FieldIsVisible, field.TypeBool, value)
	}
	if value, ok := _u.mutation.URLHandle(); ok {
		_spec.SetField(post.FieldURLHandle, field.TypeString, value)
	}
	if _u.mutation.CategoriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   post.CategoriesTable,
			Columns: post.CategoriesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeUint),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCategoriesIDs(); len(nodes) > 0 && !_u.mutation.CategoriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   post.CategoriesTable,
			Columns: post.CategoriesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeUint),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CategoriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   post.CategoriesTable,
			Columns: post.CategoriesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeUint),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{post.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PostUpdateOne is the builder for updating a single Post entity.
type PostUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PostMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PostUpdateOne) SetUpdatedAt(v time.Time) *PostUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAuthor sets the "author" field.
func (_u *PostUpdateOne) SetAuthor(v string) *PostUpdateOne {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *PostUpdateOne) SetNillableAuthor(v *string) *PostUpdateOne {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *PostUpdateOne) SetTitle(v string) *PostUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PostUpdateOne) SetNillableTitle(v *string) *PostUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetShortDescription sets the "short_description" field.
func (_u *PostUpdateOne) SetShortDescription(v string) *PostUpdateOne {
	_u.mutation.SetShortDescription(v)
	return _u
}

// SetNillableShortDescription sets the "short_description" field if the given value is not nil.
func (_u *PostUpdateOne) SetNillableShortDescription(v *string) *PostUpdateOne {
	if v != nil {
		_u.SetShortDescription(*v)
	}
	return _u
}

// ClearShortDescription clears the value of the "short_description" field.
func (_u *PostUpdateOne) ClearShortDescription() *PostUpdateOne {
	_u.mutation.ClearShortDescription()
	return _u
}

// SetContent sets the "content" field.
func (_u *PostUpdateOne) SetContent(v string) *PostUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *PostUpdateOne) SetNillableContent(v *string) *PostUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *PostUpdateOne) ClearContent() *PostUpdateOne {
	_u.mutation.ClearContent()
	return _u
}

// SetFeaturedImageURL sets the "featured_image_url" field.
func (_u *PostUpdateOne) SetFeaturedImageURL(v string) *PostUpdateOne {
	_u.mutation.SetFeaturedImageURL(v)
	return _u
}

// SetNillableFeaturedImageURL sets the "featured_image_url" field if the given value is not nil.
func (_u *PostUpdateOne) SetNillableFeaturedImageURL(v *string) *PostUpdateOne {
	if v != nil {
		_u.SetFeaturedImageURL(*v)
	}
	return _u
}

// ClearFeaturedImageURL clears the value of the "featured_image_url" field.
func (_u *PostUpdateOne) ClearFeaturedImageURL() *PostUpdateOne {
	_u.mutation.ClearFeaturedImageURL()
	return _u
}

// SetPublishedDate sets the "published_date" field.
func (_u *PostUpdateOne) SetPublishedDate(v time.Time) *PostUpdateOne {
	_u.mutation.SetPublishedDate(v)
	return _u
}

// SetNillablePublishedDate sets the "published_date" field if the given value is not nil.
func (_u *PostUpdateOne) SetNillablePublishedDate(v *time.Time) *PostUpdateOne {
	if v != nil {
		_u.SetPublishedDate(*v)
	}
	return _u
}

// SetIsVisible sets the "is_visible" field.
func (_u *PostUpdateOne) SetIsVisible(v bool) *PostUpdateOne {
	_u.mutation.SetIsVisible(v)
	return _u
}

// SetNillableIsVisible sets the "is_visible" field if the given value is not nil.
func (_u *PostUpdateOne) SetNillableIsVisible(v *bool) *PostUpdateOne {
	if v != nil {
		_u.SetIsVisible(*v)
	}
	return _u
}

// SetURLHandle sets the "url_handle" field.
func (_u *PostUpdateOne) SetURLHandle(v string) *PostUpdateOne {
	_u.mutation.SetURLHandle(v)
	return _u
}

// SetNillableURLHandle sets the "url_handle" field if the given value is not nil.
func (_u *PostUpdateOne) SetNillableURLHandle(v *string) *PostUpdateOne {
	if v != nil {
		_u.SetURLHandle(*v)
	}
	return _u
}

// AddCategoryIDs adds the "categories" edge to the Category entity by IDs.
func (_u *PostUpdateOne) AddCategoryIDs(ids ...uint) *PostUpdateOne {
	_u.mutation.AddCategoryIDs(ids...)
	return _u
}

// AddCategories adds the "categories" edges to the Category entity.
func (_u *PostUpdateOne) AddCategories(v ...*Category) *PostUpdateOne {
	ids := make([]uint, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCategoryIDs(ids...)
}

// Mutation returns the PostMutation object of the builder.
func (_u *PostUpdateOne) Mutation() *PostMutation {
	return _u.mutation
}

// ClearCategories clears all "categories" edges to the Category entity.
func (_u *PostUpdateOne) ClearCategories() *PostUpdateOne {
	_u.mutation.ClearCategories()
	return _u
}

// RemoveCategoryIDs removes the "categories" edge to Category entities by IDs.
func (_u *PostUpdateOne) RemoveCategoryIDs(ids ...uint) *PostUpdateOne {
	_u.mutation.RemoveCategoryIDs(ids...)
	return _u
}

// RemoveCategories removes "categories" edges to Category entities.
func (_u *PostUpdateOne) RemoveCategories(v ...*Category) *PostUpdateOne {
	ids := make([]uint, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCategoryIDs(ids...)
}

// Where appends a list predicates to the PostUpdate builder.
func (_u *PostUpdateOne) Where(ps ...predicate.Post) *PostUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PostUpdateOne) Select(field string, fields ...string) *PostUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Post entity.
func (_u *PostUpdateOne) Save(ctx context.Context) (*Post, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PostUpdateOne) SaveX(ctx context.Context) *Post {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PostUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PostUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PostUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := post.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PostUpdateOne) check() error {
	if v, ok := _u.mutation.Author(); ok {
		if err := post.AuthorValidator(v); err != nil {
			return &ValidationError{Name: "author", err: fmt.Errorf(`ent: validator failed for field "Post.author": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := post.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Post.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.URLHandle(); ok {
		if err := post.URLHandleValidator(v); err != nil {
			return &ValidationError{Name: "url_handle", err: fmt.Errorf(`ent: validator failed for field "Post.url_handle": %w`, err)}
		}
	}
	return nil
}

func (_u *PostUpdateOne) sqlSave(ctx context.Context) (_node *Post, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(post.Table, post.Columns, sqlgraph.NewFieldSpec(post.FieldID, field.TypeUint))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Post.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, post.FieldID)
		for _, f := range fields {
			if !post.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != post.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(post.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(post.FieldAuthor, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(post.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.ShortDescription(); ok {
		_spec.SetField(post.FieldShortDescription, field.TypeString, value)
	}
	if _u.mutation.ShortDescriptionCleared() {
		_spec.ClearField(post.FieldShortDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(post.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(post.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.FeaturedImageURL(); ok {
		_spec.SetField(post.FieldFeaturedImageURL, field.TypeString, value)
	}
	if _u.mutation.FeaturedImageURLCleared() {
		_spec.ClearField(post.FieldFeaturedImageURL, field.TypeString)
	}
	if value, ok := _u.mutation.PublishedDate(); ok {
		_spec.SetField(post.FieldPublishedDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsVisible(); ok {
		_spec.SetField(post.FieldIsVisible, field.TypeBool, value)
	}
	if value, ok := _u.mutation.URLHandle(); ok {
		_spec.SetField(post.FieldURLHandle, field.TypeString, value)
	}
	if _u.mutation.CategoriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   post.CategoriesTable,
			Columns: post.CategoriesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeUint),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCategoriesIDs(); len(nodes) > 0 && !_u.mutation.CategoriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   post.CategoriesTable,
			Columns: post.CategoriesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeUint),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CategoriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   post.CategoriesTable,
			Columns: post.CategoriesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeUint),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Post{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{post.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
