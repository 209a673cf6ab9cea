package post

import (
	"context"
	"testing"
	"time"

	"github.com/codepulse-cc/codepulse-app/pkg/constant"
	"github.com/codepulse-cc/codepulse-app/pkg/domain/model"
	"github.com/codepulse-cc/codepulse-app/pkg/domain/repository"
	"github.com/codepulse-cc/codepulse-app/pkg/idgen"
)

func TestMain(m *testing.M) {
	if err := idgen.InitSqidsEncoder(); err != nil {
		panic(err)
	}
	m.Run()
}

// fakeCategoryRepo 只实现 GetByID，按预置的数据表应答。
type fakeCategoryRepo struct {
	repository.CategoryRepository
	byPublicID map[string]*model.Category
}

func (f *fakeCategoryRepo) GetByID(ctx context.Context, publicID string) (*model.Category, error) {
	if c, ok := f.byPublicID[publicID]; ok {
		return c, nil
	}
	return nil, constant.ErrNotFound
}

// fakePostRepo 记录收到的参数并返回固定结果。
type fakePostRepo struct {
	repository.PostRepository
	lastCreate *model.CreatePostParams
	lastUpdate *model.UpdatePostParams
	result     *model.Post
}

func (f *fakePostRepo) Create(ctx context.Context, params *model.CreatePostParams) (*model.Post, error) {
	f.lastCreate = params
	return f.result, nil
}

func (f *fakePostRepo) Update(ctx context.Context, publicID string, params *model.UpdatePostParams) (*model.Post, error) {
	f.lastUpdate = params
	return f.result, nil
}

// fakeTxManager 直接以给定的仓储执行函数，不做真实事务。
type fakeTxManager struct {
	repos repository.Repositories
}

func (f *fakeTxManager) Do(ctx context.Context, fn func(repos repository.Repositories) error) error {
	return fn(f.repos)
}

func mustPublicCategoryID(t *testing.T, dbID uint) string {
	t.Helper()
	id, err := idgen.GeneratePublicID(dbID, idgen.EntityTypeCategory)
	if err != nil {
		t.Fatal(err)
	}
	return id
}

func newTestService(categoryRepo repository.CategoryRepository, postRepo repository.PostRepository) *Service {
	txm := &fakeTxManager{repos: repository.Repositories{
		Category: categoryRepo,
		Post:     postRepo,
	}}
	return NewService(postRepo, txm)
}

func TestCreate_DropsUnresolvableCategories(t *testing.T) {
	goID := mustPublicCategoryID(t, 10)
	webID := mustPublicCategoryID(t, 20)
	missingID := mustPublicCategoryID(t, 99)

	categoryRepo := &fakeCategoryRepo{byPublicID: map[string]*model.Category{
		goID:  {ID: goID, Name: "Go", URLHandle: "go"},
		webID: {ID: webID, Name: "Web", URLHandle: "web"},
	}}
	postRepo := &fakePostRepo{result: &model.Post{ID: "p1", Title: "hello"}}
	svc := newTestService(categoryRepo, postRepo)

	resp, err := svc.Create(context.Background(), &model.CreatePostRequest{
		Title:      "hello",
		Categories: []string{goID, "not-a-real-id", missingID, webID},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	wantDBIDs := []uint{10, 20}
	if len(postRepo.lastCreate.CategoryDBIDs) != len(wantDBIDs) {
		t.Fatalf("落库分类数 = %d, want %d", len(postRepo.lastCreate.CategoryDBIDs), len(wantDBIDs))
	}
	for i, want := range wantDBIDs {
		if postRepo.lastCreate.CategoryDBIDs[i] != want {
			t.Errorf("CategoryDBIDs[%d] = %d, want %d", i, postRepo.lastCreate.CategoryDBIDs[i], want)
		}
	}

	// 响应中的分类保持解析成功的先后顺序
	if len(resp.Categories) != 2 {
		t.Fatalf("响应分类数 = %d, want 2", len(resp.Categories))
	}
	if resp.Categories[0].Name != "Go" || resp.Categories[1].Name != "Web" {
		t.Errorf("分类顺序错误: %s, %s", resp.Categories[0].Name, resp.Categories[1].Name)
	}
}

func TestCreate_RejectsWrongEntityType(t *testing.T) {
	// 同一数字 ID 但实体类型是文章而非分类，必须被静默丢弃
	postTypeID, err := idgen.GeneratePublicID(10, idgen.EntityTypePost)
	if err != nil {
		t.Fatal(err)
	}

	categoryRepo := &fakeCategoryRepo{byPublicID: map[string]*model.Category{}}
	postRepo := &fakePostRepo{result: &model.Post{ID: "p1"}}
	svc := newTestService(categoryRepo, postRepo)

	resp, err := svc.Create(context.Background(), &model.CreatePostRequest{
		Categories: []string{postTypeID},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(postRepo.lastCreate.CategoryDBIDs) != 0 {
		t.Errorf("类型不符的公共 ID 不应被解析, got %v", postRepo.lastCreate.CategoryDBIDs)
	}
	if len(resp.Categories) != 0 {
		t.Errorf("响应分类应为空, got %d", len(resp.Categories))
	}
}

func TestUpdate_ReplacesScalarFieldsAndCategories(t *testing.T) {
	goID := mustPublicCategoryID(t, 10)
	categoryRepo := &fakeCategoryRepo{byPublicID: map[string]*model.Category{
		goID: {ID: goID, Name: "Go", URLHandle: "go"},
	}}
	postRepo := &fakePostRepo{result: &model.Post{ID: "p1", Title: "new"}}
	svc := newTestService(categoryRepo, postRepo)

	published := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	_, err := svc.Update(context.Background(), "p1", &model.UpdatePostRequest{
		Author:        "alice",
		Title:         "new",
		PublishedDate: published,
		IsVisible:     false,
		URLHandle:     "new-post",
		Categories:    []string{goID},
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	got := postRepo.lastUpdate
	if got.Author != "alice" || got.Title != "new" || got.URLHandle != "new-post" {
		t.Errorf("标量字段未整体传递: %+v", got)
	}
	if got.IsVisible {
		t.Error("IsVisible 应被覆盖为 false")
	}
	if !got.PublishedDate.Equal(published) {
		t.Errorf("PublishedDate = %v, want %v", got.PublishedDate, published)
	}
	if len(got.CategoryDBIDs) != 1 || got.CategoryDBIDs[0] != 10 {
		t.Errorf("分类集合未全量替换: %v", got.CategoryDBIDs)
	}
}
