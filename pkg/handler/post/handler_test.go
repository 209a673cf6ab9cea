package post

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/codepulse-cc/codepulse-app/pkg/constant"
	"github.com/codepulse-cc/codepulse-app/pkg/domain/model"
	"github.com/codepulse-cc/codepulse-app/pkg/domain/repository"
	post_service "github.com/codepulse-cc/codepulse-app/pkg/service/post"

	"github.com/gin-gonic/gin"
)

// fakePostRepo 是文章仓储的内存实现，分别按公共 ID 与短链接索引。
type fakePostRepo struct {
	repository.PostRepository
	byPublicID map[string]*model.Post
	byHandle   map[string]*model.Post
}

func (f *fakePostRepo) GetAll(ctx context.Context) ([]*model.Post, error) {
	posts := make([]*model.Post, 0, len(f.byPublicID))
	for _, p := range f.byPublicID {
		posts = append(posts, p)
	}
	return posts, nil
}

func (f *fakePostRepo) GetByID(ctx context.Context, publicID string) (*model.Post, error) {
	if p, ok := f.byPublicID[publicID]; ok {
		return p, nil
	}
	return nil, constant.ErrNotFound
}

func (f *fakePostRepo) GetByURLHandle(ctx context.Context, urlHandle string) (*model.Post, error) {
	if p, ok := f.byHandle[urlHandle]; ok {
		return p, nil
	}
	return nil, constant.ErrNotFound
}

func (f *fakePostRepo) Delete(ctx context.Context, publicID string) (*model.Post, error) {
	p, ok := f.byPublicID[publicID]
	if !ok {
		return nil, constant.ErrNotFound
	}
	delete(f.byPublicID, publicID)
	snapshot := *p
	snapshot.Categories = nil
	return &snapshot, nil
}

func newTestRouter(repo repository.PostRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(post_service.NewService(repo, nil))

	engine := gin.New()
	engine.GET("/api/posts", h.List)
	engine.GET("/api/posts/:slug", h.Get)
	engine.DELETE("/api/posts/:id", h.Delete)
	return engine
}

func TestGet_ByPublicID(t *testing.T) {
	repo := &fakePostRepo{
		byPublicID: map[string]*model.Post{"p1": {ID: "p1", Title: "hello", URLHandle: "hello-world"}},
		byHandle:   map[string]*model.Post{"hello-world": {ID: "p1", Title: "hello", URLHandle: "hello-world"}},
	}
	engine := newTestRouter(repo)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/posts/p1", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("状态码 = %d, want 200", w.Code)
	}
	var got map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got["id"] != "p1" || got["urlHandle"] != "hello-world" {
		t.Errorf("响应载荷不符: %v", got)
	}
}

func TestGet_FallsBackToURLHandle(t *testing.T) {
	repo := &fakePostRepo{
		byPublicID: map[string]*model.Post{},
		byHandle:   map[string]*model.Post{"hello-world": {ID: "p1", Title: "hello", URLHandle: "hello-world"}},
	}
	engine := newTestRouter(repo)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/posts/hello-world", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("状态码 = %d, want 200", w.Code)
	}
}

func TestGet_NotFoundHasEmptyBody(t *testing.T) {
	repo := &fakePostRepo{byPublicID: map[string]*model.Post{}, byHandle: map[string]*model.Post{}}
	engine := newTestRouter(repo)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/posts/missing", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("状态码 = %d, want 404", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("404 响应体应为空, got %q", w.Body.String())
	}
}

func TestDelete_SnapshotOmitsCategories(t *testing.T) {
	repo := &fakePostRepo{
		byPublicID: map[string]*model.Post{"p1": {
			ID:         "p1",
			Title:      "hello",
			Categories: []*model.Category{{ID: "c1", Name: "Go"}},
		}},
	}
	engine := newTestRouter(repo)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/posts/p1", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("状态码 = %d, want 200", w.Code)
	}
	var got model.PostResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Title != "hello" {
		t.Errorf("删除响应应包含删除前快照, got %+v", got)
	}
	if len(got.Categories) != 0 {
		t.Errorf("删除响应不应附带分类集合: %v", got.Categories)
	}
}
