package category

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/codepulse-cc/codepulse-app/pkg/constant"
	"github.com/codepulse-cc/codepulse-app/pkg/domain/model"
	"github.com/codepulse-cc/codepulse-app/pkg/domain/repository"
	category_service "github.com/codepulse-cc/codepulse-app/pkg/service/category"

	"github.com/gin-gonic/gin"
)

// fakeCategoryRepo 是仓储接口的内存实现，按公共 ID 应答。
type fakeCategoryRepo struct {
	byPublicID map[string]*model.Category
	listOpts   repository.ListCategoriesOptions
	listResult []*model.Category
}

func (f *fakeCategoryRepo) Create(ctx context.Context, req *model.CreateCategoryRequest) (*model.Category, error) {
	return &model.Category{ID: "c1", Name: req.Name, URLHandle: req.URLHandle}, nil
}

func (f *fakeCategoryRepo) GetByID(ctx context.Context, publicID string) (*model.Category, error) {
	if c, ok := f.byPublicID[publicID]; ok {
		return c, nil
	}
	return nil, constant.ErrNotFound
}

func (f *fakeCategoryRepo) Update(ctx context.Context, publicID string, req *model.UpdateCategoryRequest) (*model.Category, error) {
	if _, ok := f.byPublicID[publicID]; !ok {
		return nil, constant.ErrNotFound
	}
	return &model.Category{ID: publicID, Name: req.Name, URLHandle: req.URLHandle}, nil
}

func (f *fakeCategoryRepo) Delete(ctx context.Context, publicID string) (*model.Category, error) {
	c, ok := f.byPublicID[publicID]
	if !ok {
		return nil, constant.ErrNotFound
	}
	delete(f.byPublicID, publicID)
	return c, nil
}

func (f *fakeCategoryRepo) List(ctx context.Context, opts repository.ListCategoriesOptions) ([]*model.Category, error) {
	f.listOpts = opts
	return f.listResult, nil
}

func (f *fakeCategoryRepo) Count(ctx context.Context) (int, error) {
	return len(f.byPublicID), nil
}

func newTestRouter(repo repository.CategoryRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(category_service.NewService(repo))

	engine := gin.New()
	engine.GET("/api/categories", h.List)
	engine.GET("/api/categories/count", h.Count)
	engine.GET("/api/categories/:id", h.Get)
	engine.POST("/api/categories", h.Create)
	engine.PUT("/api/categories/:id", h.Update)
	engine.DELETE("/api/categories/:id", h.Delete)
	return engine
}

func TestGet_NotFoundHasEmptyBody(t *testing.T) {
	engine := newTestRouter(&fakeCategoryRepo{byPublicID: map[string]*model.Category{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/categories/missing", nil)
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("状态码 = %d, want 404", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("404 响应体应为空, got %q", w.Body.String())
	}
}

func TestGet_ReturnsCamelCasePayload(t *testing.T) {
	engine := newTestRouter(&fakeCategoryRepo{byPublicID: map[string]*model.Category{
		"abcd": {ID: "abcd", Name: "Go", URLHandle: "go"},
	}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/categories/abcd", nil)
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("状态码 = %d, want 200", w.Code)
	}

	var got map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("解析响应失败: %v", err)
	}
	if got["id"] != "abcd" || got["name"] != "Go" || got["urlHandle"] != "go" {
		t.Errorf("响应载荷不符: %v", got)
	}
}

func TestList_BindsQueryParameters(t *testing.T) {
	repo := &fakeCategoryRepo{listResult: []*model.Category{}}
	engine := newTestRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/categories?query=go&sortBy=Name&sortDirection=asc&pageNumber=2&pageSize=5", nil)
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("状态码 = %d, want 200", w.Code)
	}
	if repo.listOpts.NameContains != "go" {
		t.Errorf("NameContains = %q", repo.listOpts.NameContains)
	}
	if repo.listOpts.SortBy != repository.CategorySortName || !repo.listOpts.Ascending {
		t.Errorf("排序选项未正确传递: %+v", repo.listOpts)
	}
	if repo.listOpts.Offset != 5 || repo.listOpts.Limit != 5 {
		t.Errorf("分页选项未正确传递: %+v", repo.listOpts)
	}
}

func TestCount_ReturnsRawNumber(t *testing.T) {
	engine := newTestRouter(&fakeCategoryRepo{byPublicID: map[string]*model.Category{
		"a": {}, "b": {}, "c": {},
	}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/categories/count", nil)
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("状态码 = %d, want 200", w.Code)
	}
	if strings.TrimSpace(w.Body.String()) != "3" {
		t.Errorf("响应体 = %q, want 3", w.Body.String())
	}
}

func TestDelete_ReturnsSnapshot(t *testing.T) {
	repo := &fakeCategoryRepo{byPublicID: map[string]*model.Category{
		"abcd": {ID: "abcd", Name: "Go", URLHandle: "go"},
	}}
	engine := newTestRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/categories/abcd", nil)
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("状态码 = %d, want 200", w.Code)
	}

	var got model.CategoryResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("解析响应失败: %v", err)
	}
	if got.Name != "Go" {
		t.Errorf("删除响应应包含删除前快照, got %+v", got)
	}
	if _, ok := repo.byPublicID["abcd"]; ok {
		t.Error("记录应已被删除")
	}
}
