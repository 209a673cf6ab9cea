package category

import (
	"testing"

	"github.com/codepulse-cc/codepulse-app/pkg/domain/model"
	"github.com/codepulse-cc/codepulse-app/pkg/domain/repository"
)

func intPtr(v int) *int { return &v }

func TestBuildListOptions_Sort(t *testing.T) {
	cases := []struct {
		name          string
		sortBy        string
		sortDirection string
		wantField     repository.CategorySortField
		wantAscending bool
	}{
		{"按名称升序", "Name", "asc", repository.CategorySortName, true},
		{"排序字段忽略大小写", "nAmE", "ASC", repository.CategorySortName, true},
		{"按短链接排序", "Url", "desc", repository.CategorySortURLHandle, false},
		{"方向非 asc 一律降序", "Name", "ascending", repository.CategorySortName, false},
		{"方向为空时降序", "Name", "", repository.CategorySortName, false},
		{"未识别的排序字段不排序", "CreatedAt", "asc", repository.CategorySortNone, true},
		{"无排序参数", "", "", repository.CategorySortNone, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := buildListOptions(model.ListCategoriesQuery{
				SortBy:        tc.sortBy,
				SortDirection: tc.sortDirection,
			})
			if opts.SortBy != tc.wantField {
				t.Errorf("SortBy = %v, want %v", opts.SortBy, tc.wantField)
			}
			if opts.Ascending != tc.wantAscending {
				t.Errorf("Ascending = %v, want %v", opts.Ascending, tc.wantAscending)
			}
		})
	}
}

func TestBuildListOptions_Pagination(t *testing.T) {
	cases := []struct {
		name       string
		pageNumber *int
		pageSize   *int
		wantOffset int
		wantLimit  int
	}{
		{"均未提供时取默认上限", nil, nil, 0, 100},
		{"只有页码时不产生偏移", intPtr(3), nil, 0, 100},
		{"只有页大小时不产生偏移", nil, intPtr(10), 0, 10},
		{"两者齐备才计算偏移", intPtr(3), intPtr(10), 20, 10},
		{"第一页偏移为零", intPtr(1), intPtr(25), 0, 25},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := buildListOptions(model.ListCategoriesQuery{
				PageNumber: tc.pageNumber,
				PageSize:   tc.pageSize,
			})
			if opts.Offset != tc.wantOffset {
				t.Errorf("Offset = %d, want %d", opts.Offset, tc.wantOffset)
			}
			if opts.Limit != tc.wantLimit {
				t.Errorf("Limit = %d, want %d", opts.Limit, tc.wantLimit)
			}
		})
	}
}

func TestBuildListOptions_Filter(t *testing.T) {
	opts := buildListOptions(model.ListCategoriesQuery{Query: "go"})
	if opts.NameContains != "go" {
		t.Errorf("NameContains = %q, want %q", opts.NameContains, "go")
	}

	opts = buildListOptions(model.ListCategoriesQuery{})
	if opts.NameContains != "" {
		t.Errorf("空查询不应设置过滤条件, got %q", opts.NameContains)
	}
}
