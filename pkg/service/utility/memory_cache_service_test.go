package utility

import (
	"context"
	"testing"
	"time"
)

func TestMemoryCache_SetGetDelete(t *testing.T) {
	svc := NewMemoryCacheService()
	defer svc.(*memoryCacheService).Stop()
	ctx := context.Background()

	if err := svc.Set(ctx, "k", "v", 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := svc.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "v" {
		t.Errorf("Get = %q, want %q", got, "v")
	}

	if err := svc.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	got, err = svc.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get after delete: %v", err)
	}
	if got != "" {
		t.Errorf("删除后应返回空字符串, got %q", got)
	}
}

func TestMemoryCache_Expiration(t *testing.T) {
	svc := NewMemoryCacheService()
	defer svc.(*memoryCacheService).Stop()
	ctx := context.Background()

	if err := svc.Set(ctx, "k", "v", 10*time.Millisecond); err != nil {
		t.Fatalf("Set: %v", err)
	}

	time.Sleep(20 * time.Millisecond)

	got, err := svc.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "" {
		t.Errorf("过期键应返回空字符串, got %q", got)
	}
}

func TestMemoryCache_MissingKey(t *testing.T) {
	svc := NewMemoryCacheService()
	defer svc.(*memoryCacheService).Stop()

	got, err := svc.Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "" {
		t.Errorf("不存在的键应返回空字符串, got %q", got)
	}
}
