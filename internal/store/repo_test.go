package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestRepo(t *testing.T) *Repo {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	repo, err := NewRepo(db)
	if err != nil {
		t.Fatalf("failed to init repo: %v", err)
	}
	return repo
}

func TestRepoGetReturnsDefaultWhenAbsent(t *testing.T) {
	repo := setupTestRepo(t)

	got, err := repo.Get(context.Background(), "user-42")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.UserID != "user-42" || got.Theme != "auto" {
		t.Errorf("expected defaults, got %+v", got)
	}
	if len(got.Widgets) != 1 || got.Widgets[0] != "weather" {
		t.Errorf("widgets = %v, want [weather]", got.Widgets)
	}
}

func TestRepoSetThenGet(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	prefs := DashboardPreferences{
		UserID:    "auth0|abc",
		Widgets:   []string{"weather", "news"},
		Layout:    json.RawMessage(`{"cols":3}`),
		Theme:     "dark",
		UpdatedAt: &now,
	}
	if err := repo.Set(ctx, prefs); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	got, err := repo.Get(ctx, "auth0|abc")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Theme != "dark" {
		t.Errorf("theme = %q, want dark", got.Theme)
	}
	if len(got.Widgets) != 2 || got.Widgets[1] != "news" {
		t.Errorf("widgets = %v, want [weather news]", got.Widgets)
	}
	if string(got.Layout) != `{"cols":3}` {
		t.Errorf("layout = %s, want stored document", got.Layout)
	}
	if got.UpdatedAt == nil {
		t.Error("updatedAt not persisted")
	}
}

func TestRepoSetUpsertsOnSameUser(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	first := DashboardPreferences{UserID: "u1", Widgets: []string{"weather"}, Theme: "light"}
	second := DashboardPreferences{UserID: "u1", Widgets: []string{"weather", "news"}, Theme: "dark"}

	if err := repo.Set(ctx, first); err != nil {
		t.Fatalf("first Set returned error: %v", err)
	}
	if err := repo.Set(ctx, second); err != nil {
		t.Fatalf("second Set returned error: %v", err)
	}

	got, err := repo.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Theme != "dark" || len(got.Widgets) != 2 {
		t.Errorf("expected last write, got %+v", got)
	}

	var count int64
	if err := repo.db.Model(&preferenceRow{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("row count = %d, want 1 (upsert, not append)", count)
	}
}
