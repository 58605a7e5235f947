package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Christianboat/Eidikoswebapp/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupNewsServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:news-service-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(&db.NewsArticle{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return gdb
}

func TestNewsService_ListNewestFirst(t *testing.T) {
	gdb := setupNewsServiceTestDB(t)
	svc := NewNewsService(gdb)

	old, err := svc.Create(NewsInput{
		Title:         "Old Story",
		DatePublished: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create old article: %v", err)
	}
	fresh, err := svc.Create(NewsInput{
		Title:         "Fresh Story",
		DatePublished: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create fresh article: %v", err)
	}

	articles, err := svc.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(articles) != 2 || articles[0].ID != fresh.ID || articles[1].ID != old.ID {
		t.Fatalf("expected newest first, got %+v", articles)
	}
}

func TestNewsService_CreateDefaultsDateAndRequiresTitle(t *testing.T) {
	gdb := setupNewsServiceTestDB(t)
	svc := NewNewsService(gdb)

	if _, err := svc.Create(NewsInput{Title: "  "}); !errors.Is(err, ErrNewsTitleMissing) {
		t.Fatalf("expected ErrNewsTitleMissing, got %v", err)
	}

	article, err := svc.Create(NewsInput{Title: "Launch"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if article.DatePublished.IsZero() {
		t.Fatalf("zero publish date must default to now")
	}
}

func TestNewsService_RecentExcludesCurrent(t *testing.T) {
	gdb := setupNewsServiceTestDB(t)
	svc := NewNewsService(gdb)

	var current *db.NewsArticle
	for i := 0; i < 5; i++ {
		article, err := svc.Create(NewsInput{
			Title:         fmt.Sprintf("Story %d", i),
			DatePublished: time.Date(2025, 1, i+1, 0, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("create article: %v", err)
		}
		current = article
	}

	recent, err := svc.Recent(current.ID, 3)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("expected 3 recent articles, got %d", len(recent))
	}
	for _, article := range recent {
		if article.ID == current.ID {
			t.Fatalf("recent must exclude the current article")
		}
	}
}

func TestNewsService_Categories(t *testing.T) {
	gdb := setupNewsServiceTestDB(t)
	svc := NewNewsService(gdb)

	for _, category := range []string{"Events", "Events", "Impact", ""} {
		if _, err := svc.Create(NewsInput{Title: "Story " + category, Category: category}); err != nil {
			t.Fatalf("create article: %v", err)
		}
	}

	counts, err := svc.Categories()
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	byName := make(map[string]int64, len(counts))
	for _, c := range counts {
		byName[c.Name] = c.Count
	}
	if byName["Events"] != 2 || byName["Impact"] != 1 {
		t.Fatalf("unexpected category counts: %v", byName)
	}
	if _, ok := byName[""]; ok {
		t.Fatalf("empty category must be excluded")
	}
}
