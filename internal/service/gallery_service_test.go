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

func setupGalleryServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:gallery-service-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(&db.Program{}, &db.ProgramSubContent{}, &db.GalleryItem{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return gdb
}

func TestGalleryService_CreateRequiresMedia(t *testing.T) {
	gdb := setupGalleryServiceTestDB(t)
	svc := NewGalleryService(gdb)

	if _, err := svc.Create(GalleryInput{Title: "Nothing here"}); !errors.Is(err, ErrGalleryMediaMissing) {
		t.Fatalf("expected ErrGalleryMediaMissing, got %v", err)
	}

	item, err := svc.Create(GalleryInput{Title: "Video only", VideoURL: "https://youtu.be/dQw4w9WgXcQ"})
	if err != nil {
		t.Fatalf("video-only item must be valid: %v", err)
	}
	if item.Category != "General" {
		t.Fatalf("expected default category General, got %q", item.Category)
	}
}

func TestGalleryService_UnlinkNullsReference(t *testing.T) {
	gdb := setupGalleryServiceTestDB(t)
	svc := NewGalleryService(gdb)

	program := db.Program{Name: "Expo", Slug: "expo", Type: db.ProgramTypeTradeFairs}
	if err := gdb.Create(&program).Error; err != nil {
		t.Fatalf("create program: %v", err)
	}

	item, err := svc.Create(GalleryInput{
		Title:         "Booth",
		ImageFilename: "booth.jpg",
		ProgramID:     program.ID,
	})
	if err != nil {
		t.Fatalf("create item: %v", err)
	}
	if item.ProgramID == nil || *item.ProgramID != program.ID {
		t.Fatalf("expected linked item")
	}

	// 解除关联只置空引用，条目本身保留
	updated, err := svc.Update(item.ID, GalleryInput{
		Title:     "Booth",
		ProgramID: 0,
	})
	if err != nil {
		t.Fatalf("unlink item: %v", err)
	}
	if updated.ProgramID != nil {
		t.Fatalf("expected nil program reference after unlink")
	}

	var persisted db.GalleryItem
	if err := gdb.First(&persisted, item.ID).Error; err != nil {
		t.Fatalf("reload item: %v", err)
	}
	if persisted.ProgramID != nil {
		t.Fatalf("unlink not persisted, still %v", *persisted.ProgramID)
	}
	if persisted.ImageFilename != "booth.jpg" {
		t.Fatalf("blank upload must keep existing image, got %q", persisted.ImageFilename)
	}
}

func TestGalleryService_ListByProgramAndProgramsWithItems(t *testing.T) {
	gdb := setupGalleryServiceTestDB(t)
	svc := NewGalleryService(gdb)

	withItems := db.Program{Name: "Awards", Slug: "awards", Type: db.ProgramTypeAwards, SortOrder: 2}
	without := db.Program{Name: "Training", Slug: "training", Type: db.ProgramTypeTraining, SortOrder: 1}
	if err := gdb.Create(&withItems).Error; err != nil {
		t.Fatalf("create program: %v", err)
	}
	if err := gdb.Create(&without).Error; err != nil {
		t.Fatalf("create program: %v", err)
	}

	first, err := svc.Create(GalleryInput{Title: "Ceremony", ImageFilename: "a.jpg", ProgramID: withItems.ID, SortOrder: 2})
	if err != nil {
		t.Fatalf("create item: %v", err)
	}
	second, err := svc.Create(GalleryInput{Title: "Winners", ImageFilename: "b.jpg", ProgramID: withItems.ID, SortOrder: 1})
	if err != nil {
		t.Fatalf("create item: %v", err)
	}

	items, err := svc.ListByProgram(withItems.ID)
	if err != nil {
		t.Fatalf("list by program: %v", err)
	}
	if len(items) != 2 || items[0].ID != second.ID || items[1].ID != first.ID {
		t.Fatalf("unexpected program item order: %+v", items)
	}

	programs, err := svc.ProgramsWithItems()
	if err != nil {
		t.Fatalf("programs with items: %v", err)
	}
	if len(programs) != 1 || programs[0].ID != withItems.ID {
		t.Fatalf("expected only the program holding items, got %+v", programs)
	}

	// 条目软删后其项目退出筛选列表
	if err := svc.Delete(first.ID); err != nil {
		t.Fatalf("delete item: %v", err)
	}
	if err := svc.Delete(second.ID); err != nil {
		t.Fatalf("delete item: %v", err)
	}
	programs, err = svc.ProgramsWithItems()
	if err != nil {
		t.Fatalf("programs with items after delete: %v", err)
	}
	if len(programs) != 0 {
		t.Fatalf("expected no programs after items removed, got %+v", programs)
	}
}

func TestGalleryService_RecentHonorsLimit(t *testing.T) {
	gdb := setupGalleryServiceTestDB(t)
	svc := NewGalleryService(gdb)

	for i := 0; i < 5; i++ {
		if _, err := svc.Create(GalleryInput{
			Title:         fmt.Sprintf("Item %d", i),
			ImageFilename: fmt.Sprintf("%d.jpg", i),
			SortOrder:     i,
		}); err != nil {
			t.Fatalf("create item: %v", err)
		}
	}

	recent, err := svc.Recent(3)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("expected 3 items, got %d", len(recent))
	}
}
