package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/Christianboat/Eidikoswebapp/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSiteServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:site-service-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(&db.SiteSettings{}, &db.ContactInfo{}, &db.SocialMedia{}, &db.Sponsor{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return gdb
}

func TestSiteService_SettingsGetOrCreate(t *testing.T) {
	gdb := setupSiteServiceTestDB(t)
	svc := NewSiteService(gdb)

	settings, err := svc.Settings()
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	if settings.SiteName != "EIDIKOS" {
		t.Fatalf("expected default site name, got %q", settings.SiteName)
	}

	// 第二次读取复用同一行
	again, err := svc.Settings()
	if err != nil {
		t.Fatalf("settings again: %v", err)
	}
	if again.ID != settings.ID {
		t.Fatalf("expected singleton settings row, got %d and %d", settings.ID, again.ID)
	}

	var count int64
	gdb.Model(&db.SiteSettings{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected exactly one settings row, found %d", count)
	}
}

func TestSiteService_UpdateSettingsKeepsNameNonEmpty(t *testing.T) {
	gdb := setupSiteServiceTestDB(t)
	svc := NewSiteService(gdb)

	updated, err := svc.UpdateSettings(SiteSettingsInput{SiteName: "  ", CopyrightText: "2026"})
	if err != nil {
		t.Fatalf("update settings: %v", err)
	}
	if updated.SiteName != "EIDIKOS" {
		t.Fatalf("blank site name must fall back to default, got %q", updated.SiteName)
	}
	if updated.CopyrightText != "2026" {
		t.Fatalf("copyright not saved, got %q", updated.CopyrightText)
	}
}

func TestSiteService_PrimaryContact(t *testing.T) {
	gdb := setupSiteServiceTestDB(t)
	svc := NewSiteService(gdb)

	contact, err := svc.PrimaryContact()
	if err != nil {
		t.Fatalf("primary contact: %v", err)
	}
	if contact != nil {
		t.Fatalf("expected nil primary contact on empty table")
	}

	first, err := svc.CreateContact(ContactInfoInput{InfoType: "office", Email: "hq@example.com"})
	if err != nil {
		t.Fatalf("create contact: %v", err)
	}
	if _, err := svc.CreateContact(ContactInfoInput{InfoType: "press", Email: "press@example.com"}); err != nil {
		t.Fatalf("create contact: %v", err)
	}

	contact, err = svc.PrimaryContact()
	if err != nil {
		t.Fatalf("primary contact: %v", err)
	}
	if contact == nil || contact.ID != first.ID {
		t.Fatalf("expected first contact as primary, got %+v", contact)
	}
}

func TestSiteService_SponsorOrderingAndValidation(t *testing.T) {
	gdb := setupSiteServiceTestDB(t)
	svc := NewSiteService(gdb)

	if _, err := svc.CreateSponsor(SponsorInput{Name: " "}); err == nil {
		t.Fatalf("expected error for blank sponsor name")
	}

	late, err := svc.CreateSponsor(SponsorInput{Name: "Late", SortOrder: 2})
	if err != nil {
		t.Fatalf("create sponsor: %v", err)
	}
	early, err := svc.CreateSponsor(SponsorInput{Name: "Early", SortOrder: 1})
	if err != nil {
		t.Fatalf("create sponsor: %v", err)
	}

	sponsors, err := svc.ListSponsors()
	if err != nil {
		t.Fatalf("list sponsors: %v", err)
	}
	if len(sponsors) != 2 || sponsors[0].ID != early.ID || sponsors[1].ID != late.ID {
		t.Fatalf("unexpected sponsor order: %+v", sponsors)
	}
}
