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

func setupPartnershipServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:partnership-service-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(&db.Partnership{}, &db.SponsorshipTier{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return gdb
}

func TestPartnershipService_TierRequiresName(t *testing.T) {
	gdb := setupPartnershipServiceTestDB(t)
	svc := NewPartnershipService(gdb)

	partnership, err := svc.Create(PartnershipInput{Type: "sponsorship", Title: "Gold Partners"})
	if err != nil {
		t.Fatalf("create partnership: %v", err)
	}

	if _, err := svc.CreateTier(partnership.ID, TierInput{TierName: "   "}); !errors.Is(err, ErrTierNameMissing) {
		t.Fatalf("expected ErrTierNameMissing, got %v", err)
	}
	if _, err := svc.CreateTier(partnership.ID, TierInput{TierName: "Gold", Benefits: "Logo placement"}); err != nil {
		t.Fatalf("create tier: %v", err)
	}
}

func TestPartnershipService_DeleteLeavesTiers(t *testing.T) {
	gdb := setupPartnershipServiceTestDB(t)
	svc := NewPartnershipService(gdb)

	partnership, err := svc.Create(PartnershipInput{Type: "sponsorship", Title: "Sponsors"})
	if err != nil {
		t.Fatalf("create partnership: %v", err)
	}
	tier, err := svc.CreateTier(partnership.ID, TierInput{TierName: "Silver"})
	if err != nil {
		t.Fatalf("create tier: %v", err)
	}

	if err := svc.Delete(partnership.ID); err != nil {
		t.Fatalf("delete partnership: %v", err)
	}

	// 等级与合作不级联，记录保留但所属方已不存在
	if _, err := svc.Get(partnership.ID); !errors.Is(err, ErrPartnershipNotFound) {
		t.Fatalf("expected partnership gone, got %v", err)
	}
	survivor, err := svc.GetTier(tier.ID)
	if err != nil {
		t.Fatalf("tier must survive partnership deletion: %v", err)
	}
	if survivor.PartnershipID != partnership.ID {
		t.Fatalf("tier lost its partnership reference")
	}
}

func TestPartnershipBenefitsList(t *testing.T) {
	t.Parallel()

	partnership := db.Partnership{Benefits: "First line\r\n\r\n  Second line  \nThird"}
	got := partnership.BenefitsList()
	want := []string{"First line", "Second line", "Third"}
	if len(got) != len(want) {
		t.Fatalf("expected %d benefits, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("benefit %d = %q, want %q", i, got[i], want[i])
		}
	}

	empty := db.Partnership{Benefits: "  \r\n \n "}
	if list := empty.BenefitsList(); len(list) != 0 {
		t.Fatalf("expected no benefits for blank text, got %v", list)
	}
}

func TestPartnershipService_UpdateKeepsImageWhenBlank(t *testing.T) {
	gdb := setupPartnershipServiceTestDB(t)
	svc := NewPartnershipService(gdb)

	partnership, err := svc.Create(PartnershipInput{
		Type:          "collaboration",
		Title:         "Media Partners",
		ImageFilename: "banner.jpg",
	})
	if err != nil {
		t.Fatalf("create partnership: %v", err)
	}

	updated, err := svc.Update(partnership.ID, PartnershipInput{
		Type:  "collaboration",
		Title: "Media Partners Updated",
	})
	if err != nil {
		t.Fatalf("update partnership: %v", err)
	}
	if updated.ImageFilename != "banner.jpg" {
		t.Fatalf("blank upload must keep existing image, got %q", updated.ImageFilename)
	}
}
