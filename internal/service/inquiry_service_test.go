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

func setupInquiryServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:inquiry-service-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(&db.Inquiry{}, &db.InquiryType{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return gdb
}

func validSubmission() InquirySubmission {
	return InquirySubmission{
		Name:    "Ada",
		Email:   "ada@example.com",
		Message: "Tell me more about trade fairs.",
	}
}

func TestInquiryService_SubmitHoneypotDiscardsSilently(t *testing.T) {
	gdb := setupInquiryServiceTestDB(t)
	svc := NewInquiryService(gdb)

	in := validSubmission()
	in.Honeypot = "http://spam.example"

	result, err := svc.Submit(in, 0, time.Now().UnixMilli())
	if err != nil {
		t.Fatalf("honeypot hit must look like success: %v", err)
	}
	if !result.Discarded {
		t.Fatalf("expected discarded result")
	}
	if result.Inquiry != nil {
		t.Fatalf("discarded submission must not carry a record")
	}
	if result.TypeName != "General Inquiry" {
		t.Fatalf("discarded result needs the generic label, got %q", result.TypeName)
	}

	var count int64
	gdb.Model(&db.Inquiry{}).Count(&count)
	if count != 0 {
		t.Fatalf("honeypot submission must write nothing, found %d rows", count)
	}
}

func TestInquiryService_SubmitTimingGate(t *testing.T) {
	gdb := setupInquiryServiceTestDB(t)
	svc := NewInquiryService(gdb)

	serverMs := int64(10_000_000)

	// 2999 毫秒：拒绝
	if _, err := svc.Submit(validSubmission(), serverMs-2999, serverMs); !errors.Is(err, ErrInquiryTooFast) {
		t.Fatalf("expected ErrInquiryTooFast at 2999ms, got %v", err)
	}

	// 恰好 3000 毫秒：放行
	if _, err := svc.Submit(validSubmission(), serverMs-3000, serverMs); err != nil {
		t.Fatalf("3000ms gap must pass: %v", err)
	}

	// 客户端时间戳缺失（0）或为负：检查放行
	if _, err := svc.Submit(validSubmission(), 0, serverMs); err != nil {
		t.Fatalf("missing client timestamp must pass: %v", err)
	}
	if _, err := svc.Submit(validSubmission(), -42, serverMs); err != nil {
		t.Fatalf("negative client timestamp must pass: %v", err)
	}
}

func TestInquiryService_SubmitRequiresNameAndEmail(t *testing.T) {
	gdb := setupInquiryServiceTestDB(t)
	svc := NewInquiryService(gdb)

	in := validSubmission()
	in.Email = "   "
	if _, err := svc.Submit(in, 0, time.Now().UnixMilli()); !errors.Is(err, ErrInquiryFieldsMissing) {
		t.Fatalf("expected ErrInquiryFieldsMissing, got %v", err)
	}

	var count int64
	gdb.Model(&db.Inquiry{}).Count(&count)
	if count != 0 {
		t.Fatalf("rejected submission must write nothing, found %d rows", count)
	}
}

func TestInquiryService_SubmitResolvesType(t *testing.T) {
	gdb := setupInquiryServiceTestDB(t)
	svc := NewInquiryService(gdb)

	partnerType, err := svc.CreateType(InquiryTypeInput{Name: "Partnership", Value: "partnership"})
	if err != nil {
		t.Fatalf("create type: %v", err)
	}

	tests := []struct {
		name     string
		raw      string
		wantLink bool
		wantName string
	}{
		{"valid id", fmt.Sprintf("%d", partnerType.ID), true, "Partnership"},
		{"unknown id", "9999", false, "General Inquiry"},
		{"non numeric", "partnership", false, "General Inquiry"},
		{"empty", "", false, "General Inquiry"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			in := validSubmission()
			in.InquiryTypeRaw = tt.raw

			result, err := svc.Submit(in, 0, time.Now().UnixMilli())
			if err != nil {
				t.Fatalf("submit: %v", err)
			}
			if result.TypeName != tt.wantName {
				t.Fatalf("expected type name %q, got %q", tt.wantName, result.TypeName)
			}
			if tt.wantLink {
				if result.Inquiry.InquiryTypeID == nil || *result.Inquiry.InquiryTypeID != partnerType.ID {
					t.Fatalf("expected linked inquiry type")
				}
			} else if result.Inquiry.InquiryTypeID != nil {
				t.Fatalf("expected no type link for raw %q", tt.raw)
			}
			if result.Inquiry.Status != db.InquiryStatusNew {
				t.Fatalf("new inquiries must start in status New, got %q", result.Inquiry.Status)
			}
		})
	}
}

func TestInquiryService_UpdateStatus(t *testing.T) {
	gdb := setupInquiryServiceTestDB(t)
	svc := NewInquiryService(gdb)

	result, err := svc.Submit(validSubmission(), 0, time.Now().UnixMilli())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	id := result.Inquiry.ID

	if _, err := svc.UpdateStatus(id, "Archived"); !errors.Is(err, ErrInquiryStatusInvalid) {
		t.Fatalf("expected ErrInquiryStatusInvalid, got %v", err)
	}
	reloaded, err := svc.Get(id)
	if err != nil {
		t.Fatalf("get inquiry: %v", err)
	}
	if reloaded.Status != db.InquiryStatusNew {
		t.Fatalf("invalid transition must leave status untouched, got %q", reloaded.Status)
	}

	// 任意合法状态间都可互达，包括回退
	for _, status := range []string{db.InquiryStatusClosed, db.InquiryStatusReplied, db.InquiryStatusNew} {
		updated, err := svc.UpdateStatus(id, status)
		if err != nil {
			t.Fatalf("update to %s: %v", status, err)
		}
		if updated.Status != status {
			t.Fatalf("expected status %q, got %q", status, updated.Status)
		}
	}
}

func TestInquiryService_CountByStatus(t *testing.T) {
	gdb := setupInquiryServiceTestDB(t)
	svc := NewInquiryService(gdb)

	for i := 0; i < 3; i++ {
		if _, err := svc.Submit(validSubmission(), 0, time.Now().UnixMilli()); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}
	result, err := svc.Submit(validSubmission(), 0, time.Now().UnixMilli())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := svc.UpdateStatus(result.Inquiry.ID, db.InquiryStatusClosed); err != nil {
		t.Fatalf("close inquiry: %v", err)
	}

	newCount, err := svc.CountByStatus(db.InquiryStatusNew)
	if err != nil {
		t.Fatalf("count new: %v", err)
	}
	if newCount != 3 {
		t.Fatalf("expected 3 new inquiries, got %d", newCount)
	}
}
