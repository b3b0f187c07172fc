package repo

import (
	"context"
	"fmt"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pesacompare/go-compare-backend/internal/domain"
)

func newInquiryDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:inquiry_repo_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.Inquiry{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func TestCreateInquiry_AssignsIDAndTimestamp(t *testing.T) {
	db := newInquiryDB(t)

	start := time.Now().UTC().Add(-time.Minute)
	inq, err := CreateInquiry(context.Background(), db, "Wanjiku", "wanjiku@example.com", "+254700000001", domain.InquiryTypeConsumer, "Interested in motor cover")
	if err != nil {
		t.Fatalf("CreateInquiry: %v", err)
	}
	if inq.ID == 0 {
		t.Fatalf("expected assigned id, got 0")
	}
	if inq.CreatedAt.Before(start) {
		t.Fatalf("CreatedAt seems unset: %v", inq.CreatedAt)
	}

	var got domain.Inquiry
	if err := db.First(&got, inq.ID).Error; err != nil {
		t.Fatalf("load created inquiry: %v", err)
	}
	if got.Email != "wanjiku@example.com" || got.InquiryType != domain.InquiryTypeConsumer {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
}

func TestCreateInquiry_IDsStrictlyIncreasing(t *testing.T) {
	db := newInquiryDB(t)

	var prev int64
	for i := 0; i < 5; i++ {
		inq, err := CreateInquiry(context.Background(), db, "N", "n@example.com", "", domain.InquiryTypeOther, "")
		if err != nil {
			t.Fatalf("CreateInquiry #%d: %v", i, err)
		}
		if inq.ID <= prev {
			t.Fatalf("ids not strictly increasing: %d after %d", inq.ID, prev)
		}
		prev = inq.ID
	}
}

func TestListInquiries_EmptyAndOrdered(t *testing.T) {
	db := newInquiryDB(t)

	got, err := ListInquiries(context.Background(), db)
	if err != nil {
		t.Fatalf("ListInquiries: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}

	for _, name := range []string{"first", "second", "third"} {
		if _, err := CreateInquiry(context.Background(), db, name, name+"@example.com", "", domain.InquiryTypeFeedback, ""); err != nil {
			t.Fatalf("CreateInquiry %s: %v", name, err)
		}
	}

	got, err = ListInquiries(context.Background(), db)
	if err != nil {
		t.Fatalf("ListInquiries: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 inquiries, got %d", len(got))
	}
	if got[0].Name != "first" || got[2].Name != "third" {
		t.Fatalf("inquiries not in submission order: %+v", got)
	}
}

func TestListInquiriesPage_WindowAndCount(t *testing.T) {
	db := newInquiryDB(t)

	for i := 0; i < 7; i++ {
		if _, err := CreateInquiry(context.Background(), db, fmt.Sprintf("user-%d", i), "u@example.com", "", domain.InquiryTypeConsumer, ""); err != nil {
			t.Fatalf("CreateInquiry #%d: %v", i, err)
		}
	}

	total, err := CountInquiries(context.Background(), db)
	if err != nil {
		t.Fatalf("CountInquiries: %v", err)
	}
	if total != 7 {
		t.Fatalf("expected total 7, got %d", total)
	}

	page, err := ListInquiriesPage(context.Background(), db, 5, 5)
	if err != nil {
		t.Fatalf("ListInquiriesPage: %v", err)
	}
	if len(page) != 2 {
		t.Fatalf("expected last page of 2, got %d", len(page))
	}
	if page[0].Name != "user-5" || page[1].Name != "user-6" {
		t.Fatalf("unexpected page contents: %+v", page)
	}
}
