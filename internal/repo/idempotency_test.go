package repo

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pesacompare/go-compare-backend/internal/domain"
)

func newIdemDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:idem_repo_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.IdempotencyKey{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func TestIdempotencyKey_RoundTrip(t *testing.T) {
	db := newIdemDB(t)

	rec, err := CreateIdempotencyKey(context.Background(), db, "abc-123", 42, 200, time.Hour)
	if err != nil {
		t.Fatalf("CreateIdempotencyKey: %v", err)
	}
	if rec.InquiryID != 42 || rec.Status != 200 {
		t.Fatalf("unexpected record: %+v", rec)
	}

	got, err := GetIdempotencyKey(context.Background(), db, "abc-123", time.Now().UTC())
	if err != nil {
		t.Fatalf("GetIdempotencyKey: %v", err)
	}
	if got.InquiryID != 42 {
		t.Fatalf("lookup mismatch: %+v", got)
	}
}

func TestIdempotencyKey_DuplicateKeyRejected(t *testing.T) {
	db := newIdemDB(t)

	if _, err := CreateIdempotencyKey(context.Background(), db, "dup", 1, 200, time.Hour); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := CreateIdempotencyKey(context.Background(), db, "dup", 2, 200, time.Hour)
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestIdempotencyKey_ExpiredNotReturned(t *testing.T) {
	db := newIdemDB(t)

	if _, err := CreateIdempotencyKey(context.Background(), db, "short", 7, 200, time.Millisecond); err != nil {
		t.Fatalf("create: %v", err)
	}
	// Look up well past the TTL without sleeping.
	_, err := GetIdempotencyKey(context.Background(), db, "short", time.Now().UTC().Add(time.Minute))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for expired key, got %v", err)
	}
}

func TestIdempotencyKey_BlankKeyNotFound(t *testing.T) {
	db := newIdemDB(t)

	_, err := GetIdempotencyKey(context.Background(), db, "   ", time.Now().UTC())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for blank key, got %v", err)
	}
}
