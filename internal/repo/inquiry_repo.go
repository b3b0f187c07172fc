// Package repo implements the data persistence layer for the catalog and
// inquiry entities, backed by GORM. This file provides repository functions
// for the Inquiry model.
//
// The inquiries table is append-only. Id assignment is left entirely to the
// database: SQLite's AUTOINCREMENT primary key guarantees strictly increasing,
// never-reused ids even under concurrent inserts, so no counter is kept in
// process memory.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/pesacompare/go-compare-backend/internal/domain"
)

// CreateInquiry inserts a new inquiry row. The id is assigned by the database
// and populated on the returned record; CreatedAt is set to UTC.
//
// On success, it returns the persisted Inquiry. On failure, it returns a DB
// error.
func CreateInquiry(ctx context.Context, db *gorm.DB, name, email, phone, inquiryType, details string) (*domain.Inquiry, error) {
	inq := &domain.Inquiry{
		Name:        name,
		Email:       email,
		Phone:       phone,
		InquiryType: inquiryType,
		Details:     details,
		CreatedAt:   time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(inq).Error; err != nil {
		return nil, err
	}
	return inq, nil
}

// ListInquiries returns all inquiries in creation (id) order. It returns an
// empty slice when none have been submitted. On DB error, it returns the
// error.
func ListInquiries(ctx context.Context, db *gorm.DB) ([]domain.Inquiry, error) {
	out := []domain.Inquiry{}
	err := db.WithContext(ctx).
		Order("id").
		Find(&out).Error
	return out, err
}

// CountInquiries returns the total number of submitted inquiries.
func CountInquiries(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.Inquiry{}).
		Count(&total).Error
	return total, err
}

// ListInquiriesPage returns a slice of inquiries in creation order starting
// at offset. Use CountInquiries to obtain the total for pagination metadata.
//
// The caller is responsible for computing offset and limit (e.g.,
// (page-1)*pageSize).
func ListInquiriesPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.Inquiry, error) {
	out := []domain.Inquiry{}
	err := db.WithContext(ctx).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}
