// Package services – InquiryService
//
// This file implements inquiry intake and retrieval. Intake validates the
// submission at the service boundary (required fields, known inquiry type),
// applies defaults for the optional fields, and delegates persistence to the
// repository, where the database assigns the strictly increasing id. Sentinel
// errors (ErrMissingFields, ErrInvalidInquiryType) are returned for
// predictable cases so handlers can map them to HTTP results consistently.
package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/pesacompare/go-compare-backend/internal/domain"
	"github.com/pesacompare/go-compare-backend/internal/repo"
)

// InquiryInput carries the fields of an inquiry submission. Name, Email, and
// InquiryType are required; Phone and Details default to the empty string.
type InquiryInput struct {
	Name        string
	Email       string
	Phone       string
	InquiryType string
	Details     string
}

// InquiryService implements the use-cases around user inquiries.
type InquiryService struct {
	// DB is the database handle used for all inquiry operations.
	DB *gorm.DB
}

// Submit validates in and persists a new inquiry.
//
// Semantics and validation:
//   - Name, Email, and InquiryType must be non-empty after trimming;
//     otherwise ErrMissingFields.
//   - InquiryType must be one of the accepted values; otherwise
//     ErrInvalidInquiryType.
//   - Phone and Details are optional and stored as given (empty when absent).
//
// On success it returns the stored record including the database-assigned id
// and creation timestamp. Unexpected persistence failures propagate as the
// underlying DB error.
func (s *InquiryService) Submit(ctx context.Context, in InquiryInput) (*domain.Inquiry, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	inquiryType := strings.TrimSpace(in.InquiryType)

	if name == "" || email == "" || inquiryType == "" {
		return nil, ErrMissingFields
	}
	if !domain.ValidInquiryType(inquiryType) {
		return nil, ErrInvalidInquiryType
	}

	return repo.CreateInquiry(ctx, s.DB, name, email, in.Phone, inquiryType, in.Details)
}

// List returns all inquiries in creation order.
func (s *InquiryService) List(ctx context.Context) ([]domain.Inquiry, error) {
	return repo.ListInquiries(ctx, s.DB)
}

// ListPage returns a page of inquiries in creation order together with the
// total count. page and pageSize are 1-based; out-of-range values are coerced
// to sane defaults.
func (s *InquiryService) ListPage(ctx context.Context, page, pageSize int) ([]domain.Inquiry, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	total, err := repo.CountInquiries(ctx, s.DB)
	if err != nil {
		return nil, 0, err
	}
	items, err := repo.ListInquiriesPage(ctx, s.DB, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
