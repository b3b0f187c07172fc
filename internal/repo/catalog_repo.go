// Package repo implements the data persistence layer for the catalog and
// inquiry entities, backed by GORM. This file provides the read-only queries
// over the seeded comparison catalog.
//
// The repository follows a "thin" approach: it performs persistence and simple
// query composition, leaving orchestration and affordability rules to the
// services package.
//
// Error semantics:
//   - Lookups for a providerId with no rows return an empty slice, never an
//     error: "unknown provider" and "provider without sub-records" are
//     deliberately indistinguishable at this layer.
//   - On DB errors (connectivity, malformed schema, etc.), the raw gorm
//     error is propagated.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/pesacompare/go-compare-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for consistency across the service layer
// and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// ListInsuranceProviders returns every insurance provider in seed (id) order,
// each annotated with its derived quote_count.
func ListInsuranceProviders(ctx context.Context, db *gorm.DB) ([]domain.InsuranceProvider, error) {
	var out []domain.InsuranceProvider
	err := db.WithContext(ctx).
		Model(&domain.InsuranceProvider{}).
		Select("insurance_providers.*, COUNT(insurance_quotes.id) AS quote_count").
		Joins("LEFT JOIN insurance_quotes ON insurance_quotes.provider_id = insurance_providers.id").
		Group("insurance_providers.id").
		Order("insurance_providers.id").
		Find(&out).Error
	return out, err
}

// ListInsuranceQuotes returns the quotes belonging to providerID in insertion
// order. An unknown providerID yields an empty slice, not an error.
func ListInsuranceQuotes(ctx context.Context, db *gorm.DB, providerID int64) ([]domain.InsuranceQuote, error) {
	out := []domain.InsuranceQuote{}
	err := db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Order("id").
		Find(&out).Error
	return out, err
}

// ListLoanProviders returns every loan provider in seed (id) order, each
// annotated with its derived offer_count.
func ListLoanProviders(ctx context.Context, db *gorm.DB) ([]domain.LoanProvider, error) {
	var out []domain.LoanProvider
	err := db.WithContext(ctx).
		Model(&domain.LoanProvider{}).
		Select("loan_providers.*, COUNT(loan_offers.id) AS offer_count").
		Joins("LEFT JOIN loan_offers ON loan_offers.provider_id = loan_providers.id").
		Group("loan_providers.id").
		Order("loan_providers.id").
		Find(&out).Error
	return out, err
}

// ListLoanOffers returns the offers belonging to providerID in insertion
// order. An unknown providerID yields an empty slice, not an error.
func ListLoanOffers(ctx context.Context, db *gorm.DB, providerID int64) ([]domain.LoanOffer, error) {
	out := []domain.LoanOffer{}
	err := db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Order("id").
		Find(&out).Error
	return out, err
}

// CatalogStats returns aggregate metadata for a catalog table: the total row
// count and the greatest created_at among those rows. The HTTP layer uses it
// to derive ETags for the provider-list endpoints, which is cheap because the
// catalog only changes when the seed changes.
//
// model must be a pointer to one of the catalog models (e.g.
// &domain.InsuranceProvider{}). When the table is empty the returned count is
// 0 and maxCreatedAt is nil.
func CatalogStats(ctx context.Context, db *gorm.DB, model any) (count int64, maxCreatedAt *time.Time, err error) {
	q := db.WithContext(ctx).Model(model)

	if err = q.Count(&count).Error; err != nil {
		return 0, nil, err
	}
	if count == 0 {
		return 0, nil, nil
	}

	// Latest created_at (avoid MAX() -> TEXT in SQLite).
	var row struct {
		CreatedAt time.Time
	}
	if err = q.Select("created_at").Order("created_at DESC").Limit(1).Scan(&row).Error; err != nil {
		return 0, nil, err
	}
	return count, &row.CreatedAt, nil
}
