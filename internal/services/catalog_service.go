// Package services – CatalogService
//
// This file implements the read side of the comparison catalog: provider
// listings with derived sub-record counts, per-provider quote/offer lookups,
// and affordability decoration of loan offers. The catalog is seeded once at
// startup and read-only afterwards, so every method here is a pure query and
// safe for unsynchronized concurrent use.
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/pesacompare/go-compare-backend/internal/domain"
	"github.com/pesacompare/go-compare-backend/internal/loancalc"
	"github.com/pesacompare/go-compare-backend/internal/repo"
)

// CatalogService answers lookups over the seeded provider catalog.
type CatalogService struct {
	// DB is the database handle used for all catalog queries.
	DB *gorm.DB
}

// OfferEstimate is a loan offer annotated with affordability figures for a
// requested amount. MonthlyPayment and TotalCost are present only when the
// amount falls inside the offer's band; ineligible offers are listed without
// computed costs so clients can still render them.
type OfferEstimate struct {
	domain.LoanOffer
	Eligible       bool     `json:"eligible"`
	MonthlyPayment *float64 `json:"monthly_payment,omitempty"`
	TotalCost      *float64 `json:"total_cost,omitempty"`
}

// InsuranceProviders returns the insurance catalog in seed order, each
// provider carrying its quote_count.
func (s *CatalogService) InsuranceProviders(ctx context.Context) ([]domain.InsuranceProvider, error) {
	return repo.ListInsuranceProviders(ctx, s.DB)
}

// InsuranceQuotes returns the quotes for providerID in insertion order. An
// unknown providerID yields an empty slice, never an error: the client probes
// providers freely and "no quotes" and "no such provider" are equivalent for
// display purposes.
func (s *CatalogService) InsuranceQuotes(ctx context.Context, providerID int64) ([]domain.InsuranceQuote, error) {
	return repo.ListInsuranceQuotes(ctx, s.DB, providerID)
}

// LoanProviders returns the loan catalog in seed order, each provider
// carrying its offer_count.
func (s *CatalogService) LoanProviders(ctx context.Context) ([]domain.LoanProvider, error) {
	return repo.ListLoanProviders(ctx, s.DB)
}

// LoanOffers returns the offers for providerID in insertion order, with the
// same empty-on-unknown semantics as InsuranceQuotes.
func (s *CatalogService) LoanOffers(ctx context.Context, providerID int64) ([]domain.LoanOffer, error) {
	return repo.ListLoanOffers(ctx, s.DB, providerID)
}

// EstimateLoanOffers returns the offers for providerID decorated with
// eligibility and, for eligible offers, the amortized monthly payment and
// total cost of borrowing amount over each offer's tenure.
//
// The same loancalc functions back the public calculator endpoint, so the
// figures shown next to an offer always match a standalone calculation with
// the same inputs.
func (s *CatalogService) EstimateLoanOffers(ctx context.Context, providerID int64, amount float64) ([]OfferEstimate, error) {
	offers, err := repo.ListLoanOffers(ctx, s.DB, providerID)
	if err != nil {
		return nil, err
	}

	out := make([]OfferEstimate, 0, len(offers))
	for _, offer := range offers {
		est := OfferEstimate{LoanOffer: offer}
		if loancalc.IsEligible(amount, offer) {
			est.Eligible = true
			mp := loancalc.MonthlyPayment(amount, offer.InterestRate, offer.TenureMonths)
			tc := loancalc.TotalCost(amount, offer.InterestRate, offer.TenureMonths, offer.ProcessingFee)
			est.MonthlyPayment = &mp
			est.TotalCost = &tc
		}
		out = append(out, est)
	}
	return out, nil
}
