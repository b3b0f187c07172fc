// Package loancalc implements loan affordability arithmetic: the amortized
// monthly payment, the total cost of a loan including the lender's processing
// fee, and the eligibility check against an offer's amount band.
//
// The functions here are pure and stateless. They are the single source of
// truth for payment figures: the HTTP layer exposes them both as a standalone
// calculator endpoint and as per-offer decoration, so the numbers a client
// displays always agree with what the backend computes.
package loancalc

import (
	"math"

	"github.com/pesacompare/go-compare-backend/internal/domain"
)

// MonthlyPayment returns the fixed monthly installment for an amortizing loan
// of the given principal, annual interest rate (percent), and term in months.
//
// A zero rate degenerates to straight-line repayment (principal / termMonths),
// avoiding the division by zero in the amortization formula. A non-positive
// term yields 0.
func MonthlyPayment(principal, annualRatePercent float64, termMonths int) float64 {
	if termMonths <= 0 || principal <= 0 {
		return 0
	}
	r := annualRatePercent / 100 / 12
	if r == 0 {
		return principal / float64(termMonths)
	}
	pow := math.Pow(1+r, float64(termMonths))
	return principal * r * pow / (pow - 1)
}

// TotalCost returns the full amount repaid over the life of the loan: the sum
// of all monthly installments plus the up-front processing fee (a percentage
// of the principal).
func TotalCost(principal, annualRatePercent float64, termMonths int, processingFeePercent float64) float64 {
	return MonthlyPayment(principal, annualRatePercent, termMonths)*float64(termMonths) +
		principal*processingFeePercent/100
}

// IsEligible reports whether amount falls within the offer's inclusive
// [MinAmount, MaxAmount] band. Eligibility gates whether payment figures are
// surfaced for an offer; ineligible offers are still listed, just without
// computed costs.
func IsEligible(amount float64, offer domain.LoanOffer) bool {
	return amount >= offer.MinAmount && amount <= offer.MaxAmount
}
