// Package repo implements the data persistence layer for the catalog and
// inquiry entities, backed by GORM. This file performs the one-time bulk load
// of the comparison catalog.
//
// Seeding is idempotent: if the insurance_providers table already contains
// rows the whole load is skipped, so restarting the process against a
// persistent database never duplicates catalog entries. The load runs in a
// single transaction so a failed seed leaves the catalog empty rather than
// half-populated.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/pesacompare/go-compare-backend/internal/domain"
)

// Seed populates the catalog tables with the fixed provider/quote/offer data
// when the database is empty. It reports whether the load actually ran.
func Seed(ctx context.Context, db *gorm.DB) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&domain.InsuranceProvider{}).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		insurers := insuranceProviders()
		if err := tx.Create(&insurers).Error; err != nil {
			return err
		}
		quotes := insuranceQuotes()
		if err := tx.Create(&quotes).Error; err != nil {
			return err
		}
		lenders := loanProviders()
		if err := tx.Create(&lenders).Error; err != nil {
			return err
		}
		offers := loanOffers()
		return tx.Create(&offers).Error
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// Catalog data. Kenyan insurers and lenders with representative pricing; ids
// are assigned by AUTOINCREMENT in slice order, and the quote/offer
// provider_id values below rely on that order.

func insuranceProviders() []domain.InsuranceProvider {
	return []domain.InsuranceProvider{
		{Name: "Jubilee Insurance", Type: "Motor Insurance", LogoURL: "https://via.placeholder.com/100?text=Jubilee", Website: "https://jubileeinsurance.co.ke", Phone: "+254 20 3636000", Email: "info@jubileeinsurance.co.ke", Rating: 4.5},
		{Name: "AXA Insurance", Type: "Motor Insurance", LogoURL: "https://via.placeholder.com/100?text=AXA", Website: "https://www.axa.co.ke", Phone: "+254 20 3636000", Email: "info@axa.co.ke", Rating: 4.3},
		{Name: "Britam", Type: "Motor Insurance", LogoURL: "https://via.placeholder.com/100?text=Britam", Website: "https://www.britam.com", Phone: "+254 20 4200000", Email: "info@britam.com", Rating: 4.2},
		{Name: "UAP Old Mutual", Type: "Motor Insurance", LogoURL: "https://via.placeholder.com/100?text=UAP", Website: "https://www.uapoldmutual.com", Phone: "+254 20 3636000", Email: "info@uapoldmutual.com", Rating: 4.1},
		{Name: "Allianz", Type: "Motor Insurance", LogoURL: "https://via.placeholder.com/100?text=Allianz", Website: "https://www.allianz.co.ke", Phone: "+254 20 3636000", Email: "info@allianz.co.ke", Rating: 4.4},
	}
}

func insuranceQuotes() []domain.InsuranceQuote {
	return []domain.InsuranceQuote{
		{ProviderID: 1, VehicleType: "Saloon", CoverageType: "Third Party", AnnualPremium: 12000, MonthlyPremium: 1000, Deductible: 500, CoverageLimit: 500000},
		{ProviderID: 1, VehicleType: "Saloon", CoverageType: "Comprehensive", AnnualPremium: 25000, MonthlyPremium: 2100, Deductible: 1000, CoverageLimit: 1000000},
		{ProviderID: 2, VehicleType: "Saloon", CoverageType: "Third Party", AnnualPremium: 11500, MonthlyPremium: 960, Deductible: 500, CoverageLimit: 500000},
		{ProviderID: 2, VehicleType: "Saloon", CoverageType: "Comprehensive", AnnualPremium: 24000, MonthlyPremium: 2000, Deductible: 1000, CoverageLimit: 1000000},
		{ProviderID: 3, VehicleType: "Saloon", CoverageType: "Third Party", AnnualPremium: 12500, MonthlyPremium: 1040, Deductible: 500, CoverageLimit: 500000},
		{ProviderID: 3, VehicleType: "Saloon", CoverageType: "Comprehensive", AnnualPremium: 26000, MonthlyPremium: 2170, Deductible: 1000, CoverageLimit: 1000000},
	}
}

func loanProviders() []domain.LoanProvider {
	return []domain.LoanProvider{
		{Name: "M-Pesa Loan", Type: "Personal Loan", LogoURL: "https://via.placeholder.com/100?text=MPesa", Website: "https://www.m-pesa.co.ke", Phone: "+254 722 000 000", Email: "support@m-pesa.co.ke", Rating: 4.6},
		{Name: "Equity Bank", Type: "Personal Loan", LogoURL: "https://via.placeholder.com/100?text=Equity", Website: "https://www.equitybank.co.ke", Phone: "+254 20 3200000", Email: "info@equitybank.co.ke", Rating: 4.2},
		{Name: "KCB Bank", Type: "Personal Loan", LogoURL: "https://via.placeholder.com/100?text=KCB", Website: "https://www.kcbgroup.com", Phone: "+254 20 3200000", Email: "info@kcbgroup.com", Rating: 4.1},
		{Name: "Safaricom Loans", Type: "Personal Loan", LogoURL: "https://via.placeholder.com/100?text=Safaricom", Website: "https://www.safaricom.co.ke", Phone: "+254 722 000 000", Email: "support@safaricom.co.ke", Rating: 4.3},
		{Name: "Branch International", Type: "SME Loan", LogoURL: "https://via.placeholder.com/100?text=Branch", Website: "https://www.branchapp.com", Phone: "+254 722 000 000", Email: "support@branchapp.com", Rating: 4.4},
	}
}

func loanOffers() []domain.LoanOffer {
	return []domain.LoanOffer{
		{ProviderID: 1, LoanType: "Personal Loan", MinAmount: 1000, MaxAmount: 50000, InterestRate: 8.5, ProcessingFee: 2.5, TenureMonths: 12},
		{ProviderID: 1, LoanType: "Personal Loan", MinAmount: 1000, MaxAmount: 50000, InterestRate: 8.5, ProcessingFee: 2.5, TenureMonths: 24},
		{ProviderID: 2, LoanType: "Personal Loan", MinAmount: 5000, MaxAmount: 100000, InterestRate: 7.5, ProcessingFee: 1.5, TenureMonths: 12},
		{ProviderID: 2, LoanType: "Personal Loan", MinAmount: 5000, MaxAmount: 100000, InterestRate: 7.5, ProcessingFee: 1.5, TenureMonths: 24},
		{ProviderID: 3, LoanType: "Personal Loan", MinAmount: 10000, MaxAmount: 200000, InterestRate: 6.5, ProcessingFee: 1.0, TenureMonths: 12},
		{ProviderID: 5, LoanType: "SME Loan", MinAmount: 50000, MaxAmount: 500000, InterestRate: 12.0, ProcessingFee: 3.0, TenureMonths: 12},
	}
}
