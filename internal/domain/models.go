// Package domain defines the persistence models for the comparison catalog
// (insurance providers with quotes, loan providers with offers) and for user
// inquiries. These types are mapped with GORM and form the core data layer of
// the application.
//
// JSON field names use snake_case to match the wire format consumed by the
// web client (e.g. logo_url, quote_count, inquiry_type).
package domain

import "time"

// InsuranceProvider is an insurer listed in the insurance catalog. Providers
// are seeded once at startup and never mutated through the public API.
//
// Fields:
//   - ID: autoincrement integer primary key, assigned by SQLite on seed.
//   - Type: product category, e.g. "Motor Insurance".
//   - Rating: aggregate customer rating in [0,5].
//   - QuoteCount: derived column (COUNT of quotes); populated only by the
//     provider-list query, never stored.
type InsuranceProvider struct {
	ID         int64     `json:"id"          gorm:"primaryKey;autoIncrement"`
	Name       string    `json:"name"        gorm:"type:varchar(255);not null"`
	Type       string    `json:"type"        gorm:"type:varchar(64);not null"`
	LogoURL    string    `json:"logo_url"    gorm:"type:text"`
	Website    string    `json:"website"     gorm:"type:text"`
	Phone      string    `json:"phone"       gorm:"type:varchar(32)"`
	Email      string    `json:"email"       gorm:"type:varchar(255)"`
	Rating     float64   `json:"rating"      gorm:"not null;default:0"`
	CreatedAt  time.Time `json:"created_at"`
	QuoteCount int64     `json:"quote_count" gorm:"->;-:migration"`
}

// TableName returns the database table name for InsuranceProvider.
func (InsuranceProvider) TableName() string { return "insurance_providers" }

// InsuranceQuote is a priced motor-cover quote belonging to exactly one
// insurance provider. Monetary amounts are in KES.
type InsuranceQuote struct {
	ID             int64     `json:"id"             gorm:"primaryKey;autoIncrement"`
	ProviderID     int64     `json:"provider_id"    gorm:"not null;index:idx_quotes_provider"`
	VehicleType    string    `json:"vehicle_type"   gorm:"type:varchar(64)"`
	CoverageType   string    `json:"coverage_type"  gorm:"type:varchar(64)"`
	AnnualPremium  float64   `json:"annual_premium"`
	MonthlyPremium float64   `json:"monthly_premium"`
	Deductible     float64   `json:"deductible"`
	CoverageLimit  float64   `json:"coverage_limit"`
	CreatedAt      time.Time `json:"created_at"`

	// Provider is the owning insurer. The FK only matters for seed-time
	// integrity, the catalog is read-only once seeded.
	Provider InsuranceProvider `json:"-" gorm:"foreignKey:ProviderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for InsuranceQuote.
func (InsuranceQuote) TableName() string { return "insurance_quotes" }

// LoanProvider is a lender listed in the loan catalog. Loan providers form a
// namespace distinct from insurance providers: ids overlap between the two
// tables and must never be mixed.
type LoanProvider struct {
	ID         int64     `json:"id"          gorm:"primaryKey;autoIncrement"`
	Name       string    `json:"name"        gorm:"type:varchar(255);not null"`
	Type       string    `json:"type"        gorm:"type:varchar(64);not null"`
	LogoURL    string    `json:"logo_url"    gorm:"type:text"`
	Website    string    `json:"website"     gorm:"type:text"`
	Phone      string    `json:"phone"       gorm:"type:varchar(32)"`
	Email      string    `json:"email"       gorm:"type:varchar(255)"`
	Rating     float64   `json:"rating"      gorm:"not null;default:0"`
	CreatedAt  time.Time `json:"created_at"`
	OfferCount int64     `json:"offer_count" gorm:"->;-:migration"`
}

// TableName returns the database table name for LoanProvider.
func (LoanProvider) TableName() string { return "loan_providers" }

// LoanOffer is a loan product belonging to exactly one loan provider.
// MinAmount/MaxAmount bound the eligible principal (KES); InterestRate and
// ProcessingFee are annual percentages.
type LoanOffer struct {
	ID            int64     `json:"id"             gorm:"primaryKey;autoIncrement"`
	ProviderID    int64     `json:"provider_id"    gorm:"not null;index:idx_offers_provider"`
	LoanType      string    `json:"loan_type"      gorm:"type:varchar(64)"`
	MinAmount     float64   `json:"min_amount"`
	MaxAmount     float64   `json:"max_amount"`
	InterestRate  float64   `json:"interest_rate"`
	ProcessingFee float64   `json:"processing_fee"`
	TenureMonths  int       `json:"tenure_months"`
	CreatedAt     time.Time `json:"created_at"`

	Provider LoanProvider `json:"-" gorm:"foreignKey:ProviderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for LoanOffer.
func (LoanOffer) TableName() string { return "loan_offers" }

// Inquiry is a user-submitted contact request. The inquiries table is
// append-only: rows are created via the intake endpoint and listed for admin
// purposes, never updated or deleted.
//
// ID assignment is delegated to SQLite's AUTOINCREMENT so concurrent
// submissions can never observe duplicate or reused ids.
type Inquiry struct {
	ID          int64     `json:"id"           gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name"         gorm:"type:varchar(255);not null"`
	Email       string    `json:"email"        gorm:"type:varchar(255);not null;index"`
	Phone       string    `json:"phone"        gorm:"type:varchar(32)"`
	InquiryType string    `json:"inquiry_type" gorm:"type:varchar(32);not null"`
	Details     string    `json:"details"      gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName returns the database table name for Inquiry.
func (Inquiry) TableName() string { return "inquiries" }

// Inquiry types accepted by the intake endpoint.
const (
	InquiryTypeConsumer    = "consumer"
	InquiryTypeProvider    = "provider"
	InquiryTypePartnership = "partnership"
	InquiryTypeFeedback    = "feedback"
	InquiryTypeOther       = "other"
)

// ValidInquiryType reports whether t is one of the accepted inquiry types.
func ValidInquiryType(t string) bool {
	switch t {
	case InquiryTypeConsumer, InquiryTypeProvider, InquiryTypePartnership,
		InquiryTypeFeedback, InquiryTypeOther:
		return true
	}
	return false
}
