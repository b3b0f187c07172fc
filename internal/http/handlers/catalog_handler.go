// Catalog HTTP handlers.
//
// This file exposes the read-only comparison endpoints:
//   - GET /api/insurance                        (insurance providers + quote_count)
//   - GET /api/insurance/{providerId}/quotes    (quotes for one insurer)
//   - GET /api/loans                            (loan providers + offer_count)
//   - GET /api/loans/{providerId}/offers        (offers, optionally with affordability figures)
//   - GET /api/loans/calculator                 (standalone affordability calculator)
//
// Handlers are transport-thin: they parse input, delegate to the catalog
// service, and translate results into HTTP responses. An unknown provider id
// (including a non-numeric one) produces 200 with an empty JSON array, never
// an error — clients probe providers freely.
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pesacompare/go-compare-backend/internal/domain"
	"github.com/pesacompare/go-compare-backend/internal/loancalc"
	"github.com/pesacompare/go-compare-backend/internal/repo"
	"github.com/pesacompare/go-compare-backend/internal/services"
)

//
// Service contracts (context-aware)
//

// CatalogService defines the catalog lookups consumed by HTTP handlers.
//
// Implementations must be safe for concurrent use and honor the provided
// context for cancellation and timeouts.
type CatalogService interface {
	// InsuranceProviders lists the insurance catalog with quote counts.
	InsuranceProviders(ctx context.Context) ([]domain.InsuranceProvider, error)
	// InsuranceQuotes lists one insurer's quotes; empty when unknown.
	InsuranceQuotes(ctx context.Context, providerID int64) ([]domain.InsuranceQuote, error)
	// LoanProviders lists the loan catalog with offer counts.
	LoanProviders(ctx context.Context) ([]domain.LoanProvider, error)
	// LoanOffers lists one lender's offers; empty when unknown.
	LoanOffers(ctx context.Context, providerID int64) ([]domain.LoanOffer, error)
	// EstimateLoanOffers lists one lender's offers decorated with
	// affordability figures for the requested amount.
	EstimateLoanOffers(ctx context.Context, providerID int64, amount float64) ([]services.OfferEstimate, error)
}

// InquiryService defines the inquiry intake operations consumed by HTTP
// handlers.
//
// Implementations must be safe for concurrent use and honor the provided
// context for cancellation and timeouts.
type InquiryService interface {
	// Submit validates and persists a new inquiry.
	Submit(ctx context.Context, in services.InquiryInput) (*domain.Inquiry, error)
	// List returns all inquiries in creation order.
	List(ctx context.Context) ([]domain.Inquiry, error)
	// ListPage returns a page of inquiries and the total count.
	ListPage(ctx context.Context, page, pageSize int) ([]domain.Inquiry, int64, error)
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints for the catalog and inquiries. It
// depends on abstract service interfaces to keep transport concerns separate
// from business logic.
type Handlers struct {
	catalogSvc CatalogService
	inquirySvc InquiryService
	idemTTL    time.Duration
}

// New constructs a Handlers instance bound to the given services. idemTTL
// controls how long a recorded Idempotency-Key replays the original inquiry
// response.
func New(catalogSvc CatalogService, inquirySvc InquiryService, idemTTL time.Duration) *Handlers {
	return &Handlers{catalogSvc: catalogSvc, inquirySvc: inquirySvc, idemTTL: idemTTL}
}

// providerID parses the :providerId path segment. The bool result is false
// for non-numeric values, which callers treat as an unknown provider.
func providerID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("providerId"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// catalogDB exposes the underlying gorm handle when the catalog service is
// the concrete implementation; used for the best-effort ETag pre-check.
func (h *Handlers) catalogDB() *gorm.DB {
	if svc, ok := h.catalogSvc.(*services.CatalogService); ok {
		return svc.DB
	}
	return nil
}

// catalogETag writes a weak ETag derived from the table's row count and
// newest created_at, and reports whether the request's If-None-Match matched
// (in which case a 304 has been written).
func catalogETag(c *gin.Context, db *gorm.DB, name string, model any) bool {
	if db == nil {
		return false
	}
	count, maxTS, err := repo.CatalogStats(c.Request.Context(), db, model)
	if err != nil {
		return false
	}
	var ts int64
	if maxTS != nil {
		ts = maxTS.Unix()
	}
	etag := fmt.Sprintf(`W/"%s:%d:%d"`, name, count, ts)
	c.Header("ETag", etag)
	if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
		c.Status(http.StatusNotModified)
		return true
	}
	return false
}

//
// Handlers
//

// ListInsurance godoc
// @ID          listInsurance
// @Summary     List insurance providers
// @Description Returns all insurance providers in catalog order, each with its derived quote_count. Supports weak ETag via If-None-Match.
// @Tags        Insurance
// @Produce     json
//
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"  example(W/\"abc123\")
//
// @Success     200  {array}  domain.InsuranceProvider
// @Success     304  {string} string "Not Modified"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /insurance [get]
func (h *Handlers) ListInsurance(c *gin.Context) {
	if catalogETag(c, h.catalogDB(), "insurance", &domain.InsuranceProvider{}) {
		return
	}

	providers, err := h.catalogSvc.InsuranceProviders(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, providers)
}

// ListInsuranceQuotes godoc
// @ID          listInsuranceQuotes
// @Summary     List quotes for an insurance provider
// @Description Returns the provider's quotes in catalog order. Unknown provider ids yield an empty array, not an error.
// @Tags        Insurance
// @Produce     json
//
// @Param       providerId  path  string  true  "Insurance provider ID"  example(1)
//
// @Success     200  {array}  domain.InsuranceQuote
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /insurance/{providerId}/quotes [get]
func (h *Handlers) ListInsuranceQuotes(c *gin.Context) {
	id, valid := providerID(c)
	if !valid {
		ok(c, http.StatusOK, []domain.InsuranceQuote{})
		return
	}

	quotes, err := h.catalogSvc.InsuranceQuotes(c.Request.Context(), id)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, quotes)
}

// ListLoans godoc
// @ID          listLoans
// @Summary     List loan providers
// @Description Returns all loan providers in catalog order, each with its derived offer_count. Supports weak ETag via If-None-Match.
// @Tags        Loans
// @Produce     json
//
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"  example(W/\"abc123\")
//
// @Success     200  {array}  domain.LoanProvider
// @Success     304  {string} string "Not Modified"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /loans [get]
func (h *Handlers) ListLoans(c *gin.Context) {
	if catalogETag(c, h.catalogDB(), "loans", &domain.LoanProvider{}) {
		return
	}

	providers, err := h.catalogSvc.LoanProviders(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, providers)
}

// ListLoanOffers godoc
// @ID          listLoanOffers
// @Summary     List offers for a loan provider
// @Description Returns the provider's offers in catalog order. When an amount query parameter is supplied, each offer is annotated with eligibility and, if eligible, the amortized monthly payment and total cost. Unknown provider ids yield an empty array.
// @Tags        Loans
// @Produce     json
//
// @Param       providerId  path   string  true   "Loan provider ID"            example(1)
// @Param       amount      query  number  false  "Requested principal (KES)"   example(50000)
//
// @Success     200  {array}  services.OfferEstimate
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /loans/{providerId}/offers [get]
func (h *Handlers) ListLoanOffers(c *gin.Context) {
	id, valid := providerID(c)
	if !valid {
		ok(c, http.StatusOK, []domain.LoanOffer{})
		return
	}
	ctx := c.Request.Context()

	if raw := c.Query("amount"); raw != "" {
		amount, err := strconv.ParseFloat(raw, 64)
		if err != nil || amount < 0 {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "amount must be a non-negative number")
			return
		}
		estimates, err := h.catalogSvc.EstimateLoanOffers(ctx, id, amount)
		if err != nil {
			fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
			return
		}
		ok(c, http.StatusOK, estimates)
		return
	}

	offers, err := h.catalogSvc.LoanOffers(ctx, id)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, offers)
}

// LoanCalculation is the response of the standalone affordability calculator.
type LoanCalculation struct {
	Principal      float64 `json:"principal"`
	InterestRate   float64 `json:"interest_rate"`
	TermMonths     int     `json:"term_months"`
	ProcessingFee  float64 `json:"processing_fee"`
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalCost      float64 `json:"total_cost"`
}

// CalculateLoan godoc
// @ID          calculateLoan
// @Summary     Compute loan affordability figures
// @Description Returns the amortized monthly payment and total cost for the given principal, annual rate, term, and processing fee. Uses the same arithmetic that decorates offer listings.
// @Tags        Loans
// @Produce     json
//
// @Param       principal  query  number  true   "Loan principal (KES)"              example(100000)
// @Param       rate       query  number  true   "Annual interest rate (percent)"    example(12)
// @Param       months     query  int     true   "Term in months"                    example(12)
// @Param       fee        query  number  false  "Processing fee (percent)"          example(2.5)
//
// @Success     200  {object} handlers.LoanCalculation
// @Failure     400  {object} handlers.ErrorResponse "Invalid parameters"
// @Router      /loans/calculator [get]
func (h *Handlers) CalculateLoan(c *gin.Context) {
	principal, err := strconv.ParseFloat(c.Query("principal"), 64)
	if err != nil || principal < 0 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "principal must be a non-negative number")
		return
	}
	rate, err := strconv.ParseFloat(c.Query("rate"), 64)
	if err != nil || rate < 0 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "rate must be a non-negative number")
		return
	}
	months, err := strconv.Atoi(c.Query("months"))
	if err != nil || months <= 0 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "months must be a positive integer")
		return
	}
	fee := 0.0
	if raw := c.Query("fee"); raw != "" {
		fee, err = strconv.ParseFloat(raw, 64)
		if err != nil || fee < 0 {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "fee must be a non-negative number")
			return
		}
	}

	ok(c, http.StatusOK, LoanCalculation{
		Principal:      principal,
		InterestRate:   rate,
		TermMonths:     months,
		ProcessingFee:  fee,
		MonthlyPayment: loancalc.MonthlyPayment(principal, rate, months),
		TotalCost:      loancalc.TotalCost(principal, rate, months, fee),
	})
}
