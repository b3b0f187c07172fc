// Inquiry HTTP handlers.
//
// This file exposes the inquiry intake and admin listing endpoints:
//   - POST /api/inquiries  (submit; supports Idempotency-Key replay)
//   - GET  /api/inquiries  (list all, optionally paginated)
//
// Handlers are transport-thin: they bind the payload, delegate validation and
// persistence to the inquiry service, and translate service errors into HTTP
// results. A submission missing name, email, or inquiry_type fails with 400
// and the body {"error": "Missing required fields"}, matching what the web
// client checks for.
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pesacompare/go-compare-backend/internal/domain"
	"github.com/pesacompare/go-compare-backend/internal/http/middleware"
	"github.com/pesacompare/go-compare-backend/internal/repo"
	"github.com/pesacompare/go-compare-backend/internal/services"
	"github.com/pesacompare/go-compare-backend/internal/utils"
)

//
// DTOs
//

// SubmitInquiryRequest is the JSON payload for submitting an inquiry.
// Required-field enforcement happens in the service layer so that absent and
// empty values are treated identically.
type SubmitInquiryRequest struct {
	Name        string `json:"name"         example:"Jane Wanjiku"`
	Email       string `json:"email"        example:"jane@example.com"`
	Phone       string `json:"phone"        example:"+254 722 000 000"`
	InquiryType string `json:"inquiry_type" example:"consumer"`
	Details     string `json:"details"      example:"Looking for comprehensive motor cover"`
}

// SubmitInquiryResponse acknowledges a stored inquiry with its assigned id.
type SubmitInquiryResponse struct {
	ID      int64  `json:"id"      example:"1"`
	Message string `json:"message" example:"Inquiry submitted successfully"`
}

// Pagination carries pagination metadata for list responses.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
}

// ListInquiriesResponse wraps a page of inquiries and pagination information.
// It is returned only when the caller asks for pagination explicitly; the
// default response is a plain array of all inquiries.
type ListInquiriesResponse struct {
	Inquiries  []domain.Inquiry `json:"inquiries"`
	Pagination Pagination       `json:"pagination"`
}

// inquiryDB exposes the underlying gorm handle when the inquiry service is
// the concrete implementation; used for idempotency record persistence.
func (h *Handlers) inquiryDB() *gorm.DB {
	if svc, ok := h.inquirySvc.(*services.InquiryService); ok {
		return svc.DB
	}
	return nil
}

//
// Handlers
//

// SubmitInquiry godoc
// @ID          submitInquiry
// @Summary     Submit an inquiry
// @Description Validates and stores a user inquiry, returning the assigned id. Retrying with the same Idempotency-Key within the TTL returns the original id without inserting a duplicate.
// @Tags        Inquiries
// @Accept      json
// @Produce     json
//
// @Param       Idempotency-Key  header  string  false "Safe-retry key"  example(inq-2b1f4c)
// @Param       body             body    handlers.SubmitInquiryRequest true "Inquiry payload"
//
// @Success     200  {object} handlers.SubmitInquiryResponse
// @Failure     400  {object} handlers.ErrorResponse "Missing required fields"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /inquiries [post]
func (h *Handlers) SubmitInquiry(c *gin.Context) {
	ctx := c.Request.Context()
	db := h.inquiryDB()

	// Serve a previously recorded submission without re-executing the write.
	if middleware.IsReplay(c) && db != nil {
		if key, present := middleware.GetIdempotencyKey(c); present {
			if rec, err := repo.GetIdempotencyKey(ctx, db, key, nowUTC()); err == nil {
				ok(c, rec.Status, SubmitInquiryResponse{ID: rec.InquiryID, Message: "Inquiry submitted successfully"})
				return
			}
		}
	}

	var req SubmitInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	inq, err := h.inquirySvc.Submit(ctx, services.InquiryInput{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		InquiryType: req.InquiryType,
		Details:     req.Details,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields):
			fail(c, http.StatusBadRequest, ErrCodeValidation, "Missing required fields")
		case errors.Is(err, services.ErrInvalidInquiryType):
			fail(c, http.StatusBadRequest, ErrCodeValidation, "Invalid inquiry type")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		}
		return
	}

	// Record the key→inquiry binding so retries replay this response. A lost
	// race means another request with the same key already stored a binding;
	// answer with that one.
	if key, present := middleware.GetIdempotencyKey(c); present && db != nil {
		if _, err := repo.CreateIdempotencyKey(ctx, db, key, inq.ID, http.StatusOK, h.idemTTL); errors.Is(err, repo.ErrDuplicate) {
			if rec, lookupErr := repo.GetIdempotencyKey(ctx, db, key, nowUTC()); lookupErr == nil {
				ok(c, rec.Status, SubmitInquiryResponse{ID: rec.InquiryID, Message: "Inquiry submitted successfully"})
				return
			}
		}
	}

	ok(c, http.StatusOK, SubmitInquiryResponse{ID: inq.ID, Message: "Inquiry submitted successfully"})
}

// ListInquiries godoc
// @ID          listInquiries
// @Summary     List inquiries
// @Description Returns all inquiries in creation order. Intended for admin use; when page or page_size query params are present, returns a paginated envelope instead of the full array.
// @Tags        Inquiries
// @Produce     json
//
// @Param       page       query  int  false "Page number"     minimum(1)
// @Param       page_size  query  int  false "Items per page"  minimum(1) maximum(100)
//
// @Success     200  {array}  domain.Inquiry
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /inquiries [get]
func (h *Handlers) ListInquiries(c *gin.Context) {
	ctx := c.Request.Context()

	if c.Query("page") == "" && c.Query("page_size") == "" {
		items, err := h.inquirySvc.List(ctx)
		if err != nil {
			fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
			return
		}
		ok(c, http.StatusOK, items)
		return
	}

	page, pageSize := clampPagination(c)
	items, total, err := h.inquirySvc.ListPage(ctx, page, pageSize)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	ok(c, http.StatusOK, ListInquiriesResponse{
		Inquiries: items,
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
		},
	})
}

//
// Helpers
//

// nowUTC keeps idempotency TTL checks on a single clock.
func nowUTC() time.Time { return time.Now().UTC() }

// clampPagination parses and bounds page and page_size query params to sane
// defaults and limits, returning (page, pageSize).
func clampPagination(c *gin.Context) (page, pageSize int) {
	const (
		defaultPage     = 1
		defaultPageSize = 20
		maxPageSize     = 100
	)
	page = utils.AtoiDefault(c.Query("page"), defaultPage)
	if page < 1 {
		page = 1
	}
	pageSize = utils.AtoiDefault(c.Query("page_size"), defaultPageSize)
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return
}
