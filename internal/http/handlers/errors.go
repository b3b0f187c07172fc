// Package handlers defines HTTP-layer error codes used across all API
// endpoints.
//
// The codes are mapped to HTTP responses via the fail() helper in this
// package and give clients a stable, machine-readable taxonomy alongside the
// human-readable message carried in the "error" field.
//
// Conventions:
//   - Codes are lowercase, snake_case, and domain-agnostic unless noted.
//   - Generic codes (bad_request, not_found, ...) mirror common HTTP status
//     semantics to aid interoperability.
package handlers

const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeNotFound         = "not_found"
	ErrCodeMethodNotAllowed = "method_not_allowed"
	ErrCodeRateLimited      = "too_many_requests"
	ErrCodeInternal         = "internal_error"

	// Domain-specific:
	ErrCodeValidation   = "validation_failed"
	ErrCodeCreateFailed = "create_failed"
	ErrCodeListFailed   = "list_failed"
)
