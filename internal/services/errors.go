// Package services defines the business logic for catalog queries and inquiry
// intake. This file centralizes common service-level error values so that they
// can be consistently returned by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer; translation
// into user-facing messages or HTTP status codes is performed at the handler
// layer.
package services

import "errors"

var (
	// ErrMissingFields is returned when an inquiry submission omits one of
	// the required fields (name, email, inquiry_type) or supplies it empty.
	ErrMissingFields = errors.New("missing required fields")

	// ErrInvalidInquiryType is returned when the submitted inquiry_type is
	// not one of the accepted values.
	ErrInvalidInquiryType = errors.New("invalid inquiry type")
)
