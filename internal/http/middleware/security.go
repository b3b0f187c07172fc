package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// SecurityOptions configures the SecurityHeaders middleware.
//
// Fields:
//   - EnableHSTS: when true, adds Strict-Transport-Security on HTTPS
//     requests (or requests forwarded as HTTPS via X-Forwarded-Proto).
//   - HSTSMaxAge: max-age in seconds for the HSTS header. Values <= 0
//     fall back to one year.
//   - NoStore: when true, adds Cache-Control: no-store to every response.
//     Catalog endpoints rely on ETag revalidation, so this is off by
//     default and only enabled via configuration.
//   - EnablePolicy: when true, adds a restrictive Permissions-Policy header.
type SecurityOptions struct {
	EnableHSTS   bool
	HSTSMaxAge   int
	NoStore      bool
	EnablePolicy bool
}

// SecurityHeaders returns middleware that applies common hardening headers
// to every response:
//
//   - X-Content-Type-Options: nosniff
//   - X-Frame-Options: DENY
//   - Referrer-Policy: no-referrer
//
// plus the optional headers controlled by opts.
func SecurityHeaders(opts SecurityOptions) gin.HandlerFunc {
	maxAge := opts.HSTSMaxAge
	if maxAge <= 0 {
		maxAge = 31536000
	}
	hsts := "max-age=" + strconv.Itoa(maxAge) + "; includeSubDomains"

	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "no-referrer")

		if opts.NoStore {
			h.Set("Cache-Control", "no-store")
		}
		if opts.EnablePolicy {
			h.Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
		}
		if opts.EnableHSTS {
			if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
				h.Set("Strict-Transport-Security", hsts)
			}
		}

		c.Next()
	}
}
