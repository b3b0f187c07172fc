package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func serveWithSecurity(t *testing.T, opts SecurityOptions, mutate func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SecurityHeaders(opts))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	if mutate != nil {
		mutate(req)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSecurityHeaders_Baseline(t *testing.T) {
	w := serveWithSecurity(t, SecurityOptions{}, nil)

	want := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"Referrer-Policy":        "no-referrer",
	}
	for k, v := range want {
		if got := w.Header().Get(k); got != v {
			t.Fatalf("%s = %q, want %q", k, got, v)
		}
	}
	if got := w.Header().Get("Strict-Transport-Security"); got != "" {
		t.Fatalf("HSTS should be absent by default, got %q", got)
	}
	if got := w.Header().Get("Cache-Control"); got != "" {
		t.Fatalf("Cache-Control should be absent by default, got %q", got)
	}
}

func TestSecurityHeaders_HSTSOnlyOnHTTPS(t *testing.T) {
	opts := SecurityOptions{EnableHSTS: true, HSTSMaxAge: 60}

	w := serveWithSecurity(t, opts, nil)
	if got := w.Header().Get("Strict-Transport-Security"); got != "" {
		t.Fatalf("HSTS must not be set on plain HTTP, got %q", got)
	}

	w = serveWithSecurity(t, opts, func(req *http.Request) {
		req.Header.Set("X-Forwarded-Proto", "https")
	})
	if got := w.Header().Get("Strict-Transport-Security"); got != "max-age=60; includeSubDomains" {
		t.Fatalf("HSTS = %q", got)
	}
}

func TestSecurityHeaders_OptionalHeaders(t *testing.T) {
	w := serveWithSecurity(t, SecurityOptions{NoStore: true, EnablePolicy: true}, nil)

	if got := w.Header().Get("Cache-Control"); got != "no-store" {
		t.Fatalf("Cache-Control = %q", got)
	}
	if got := w.Header().Get("Permissions-Policy"); got == "" {
		t.Fatalf("expected Permissions-Policy header")
	}
}
