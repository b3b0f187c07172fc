package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// captureLogs swaps the global zerolog writer for the duration of the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	orig := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = orig })
	return &buf
}

func serveRedacted(t *testing.T, target string, hdr map[string]string) string {
	t.Helper()
	out := captureLogs(t)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RedactingLogger(RedactOptions{MaskHeaders: []string{"X-Api-Key"}}))
	r.GET("/inquiries", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return out.String()
}

func TestRedactingLogger_ScrubsEmailAndPhoneFromQuery(t *testing.T) {
	logged := serveRedacted(t, "/inquiries?email=jane@example.com&phone=%2B254722000000", nil)

	if strings.Contains(logged, "jane@example.com") {
		t.Fatalf("email leaked into logs: %s", logged)
	}
	if strings.Contains(logged, "254722000000") {
		t.Fatalf("phone leaked into logs: %s", logged)
	}
	if !strings.Contains(logged, "[REDACTED:email]") {
		t.Fatalf("expected email redaction marker: %s", logged)
	}
	if !strings.Contains(logged, "http_request") {
		t.Fatalf("expected http_request event: %s", logged)
	}
}

func TestRedactingLogger_MasksSensitiveHeaders(t *testing.T) {
	logged := serveRedacted(t, "/inquiries", map[string]string{
		"Authorization": "Bearer secret-token",
		"X-Api-Key":     "k-12345",
		"Accept":        "application/json",
	})

	if strings.Contains(logged, "secret-token") || strings.Contains(logged, "k-12345") {
		t.Fatalf("sensitive header value leaked: %s", logged)
	}
	if !strings.Contains(logged, "[REDACTED]") {
		t.Fatalf("expected masked header marker: %s", logged)
	}
	if !strings.Contains(logged, "application/json") {
		t.Fatalf("benign headers should survive: %s", logged)
	}
}

func TestRedactingLogger_UUIDRedactedBeforePhone(t *testing.T) {
	logged := serveRedacted(t, "/inquiries?ref=123e4567-e89b-12d3-a456-426614174000", nil)

	if strings.Contains(logged, "123e4567-e89b-12d3-a456-426614174000") {
		t.Fatalf("uuid leaked into logs: %s", logged)
	}
	if !strings.Contains(logged, "[REDACTED:id]") {
		t.Fatalf("uuid should be redacted as an id, not a phone number: %s", logged)
	}
}
