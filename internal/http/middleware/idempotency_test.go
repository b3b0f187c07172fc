package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestIdempotencyValidator_NoHeaderIsNoop(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	var sawKey bool
	r.Use(IdempotencyValidator(IdempotencyOptions{}, nil))
	r.POST("/inquiries", func(c *gin.Context) {
		_, sawKey = GetIdempotencyKey(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/inquiries", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if sawKey {
		t.Fatalf("no key should be stashed without the header")
	}
}

func TestIdempotencyValidator_InvalidKey400(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(IdempotencyValidator(IdempotencyOptions{MaxLen: 8}, nil))
	r.POST("/inquiries", func(c *gin.Context) { c.Status(http.StatusOK) })

	cases := []string{
		"way-too-long-for-the-limit",
		"bad key with spaces",
		"emoji-🙂",
	}
	for _, key := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/inquiries", nil)
		req.Header.Set(HeaderIdempotencyKey, key)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("key %q: status = %d, want 400", key, w.Code)
		}
	}
}

func TestIdempotencyValidator_StashesKeyAndDetectsReplay(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	lookup := func(ctx context.Context, key string, now time.Time) (bool, error) {
		return key == "seen-before", nil
	}
	var gotKey string
	var replay, bypass bool
	r.Use(IdempotencyValidator(IdempotencyOptions{}, lookup))
	r.POST("/inquiries", func(c *gin.Context) {
		gotKey, _ = GetIdempotencyKey(c)
		replay = IsReplay(c)
		bypass = IsRateBypass(c)
		c.Status(http.StatusOK)
	})

	// Fresh key: stashed, no replay.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/inquiries", nil)
	req.Header.Set(HeaderIdempotencyKey, "fresh-key")
	r.ServeHTTP(w, req)
	if gotKey != "fresh-key" || replay || bypass {
		t.Fatalf("fresh key: got key=%q replay=%v bypass=%v", gotKey, replay, bypass)
	}

	// Known key: replay and rate bypass flags set.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/inquiries", nil)
	req.Header.Set(HeaderIdempotencyKey, "seen-before")
	r.ServeHTTP(w, req)
	if gotKey != "seen-before" || !replay || !bypass {
		t.Fatalf("known key: got key=%q replay=%v bypass=%v", gotKey, replay, bypass)
	}
}
