package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load with defaults: %v", err)
	}

	if cfg.Port != "3001" {
		t.Fatalf("Port = %q, want 3001", cfg.Port)
	}
	if cfg.DBPath != "pesacompare.db" {
		t.Fatalf("DBPath = %q", cfg.DBPath)
	}
	if cfg.APIBasePath != "/api" {
		t.Fatalf("APIBasePath = %q", cfg.APIBasePath)
	}
	if cfg.GinMode != "release" {
		t.Fatalf("GinMode = %q", cfg.GinMode)
	}
	if cfg.RateRPS != 5.0 || cfg.RateBurst != 10 {
		t.Fatalf("rate limits = %v/%d", cfg.RateRPS, cfg.RateBurst)
	}
	if cfg.IdempotencyTTL != 24*time.Hour {
		t.Fatalf("IdempotencyTTL = %v", cfg.IdempotencyTTL)
	}
	if len(cfg.CORS.AllowedOrigins) != 0 {
		t.Fatalf("default CORS allowlist should be empty: %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.OTEL.Enabled {
		t.Fatalf("OTEL should be disabled by default")
	}
}

func TestLoad_EnvOverridesAndNormalization(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("LOG_LEVEL", "WARNING")
	t.Setenv("GIN_MODE", "bogus")
	t.Setenv("API_BASE_PATH", "v1/api/")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example , https://b.example ,")
	t.Setenv("RATE_RPS", "2.5")
	t.Setenv("IDEMPOTENCY_TTL", "30m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("Port = %q", cfg.Port)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("LogLevel = %q, want warn", cfg.LogLevel)
	}
	if cfg.GinMode != "release" {
		t.Fatalf("unknown GIN_MODE should normalize to release, got %q", cfg.GinMode)
	}
	if cfg.APIBasePath != "/v1/api" {
		t.Fatalf("APIBasePath = %q, want /v1/api", cfg.APIBasePath)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 || cfg.CORS.AllowedOrigins[0] != "https://a.example" {
		t.Fatalf("CORS origins = %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.RateRPS != 2.5 {
		t.Fatalf("RateRPS = %v", cfg.RateRPS)
	}
	if cfg.IdempotencyTTL != 30*time.Minute {
		t.Fatalf("IdempotencyTTL = %v", cfg.IdempotencyTTL)
	}
}

func TestLoad_ValidationFailures(t *testing.T) {
	cases := []struct {
		key, val string
	}{
		{"LOG_LEVEL", "verbose"},
		{"READ_TIMEOUT", "-1s"},
		{"MAX_HEADER_BYTES", "-1"},
		{"RATE_RPS", "-5"},
		{"RATE_BURST", "0"},
		{"IDEMPOTENCY_TTL", "-1h"},
		{"OTEL_TRACES_SAMPLER_ARG", "2"},
	}
	for _, tc := range cases {
		t.Run(tc.key, func(t *testing.T) {
			t.Setenv(tc.key, tc.val)
			if _, err := Load(); err == nil {
				t.Fatalf("%s=%s should fail validation", tc.key, tc.val)
			}
		})
	}
}

func TestMustLoad_PanicsOnInvalid(t *testing.T) {
	t.Setenv("RATE_BURST", "0")
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	MustLoad()
}

func TestNormalizeBasePath(t *testing.T) {
	cases := map[string]string{
		"":        "/",
		"/":       "/",
		"api":     "/api",
		"/api/":   "/api",
		"/v2/api": "/v2/api",
	}
	for in, want := range cases {
		if got := normalizeBasePath(in); got != want {
			t.Fatalf("normalizeBasePath(%q) = %q, want %q", in, got, want)
		}
	}
}
