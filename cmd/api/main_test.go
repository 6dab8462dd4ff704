package main

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	cfg := loadConfig()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.CORSOrigin != "*" {
		t.Fatalf("expected default CORS *, got %s", cfg.CORSOrigin)
	}
	if cfg.RateRPS != 50 || cfg.RateBurst != 100 {
		t.Fatalf("expected default rate 50/100, got %v/%d", cfg.RateRPS, cfg.RateBurst)
	}
}

func TestEnvOr(t *testing.T) {
	t.Setenv("STAFFGRID_TEST_VAR", "custom")
	if v := envOr("STAFFGRID_TEST_VAR", "default"); v != "custom" {
		t.Fatalf("expected custom, got %s", v)
	}
	if v := envOr("STAFFGRID_MISSING_VAR", "fallback"); v != "fallback" {
		t.Fatalf("expected fallback, got %s", v)
	}
}

func TestEnvNumericFallbacks(t *testing.T) {
	t.Setenv("STAFFGRID_RPS", "not a number")
	if v := envFloat("STAFFGRID_RPS", 50); v != 50 {
		t.Fatalf("expected fallback 50, got %v", v)
	}
	t.Setenv("STAFFGRID_BURST", "12")
	if v := envInt("STAFFGRID_BURST", 100); v != 12 {
		t.Fatalf("expected 12, got %d", v)
	}
}
