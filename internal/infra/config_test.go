package infra

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("AFFILIATE_API_URL", "")
	t.Setenv("PORT", "")
	t.Setenv("PAGE_SIZE", "")
	t.Setenv("CACHE_TTL_SECONDS", "")
	t.Setenv("DEFAULT_LOCALE", "")
	t.Setenv("TRUST_PROXY", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.APIBaseURL != "http://localhost:8080/api" {
		t.Fatalf("APIBaseURL mismatch: got %q", cfg.APIBaseURL)
	}
	if cfg.Port != "3000" {
		t.Fatalf("Port mismatch: got %q", cfg.Port)
	}
	if cfg.PageSize != 10 {
		t.Fatalf("PageSize mismatch: got %d", cfg.PageSize)
	}
	if cfg.CacheTTL != 5*time.Second {
		t.Fatalf("CacheTTL mismatch: got %s", cfg.CacheTTL)
	}
	if cfg.DefaultLocale != "id" {
		t.Fatalf("DefaultLocale mismatch: got %q", cfg.DefaultLocale)
	}
	if cfg.TrustProxy {
		t.Fatalf("TrustProxy should default to false")
	}
}

func TestLoadConfigTrustProxy(t *testing.T) {
	t.Setenv("AFFILIATE_API_URL", "")
	t.Setenv("TRUST_PROXY", "true")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if !cfg.TrustProxy {
		t.Fatalf("TrustProxy mismatch: got false")
	}
}

func TestLoadConfigTrimsAPIBaseURL(t *testing.T) {
	t.Setenv("AFFILIATE_API_URL", "https://affiliate.example.com/api/")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.APIBaseURL != "https://affiliate.example.com/api" {
		t.Fatalf("APIBaseURL mismatch: got %q", cfg.APIBaseURL)
	}
}

func TestLoadConfigRejectsRelativeAPIBaseURL(t *testing.T) {
	t.Setenv("AFFILIATE_API_URL", "/api")

	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error for relative AFFILIATE_API_URL")
	}
}

func TestLoadConfigRejectsPageSizeOutOfRange(t *testing.T) {
	t.Setenv("AFFILIATE_API_URL", "")
	t.Setenv("PAGE_SIZE", "500")

	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error for PAGE_SIZE=500")
	}
}

func TestLoadConfigZeroTTLDisablesCache(t *testing.T) {
	t.Setenv("AFFILIATE_API_URL", "")
	t.Setenv("CACHE_TTL_SECONDS", "0")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.CacheTTL != 0 {
		t.Fatalf("CacheTTL mismatch: got %s", cfg.CacheTTL)
	}
}
