package infra

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv           string
	Port             string
	APIBaseURL       string
	APIToken         string
	APITimeout       time.Duration
	PageSize         int
	CacheTTL         time.Duration
	RedisURL         string
	GeoIPDBPath      string
	DefaultLocale    string
	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
	RateLimitPerMin  int
	TrustProxy       bool
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:           getEnv("APP_ENV", "development"),
		Port:             getEnv("PORT", "3000"),
		APIBaseURL:       strings.TrimRight(getEnv("AFFILIATE_API_URL", "http://localhost:8080/api"), "/"),
		APIToken:         strings.TrimSpace(os.Getenv("AFFILIATE_API_TOKEN")),
		APITimeout:       time.Second * time.Duration(getEnvInt("AFFILIATE_API_TIMEOUT_SECONDS", 15)),
		PageSize:         getEnvInt("PAGE_SIZE", 10),
		CacheTTL:         time.Second * time.Duration(getEnvInt("CACHE_TTL_SECONDS", 5)),
		RedisURL:         strings.TrimSpace(os.Getenv("REDIS_URL")),
		GeoIPDBPath:      strings.TrimSpace(os.Getenv("GEOIP_DB_PATH")),
		DefaultLocale:    strings.ToLower(getEnv("DEFAULT_LOCALE", "id")),
		HTTPReadTimeout:  time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout: time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 30)),
		HTTPIdleTimeout:  time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		RateLimitPerMin:  getEnvInt("RATE_LIMIT_PER_MINUTE", 60),
		TrustProxy:       getEnvBool("TRUST_PROXY", false),
	}

	u, err := url.Parse(cfg.APIBaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("AFFILIATE_API_URL must be an absolute http(s) url, got %q", cfg.APIBaseURL)
	}

	if cfg.PageSize <= 0 || cfg.PageSize > 100 {
		return nil, fmt.Errorf("PAGE_SIZE must be between 1 and 100, got %d", cfg.PageSize)
	}

	if cfg.CacheTTL < 0 {
		cfg.CacheTTL = 0
	}

	return cfg, nil
}

// IsDevelopment reports whether the service runs with developer defaults.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
