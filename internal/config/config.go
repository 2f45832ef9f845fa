package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// QuickBooks API base URLs by environment.
const (
	qbSandboxBaseURL    = "https://sandbox-quickbooks.api.intuit.com"
	qbProductionBaseURL = "https://quickbooks.api.intuit.com"
)

// Config holds all application configuration.
// Values are loaded from environment variables with sensible defaults.
type Config struct {
	// Server
	Port     int
	LogLevel string

	// QuickBooks
	QuickBooksEnv     string // "sandbox" or "production"
	QuickBooksBaseURL string
	QuickBooksToken   string

	// HTTP client
	HTTPTimeout time.Duration

	// Resilience
	MaxRetries     int
	InitialBackoff time.Duration
	MaxConcurrency int

	// Cache
	RedisURL    string
	OverviewTTL time.Duration
	CompanyTTL  time.Duration

	// Observability
	OTLPEndpoint string

	// Auth (optional; empty secret disables JWT verification)
	JWTSecret string

	// CORS
	AllowedOrigins []string
}

// Load reads configuration from environment variables with defaults.
func Load() *Config {
	env := getEnv("QUICKBOOKS_ENVIRONMENT", "sandbox")
	baseURL := qbSandboxBaseURL
	if env == "production" {
		baseURL = qbProductionBaseURL
	}

	return &Config{
		Port:     getEnvInt("PORT", 8080),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		QuickBooksEnv:     env,
		QuickBooksBaseURL: getEnv("QUICKBOOKS_BASE_URL", baseURL),
		QuickBooksToken:   getEnv("QUICKBOOKS_ACCESS_TOKEN", ""),

		HTTPTimeout: getEnvDuration("HTTP_TIMEOUT", 40*time.Second),

		MaxRetries:     getEnvInt("MAX_RETRIES", 3),
		InitialBackoff: getEnvDuration("INITIAL_BACKOFF", 100*time.Millisecond),
		MaxConcurrency: getEnvInt("MAX_CONCURRENCY", 50),

		RedisURL:    getEnv("REDIS_URL", ""),
		OverviewTTL: getEnvDuration("OVERVIEW_CACHE_TTL", 5*time.Minute),
		CompanyTTL:  getEnvDuration("COMPANY_CACHE_TTL", 30*time.Minute),

		OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),

		JWTSecret: getEnv("JWT_SECRET", ""),

		AllowedOrigins: splitCSV(getEnv("ALLOWED_ORIGINS", "*")),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
