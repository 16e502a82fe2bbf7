package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultHost    = "weatherapi-com.p.rapidapi.com"
	defaultBaseURL = "https://weatherapi-com.p.rapidapi.com"
)

// ProviderConfig is the fixed credential and endpoint set for the weather
// provider. It is built once at startup and passed by value.
type ProviderConfig struct {
	APIKey  string
	Host    string
	BaseURL string

	// Outbound rate limiting; RateLimitRPS <= 0 disables it.
	RateLimitRPS   float64
	RateLimitBurst int
}

type AppConfig struct {
	Provider ProviderConfig

	// CacheTTL is the freshness window for cached per-city reports.
	CacheTTL time.Duration
	// CacheSweepInterval controls how often expired cache entries are evicted.
	CacheSweepInterval time.Duration

	HTTPTimeout time.Duration

	// OTLPEndpoint enables tracing when set (host:port of an OTLP gRPC collector).
	OTLPEndpoint string
	ServiceName  string

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	rps, err := getenvFloat("RATE_LIMIT_RPS", 2)
	if err != nil {
		return nil, err
	}
	burst, err := getenvInt("RATE_LIMIT_BURST", 5)
	if err != nil {
		return nil, err
	}
	cfg.Provider = ProviderConfig{
		APIKey:         os.Getenv("RAPIDAPI_KEY"),
		Host:           getenvDefault("RAPIDAPI_HOST", defaultHost),
		BaseURL:        getenvDefault("WEATHER_BASE_URL", defaultBaseURL),
		RateLimitRPS:   rps,
		RateLimitBurst: burst,
	}
	if cfg.Provider.APIKey == "" {
		log.Printf("INFO: RAPIDAPI_KEY is not set; provider requests will be rejected upstream")
	}

	if cfg.CacheTTL, err = getenvDuration("CACHE_TTL", "5m"); err != nil {
		return nil, err
	}
	if cfg.CacheSweepInterval, err = getenvDuration("CACHE_SWEEP_INTERVAL", "1m"); err != nil {
		return nil, err
	}
	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", "10s"); err != nil {
		return nil, err
	}

	cfg.OTLPEndpoint = os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	cfg.ServiceName = getenvDefault("OTEL_SERVICE_NAME", "weather-dashboard")
	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getenvFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", key)
	}
	return d, nil
}
