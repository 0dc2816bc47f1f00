package config

import (
	"time"

	"github.com/onnwee/meteodaten/backend/internal/utils"
)

// DefaultDataFile is where the daily weather record set lives unless METEODATEN_FILE overrides it.
const DefaultDataFile = "/pages/data/meteodaten_2023_daily.json"

// Config holds application configuration derived from environment variables.
type Config struct {
	// Data source
	DataFile string
	// HTTP server
	HTTPAddr         string
	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
	ShutdownTimeout  time.Duration
	// StrictErrorStatus selects 404/500 on data errors; false keeps the legacy 200.
	StrictErrorStatus bool
	EnableDocs        bool
	// Security settings
	RateLimitGlobal      float64  // requests per second globally
	RateLimitGlobalBurst int      // burst size for global rate limit
	RateLimitPerIP       float64  // requests per second per IP
	RateLimitPerIPBurst  int      // burst size for per-IP rate limit
	CORSAllowedOrigins   []string // allowed CORS origins
	EnableRateLimit      bool     // enable rate limiting middleware
	TrustProxy           bool     // key rate limits on X-Forwarded-For / X-Real-IP
	// Metrics
	FileStatsInterval time.Duration // how often the data file is stat'ed for gauges
	// Observability settings
	Env               string  // deployment environment, "production" switches logs to JSON
	LogLevel          string  // log level: debug, info, warn, error
	OTELEnabled       bool    // enable OpenTelemetry tracing
	OTELEndpoint      string  // OpenTelemetry collector endpoint
	OTELSampleRate    float64 // trace sampling rate (0.0 to 1.0)
	ServiceVersion    string
	SentryDSN         string  // Sentry DSN for error reporting
	SentryEnvironment string  // Sentry environment (dev, staging, production)
	SentryRelease     string  // Sentry release version
	SentrySampleRate  float64 // Sentry error sampling rate (0.0 to 1.0)
}

var cached *Config

// Load reads env vars once and caches them.
func Load() *Config {
	if cached != nil {
		return cached
	}
	cached = &Config{
		DataFile:          utils.GetEnvAsString("METEODATEN_FILE", DefaultDataFile),
		HTTPAddr:          utils.GetEnvAsString("HTTP_ADDR", ":8000"),
		HTTPReadTimeout:   utils.GetEnvAsMillis("HTTP_READ_TIMEOUT_MS", 10*time.Second),
		HTTPWriteTimeout:  utils.GetEnvAsMillis("HTTP_WRITE_TIMEOUT_MS", 30*time.Second),
		HTTPIdleTimeout:   utils.GetEnvAsMillis("HTTP_IDLE_TIMEOUT_MS", 60*time.Second),
		ShutdownTimeout:   utils.GetEnvAsMillis("SHUTDOWN_TIMEOUT_MS", 10*time.Second),
		StrictErrorStatus: utils.GetEnvAsBool("STRICT_ERROR_STATUS", true),
		EnableDocs:        utils.GetEnvAsBool("ENABLE_DOCS", true),
		// Security settings with sensible defaults
		RateLimitGlobal:      utils.GetEnvAsFloat("RATE_LIMIT_GLOBAL", 100.0),
		RateLimitGlobalBurst: utils.GetEnvAsInt("RATE_LIMIT_GLOBAL_BURST", 200),
		RateLimitPerIP:       utils.GetEnvAsFloat("RATE_LIMIT_PER_IP", 10.0),
		RateLimitPerIPBurst:  utils.GetEnvAsInt("RATE_LIMIT_PER_IP_BURST", 20),
		EnableRateLimit:      utils.GetEnvAsBool("ENABLE_RATE_LIMIT", true),
		TrustProxy:           utils.GetEnvAsBool("TRUST_PROXY", false),
		CORSAllowedOrigins: utils.GetEnvAsSlice("CORS_ALLOWED_ORIGINS",
			[]string{"http://localhost:5173", "http://localhost:3000"}, ","),
		FileStatsInterval: utils.GetEnvAsMillis("FILE_STATS_INTERVAL_MS", 30*time.Second),
		// Observability settings
		Env:               utils.GetEnvAsString("ENV", "development"),
		LogLevel:          utils.GetEnvAsString("LOG_LEVEL", "info"),
		OTELEnabled:       utils.GetEnvAsBool("OTEL_ENABLED", false),
		OTELEndpoint:      utils.GetEnvAsString("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
		OTELSampleRate:    utils.GetEnvAsFloat("OTEL_TRACE_SAMPLE_RATE", 0.1),
		ServiceVersion:    utils.GetEnvAsString("SERVICE_VERSION", "dev"),
		SentryDSN:         utils.GetEnvAsString("SENTRY_DSN", ""),
		SentryEnvironment: utils.GetEnvAsString("SENTRY_ENVIRONMENT", ""),
		SentryRelease:     utils.GetEnvAsString("SENTRY_RELEASE", ""),
		SentrySampleRate:  utils.GetEnvAsFloat("SENTRY_SAMPLE_RATE", 1.0),
	}
	if cached.SentryEnvironment == "" {
		cached.SentryEnvironment = cached.Env
	}
	if cached.SentryRelease == "" {
		cached.SentryRelease = cached.ServiceVersion
	}
	if cached.FileStatsInterval <= 0 {
		cached.FileStatsInterval = 30 * time.Second
	}

	return cached
}

// ResetForTest clears cached config; for use in tests only.
func ResetForTest() { cached = nil }

// IsProduction reports whether the service runs with ENV=production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
