// README: Config loader with env defaults for HTTP, Maps, storage, logging and telemetry settings.
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrMissingAPIKey = errors.New("environment variable GOOGLE_MAPS_API_KEY is required")

type MapsConfig struct {
	APIKey string
	// EmbedKey goes into the public embed link; defaults to APIKey.
	EmbedKey        string
	BaseURL         string
	Language        string
	PhotoMaxWidth   int
	UpstreamTimeout time.Duration
}

type HTTPConfig struct {
	Addr           string
	CORSOrigins    []string
	RateLimitRPS   float64
	RateLimitBurst int
}

type CacheConfig struct {
	Backend string
	TTL     time.Duration
}

type LogConfig struct {
	Level  string
	Format string
	File   string
}

type TelemetryConfig struct {
	MetricsEnabled bool
	OTelEnabled    bool
	OTLPEndpoint   string
}

type Config struct {
	HTTP  HTTPConfig
	Maps  MapsConfig
	Cache CacheConfig
	DB    struct {
		DSN string
	}
	Redis struct {
		Addr string
	}
	Log       LogConfig
	Telemetry TelemetryConfig
}

// Load reads configuration from the environment, after preloading an optional
// .env file. Variables already set in the environment win over the file.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	cfg.HTTP.Addr = envOrDefault("ALEORESTO_HTTP_ADDR", ":8080")
	cfg.HTTP.CORSOrigins = envOrDefaultList("ALEORESTO_CORS_ORIGINS", []string{"*"})
	cfg.HTTP.RateLimitRPS = envOrDefaultFloat("ALEORESTO_RATE_LIMIT_RPS", 10)
	cfg.HTTP.RateLimitBurst = envOrDefaultInt("ALEORESTO_RATE_LIMIT_BURST", 20)

	cfg.Maps.APIKey = strings.TrimSpace(os.Getenv("GOOGLE_MAPS_API_KEY"))
	if cfg.Maps.APIKey == "" {
		return Config{}, ErrMissingAPIKey
	}
	cfg.Maps.EmbedKey = envOrDefault("ALEORESTO_MAPS_EMBED_KEY", cfg.Maps.APIKey)
	cfg.Maps.BaseURL = envOrDefault("ALEORESTO_MAPS_BASE_URL", "")
	cfg.Maps.Language = envOrDefault("ALEORESTO_MAPS_LANGUAGE", "")
	cfg.Maps.PhotoMaxWidth = envOrDefaultInt("ALEORESTO_PHOTO_MAX_WIDTH", 400)
	cfg.Maps.UpstreamTimeout = envOrDefaultDuration("ALEORESTO_UPSTREAM_TIMEOUT", 5*time.Second)

	cfg.DB.DSN = envOrDefault("ALEORESTO_DB_DSN", "")
	cfg.Redis.Addr = envOrDefault("ALEORESTO_REDIS_ADDR", "localhost:6379")
	cfg.Cache.Backend = strings.ToLower(envOrDefault("ALEORESTO_CACHE_BACKEND", "memory"))
	cfg.Cache.TTL = envOrDefaultDuration("ALEORESTO_CACHE_TTL", 10*time.Minute)

	cfg.Log.Level = envOrDefault("ALEORESTO_LOG_LEVEL", "info")
	cfg.Log.Format = envOrDefault("ALEORESTO_LOG_FORMAT", "json")
	cfg.Log.File = envOrDefault("ALEORESTO_LOG_FILE", "")

	cfg.Telemetry.MetricsEnabled = envOrDefaultBool("ALEORESTO_METRICS_ENABLED", true)
	cfg.Telemetry.OTelEnabled = envOrDefaultBool("OTEL_ENABLED", false)
	cfg.Telemetry.OTLPEndpoint = envOrDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "http://localhost:4318")
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func envOrDefaultDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}

func envOrDefaultList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
