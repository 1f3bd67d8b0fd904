package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresAPIKey(t *testing.T) {
	t.Setenv("GOOGLE_MAPS_API_KEY", "")
	_, err := Load()
	assert.True(t, errors.Is(err, ErrMissingAPIKey))
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GOOGLE_MAPS_API_KEY", "secret")
	for _, k := range []string{
		"ALEORESTO_HTTP_ADDR", "ALEORESTO_MAPS_EMBED_KEY", "ALEORESTO_UPSTREAM_TIMEOUT",
		"ALEORESTO_CACHE_BACKEND", "ALEORESTO_CORS_ORIGINS", "ALEORESTO_METRICS_ENABLED", "OTEL_ENABLED",
	} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "secret", cfg.Maps.EmbedKey, "embed key falls back to the API key")
	assert.Equal(t, 5*time.Second, cfg.Maps.UpstreamTimeout)
	assert.Equal(t, 400, cfg.Maps.PhotoMaxWidth)
	assert.Equal(t, "memory", cfg.Cache.Backend)
	assert.Equal(t, []string{"*"}, cfg.HTTP.CORSOrigins)
	assert.True(t, cfg.Telemetry.MetricsEnabled)
	assert.False(t, cfg.Telemetry.OTelEnabled)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GOOGLE_MAPS_API_KEY", "secret")
	t.Setenv("ALEORESTO_MAPS_EMBED_KEY", "public")
	t.Setenv("ALEORESTO_UPSTREAM_TIMEOUT", "1500ms")
	t.Setenv("ALEORESTO_CACHE_BACKEND", "Redis")
	t.Setenv("ALEORESTO_CORS_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("ALEORESTO_RATE_LIMIT_RPS", "2.5")
	t.Setenv("ALEORESTO_RATE_LIMIT_BURST", "notanumber")
	t.Setenv("OTEL_ENABLED", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "public", cfg.Maps.EmbedKey)
	assert.Equal(t, 1500*time.Millisecond, cfg.Maps.UpstreamTimeout)
	assert.Equal(t, "redis", cfg.Cache.Backend)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.CORSOrigins)
	assert.Equal(t, 2.5, cfg.HTTP.RateLimitRPS)
	assert.Equal(t, 20, cfg.HTTP.RateLimitBurst, "unparsable values keep the default")
	assert.True(t, cfg.Telemetry.OTelEnabled)
}
