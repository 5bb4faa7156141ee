package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"BOT_TOKEN", "CG_API_KEY", "TAAPI_KEY", "PORT", "GIN_MODE", "WEBHOOK_SECRET",
		"SHUTDOWN_TIMEOUT", "HTTP_TIMEOUT", "MARKET_CACHE_TTL", "CATALOG_PATH", "CHANNEL_URL",
		"REDIS_HOST", "DB_DRIVER", "DATABASE_URL", "TAAPI_RATE_LIMIT",
	} {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOT_TOKEN", "123:abc")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "10000", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.GinMode)
	assert.Empty(t, cfg.Server.WebhookSecret)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "123:abc", cfg.Telegram.Token)
	assert.Equal(t, 10*time.Second, cfg.CoinGecko.Timeout)
	assert.Zero(t, cfg.MarketCacheTTL)
	assert.False(t, cfg.Redis.Enabled())
	assert.False(t, cfg.DB.Enabled())
	assert.Zero(t, cfg.TAAPI.RateLimit)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("PORT", "8080")
	t.Setenv("GIN_MODE", "debug")
	t.Setenv("WEBHOOK_SECRET", "hook")
	t.Setenv("HTTP_TIMEOUT", "3s")
	t.Setenv("MARKET_CACHE_TTL", "45")
	t.Setenv("CHANNEL_URL", "https://t.me/+x")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.GinMode)
	assert.Equal(t, "hook", cfg.Server.WebhookSecret)
	assert.Equal(t, 3*time.Second, cfg.CoinGecko.Timeout)
	assert.Equal(t, 3*time.Second, cfg.TAAPI.Timeout)
	assert.Equal(t, 3*time.Second, cfg.Telegram.Timeout)
	assert.Equal(t, 45*time.Second, cfg.MarketCacheTTL)
	assert.Equal(t, "https://t.me/+x", cfg.ChannelURL)
}

func TestFromEnv_MissingToken(t *testing.T) {
	clearEnv(t)

	_, err := FromEnv()
	assert.ErrorIs(t, err, ErrMissingBotToken)
}

func TestDuration_Invalid(t *testing.T) {
	t.Setenv("X_TIMEOUT", "soon")
	assert.Equal(t, time.Minute, duration("X_TIMEOUT", time.Minute))
}
