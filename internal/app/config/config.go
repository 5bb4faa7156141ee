// Package config は環境変数から各コンポーネントの設定を集約します。
package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"cryptobot_backend/internal/platform/db"
	"cryptobot_backend/internal/platform/externalapi/coingecko"
	"cryptobot_backend/internal/platform/externalapi/taapi"
	"cryptobot_backend/internal/platform/externalapi/telegram"
	"cryptobot_backend/internal/platform/logger"
	"cryptobot_backend/internal/platform/redis"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const defaultPort = "10000"

// ErrMissingBotToken は BOT_TOKEN が空の場合に返されます。
var ErrMissingBotToken = errors.New("BOT_TOKEN is required")

// ServerConfig はHTTPサーバーの設定です。
type ServerConfig struct {
	Port            string
	GinMode         string
	WebhookSecret   string // compared against X-Telegram-Bot-Api-Secret-Token; empty disables
	ShutdownTimeout time.Duration
}

// Config はアプリケーション全体の設定です。
type Config struct {
	Server    ServerConfig
	Log       logger.Config
	CoinGecko coingecko.Config
	TAAPI     taapi.Config
	Telegram  telegram.Config
	Redis     redis.Config
	DB        db.Config

	// Redis有効かつ MarketCacheTTL > 0 なら市場データをキャッシュ
	MarketCacheTTL time.Duration
	// 設定時は組み込みカタログの代わりに使うYAML
	CatalogPath string
	// 設定時は /join のリンクを上書き
	ChannelURL string
}

// Load は .env があれば読み込み、その後環境変数から設定を構築します。
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg(".env not found; using process environment")
	}
	return FromEnv()
}

// FromEnv は環境変数のみから設定を構築します。
func FromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getenv("PORT", defaultPort),
			GinMode:         getenv("GIN_MODE", gin.ReleaseMode),
			WebhookSecret:   os.Getenv("WEBHOOK_SECRET"),
			ShutdownTimeout: duration("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Log:            logger.LoadConfig(),
		CoinGecko:      coingecko.LoadConfig(),
		TAAPI:          taapi.LoadConfig(),
		Telegram:       telegram.LoadConfig(),
		Redis:          redis.LoadConfig(),
		DB:             db.LoadConfigFromEnv(),
		MarketCacheTTL: duration("MARKET_CACHE_TTL", 0),
		CatalogPath:    os.Getenv("CATALOG_PATH"),
		ChannelURL:     os.Getenv("CHANNEL_URL"),
	}

	if timeout := duration("HTTP_TIMEOUT", 0); timeout > 0 {
		cfg.CoinGecko.Timeout = timeout
		cfg.TAAPI.Timeout = timeout
		cfg.Telegram.Timeout = timeout
	}

	if cfg.Telegram.Token == "" {
		return nil, ErrMissingBotToken
	}
	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// duration はGoの期間表記 ("30s") または秒数 ("30") を受け付けます。
func duration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	log.Warn().Str("key", key).Str("value", v).Msg("invalid duration; using default")
	return def
}
