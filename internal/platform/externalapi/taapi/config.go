// Package taapi はTAAPI.IOテクニカル指標APIのクライアントを提供します。
package taapi

import (
	"os"
	"strconv"
	"time"
)

const (
	DefaultBaseURL  = "https://api.taapi.io"
	DefaultExchange = "binance"
	// QuoteAsset はティッカーに付与する決済通貨です (BTC -> BTC/USDT)。
	QuoteAsset = "USDT"
)

// Config はTAAPIクライアントの設定です。
type Config struct {
	Secret    string        // API secret, sent as the "secret" query parameter
	BaseURL   string        // e.g. "https://api.taapi.io"
	Exchange  string        // exchange the candles are read from
	RateLimit int           // calls per minute; 0 disables limiting
	Timeout   time.Duration // HTTP request timeout
}

// LoadConfig は環境変数からTAAPIの設定を読み込みます。
func LoadConfig() Config {
	cfg := Config{
		Secret:   os.Getenv("TAAPI_KEY"),
		BaseURL:  os.Getenv("TAAPI_BASE_URL"),
		Exchange: os.Getenv("TAAPI_EXCHANGE"),
		Timeout:  10 * time.Second,
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Exchange == "" {
		cfg.Exchange = DefaultExchange
	}
	if n, err := strconv.Atoi(os.Getenv("TAAPI_RATE_LIMIT")); err == nil && n > 0 {
		cfg.RateLimit = n
	}
	return cfg
}
