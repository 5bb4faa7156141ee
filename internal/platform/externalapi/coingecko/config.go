// Package coingecko はCoinGecko市場データAPIのクライアントを提供します。
package coingecko

import (
	"os"
	"time"
)

// DefaultBaseURL は公開v3エンドポイントです。
const DefaultBaseURL = "https://api.coingecko.com/api/v3"

// Config はCoinGecko APIクライアントの設定です。
type Config struct {
	APIKey  string        // demo key, sent as x-cg-demo-api-key; optional
	BaseURL string        // e.g. "https://api.coingecko.com/api/v3"
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig は環境変数からCoinGeckoの設定を読み込みます。
func LoadConfig() Config {
	base := os.Getenv("COINGECKO_BASE_URL")
	if base == "" {
		base = DefaultBaseURL
	}
	return Config{
		APIKey:  os.Getenv("CG_API_KEY"),
		BaseURL: base,
		Timeout: 10 * time.Second,
	}
}
