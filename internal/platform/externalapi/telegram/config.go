// Package telegram はTelegram Bot API経由で返信を送信します。
package telegram

import (
	"os"
	"time"
)

// DefaultBaseURL は公開Bot APIのホストです。
const DefaultBaseURL = "https://api.telegram.org"

// Config はBot APIクライアントの設定です。
type Config struct {
	Token   string        // bot token; required
	BaseURL string        // e.g. "https://api.telegram.org"
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig は環境変数からBot APIの設定を読み込みます。
func LoadConfig() Config {
	base := os.Getenv("TELEGRAM_BASE_URL")
	if base == "" {
		base = DefaultBaseURL
	}
	return Config{
		Token:   os.Getenv("BOT_TOKEN"),
		BaseURL: base,
		Timeout: 10 * time.Second,
	}
}
