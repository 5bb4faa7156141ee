package router

import (
	"cryptobot_backend/internal/app/config"
	bothandler "cryptobot_backend/internal/feature/bot/transport/handler"
	"cryptobot_backend/internal/platform/http/handler"
	"cryptobot_backend/internal/platform/http/middleware"

	"github.com/gin-gonic/gin"
)

// Webhookのパス。"/" は既存環境でTelegramに登録済みのもの
const (
	PathRoot    = "/"
	PathWebhook = "/webhook"
	PathHealth  = "/healthz"
)

func NewRouter(cfg config.ServerConfig, webhook *bothandler.WebhookHandler, health *handler.HealthHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())

	// 導通確認用
	r.GET(PathHealth, health.Health)
	r.HEAD(PathHealth, health.Health)
	r.OPTIONS(PathHealth, health.Health)

	// Telegram からの更新通知。WEBHOOK_SECRET 設定時のみヘッダーを検証
	hook := r.Group("/")
	hook.Use(middleware.WebhookSecret(cfg.WebhookSecret))
	{
		hook.POST(PathRoot, webhook.Receive)
		hook.POST(PathWebhook, webhook.Receive)
	}

	return r
}
