package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// HeaderSecretToken は secret_token 付きでWebhookを登録した場合にTelegramが付与するヘッダーです。
const HeaderSecretToken = "X-Telegram-Bot-Api-Secret-Token"

// WebhookSecret はシークレットトークンが一致しないリクエストを401で拒否します。
// secret が空なら検証しません。
func WebhookSecret(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}

		got := c.GetHeader(HeaderSecretToken)
		if subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
			zerolog.Ctx(c.Request.Context()).Warn().
				Str("remote_ip", c.ClientIP()).
				Msg("webhook secret mismatch")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid secret token"})
			return
		}
		c.Next()
	}
}
