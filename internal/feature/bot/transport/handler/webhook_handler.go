// Package handler はbotフィーチャーのWebhook受信ハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"cryptobot_backend/internal/feature/bot/domain/entity"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"github.com/rs/zerolog"
)

// AckBody は受信した更新すべてに返すレスポンスボディです。
const AckBody = "ok"

// BotUsecase はコマンド処理のユースケースインターフェースです。
type BotUsecase interface {
	Handle(ctx context.Context, in entity.Inbound) error
}

// WebhookHandler はTelegramの更新通知を受け取ります。
type WebhookHandler struct {
	uc BotUsecase
}

func NewWebhookHandler(uc BotUsecase) *WebhookHandler {
	return &WebhookHandler{uc: uc}
}

// Receive は常に 200 "ok" を返し、Telegramによる再送を防ぎます。
// デコードできない・不完全な更新は破棄し、ユースケースのエラーはログ出力のみです。
func (h *WebhookHandler) Receive(c *gin.Context) {
	ctx := c.Request.Context()
	logger := zerolog.Ctx(ctx)

	var update tgbotapi.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		logger.Debug().Err(err).Msg("ignoring undecodable update")
		c.String(http.StatusOK, AckBody)
		return
	}

	in, ok := ExtractInbound(update)
	if !ok {
		logger.Debug().Int("update_id", update.UpdateID).Msg("ignoring update without chat or command")
		c.String(http.StatusOK, AckBody)
		return
	}

	if err := h.uc.Handle(ctx, in); err != nil {
		logger.Error().Err(err).
			Int64("chat_id", in.ChatID).
			Str("command", in.Command).
			Msg("failed to handle command")
	}
	c.String(http.StatusOK, AckBody)
}

// ExtractInbound はメッセージ本文からコマンドを取り出し、無ければコールバックデータを使います。
// チャットIDはコマンドと同じ側から取得します。
func ExtractInbound(u tgbotapi.Update) (entity.Inbound, bool) {
	var in entity.Inbound
	switch {
	case u.Message != nil && u.Message.Text != "":
		in.Command = u.Message.Text
		if u.Message.Chat != nil {
			in.ChatID = u.Message.Chat.ID
		}
	case u.CallbackQuery != nil && u.CallbackQuery.Data != "":
		in.Command = u.CallbackQuery.Data
		if m := u.CallbackQuery.Message; m != nil && m.Chat != nil {
			in.ChatID = m.Chat.ID
		}
	}
	return in, in.Complete()
}
