package telegram

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"cryptobot_backend/internal/feature/bot/domain/entity"
	"cryptobot_backend/internal/feature/bot/usecase"

	"github.com/go-resty/resty/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
)

// sendMessage のリクエストボディ。reply_markup はキーボードがある場合のみ付与します。
type sendMessageRequest struct {
	ChatID      int64                          `json:"chat_id"`
	Text        string                         `json:"text"`
	ParseMode   string                         `json:"parse_mode"`
	ReplyMarkup *tgbotapi.InlineKeyboardMarkup `json:"reply_markup,omitempty"`
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code"`
	Description string `json:"description"`
}

// TelegramMessenger はBot APIの sendMessage でReplyを送信するMessenger実装です。
type TelegramMessenger struct {
	client *resty.Client
}

var _ usecase.Messenger = (*TelegramMessenger)(nil)

func NewTelegramMessenger(cfg Config, hc *http.Client) *TelegramMessenger {
	c := resty.NewWithClient(hc).
		SetBaseURL(fmt.Sprintf("%s/bot%s", strings.TrimRight(cfg.BaseURL, "/"), cfg.Token)).
		SetHeader("Accept", "application/json")
	return &TelegramMessenger{client: c}
}

// Send は chatID へHTMLパースモードで reply を送信します。リトライはしません。
func (m *TelegramMessenger) Send(ctx context.Context, chatID int64, reply entity.Reply) error {
	body := sendMessageRequest{
		ChatID:      chatID,
		Text:        reply.Text,
		ParseMode:   tgbotapi.ModeHTML,
		ReplyMarkup: inlineKeyboard(reply.Keyboard),
	}

	var out apiResponse
	res, err := m.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&out).
		SetError(&out).
		Post("/sendMessage")
	if err != nil {
		// url.Error はbotトークンを含む
		var ue *url.Error
		if errors.As(err, &ue) {
			err = ue.Err
		}
		return fmt.Errorf("telegram sendMessage: %w", err)
	}
	if res.IsError() || !out.OK {
		return fmt.Errorf("telegram sendMessage http %d: %s", res.StatusCode(), out.Description)
	}
	return nil
}

func inlineKeyboard(grid [][]entity.Button) *tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(grid))
	for _, row := range grid {
		if len(row) == 0 {
			continue
		}
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			if b.URL != "" {
				buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonURL(b.Text, b.URL))
			} else {
				buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(b.Text, b.CallbackData))
			}
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(buttons...))
	}
	if len(rows) == 0 {
		return nil
	}
	markup := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &markup
}
