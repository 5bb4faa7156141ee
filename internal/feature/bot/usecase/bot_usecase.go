package usecase

import (
	"context"
	"errors"
	"fmt"

	"cryptobot_backend/internal/feature/bot/catalog"
	"cryptobot_backend/internal/feature/bot/domain/entity"
	marketdomain "cryptobot_backend/internal/feature/market/domain"
	marketentity "cryptobot_backend/internal/feature/market/domain/entity"
	signalentity "cryptobot_backend/internal/feature/signal/domain/entity"

	"github.com/rs/zerolog"
)

// MarketService は価格・騰落ランキングの取得を担います。
type MarketService interface {
	Price(ctx context.Context, id string) (float64, error)
	TopMovers(ctx context.Context) (marketentity.Movers, error)
}

// SignalService は /signal の抽出銘柄を評価します。
type SignalService interface {
	EvaluateSample(ctx context.Context) ([]signalentity.Report, error)
}

// Messenger は1つのチャットへ1件の返信を送信します。
type Messenger interface {
	Send(ctx context.Context, chatID int64, reply entity.Reply) error
}

// CommandRecorder は処理したコマンドを保存します。失敗しても返信には影響しません。
type CommandRecorder interface {
	Record(ctx context.Context, chatID int64, command string, known bool) error
}

type commandHandler func(ctx context.Context) (entity.Reply, error)

// /btc と /eth で価格を返す銘柄
type asset struct {
	id     string
	name   string
	ticker string
}

var (
	bitcoin  = asset{id: "bitcoin", name: "Bitcoin", ticker: "BTC"}
	ethereum = asset{id: "ethereum", name: "Ethereum", ticker: "ETH"}
)

// BotUsecase はコマンドをハンドラーへ振り分け、返信をちょうど1件送信します。
type BotUsecase struct {
	market    MarketService
	signals   SignalService
	messenger Messenger
	catalog   *catalog.Catalog
	recorder  CommandRecorder
	routes    map[string]commandHandler
}

// Option は任意の依存を設定します。
type Option func(*BotUsecase)

// WithRecorder はコマンド監査ログを有効にします。
func WithRecorder(r CommandRecorder) Option {
	return func(u *BotUsecase) { u.recorder = r }
}

func NewBotUsecase(market MarketService, signals SignalService, messenger Messenger, cat *catalog.Catalog, opts ...Option) *BotUsecase {
	u := &BotUsecase{
		market:    market,
		signals:   signals,
		messenger: messenger,
		catalog:   cat,
	}
	for _, opt := range opts {
		opt(u)
	}
	u.routes = map[string]commandHandler{
		entity.CommandStart:     u.static(cat.Start),
		entity.CommandTop:       u.top,
		entity.CommandBTC:       u.price(bitcoin),
		entity.CommandETH:       u.price(ethereum),
		entity.CommandSignal:    u.signal,
		entity.CommandJoin:      u.static(cat.Join),
		entity.CommandSubscribe: u.static(cat.Subscribe),
	}
	return u
}

// Handle は受信したコマンド1件に応答します。
// プロバイダのエラー時は何も送信せず、エラーを呼び出し元へ返します。
func (u *BotUsecase) Handle(ctx context.Context, in entity.Inbound) error {
	if !in.Complete() {
		return ErrIncompleteInbound
	}

	h, known := u.routes[in.Command]
	if !known {
		h = u.static(u.catalog.Unknown)
	}
	u.record(ctx, in, known)

	reply, err := h(ctx)
	if err != nil {
		return fmt.Errorf("command %s: %w", in.Command, err)
	}

	if err := u.messenger.Send(ctx, in.ChatID, reply); err != nil {
		return fmt.Errorf("send reply for %s: %w", in.Command, err)
	}
	return nil
}

func (u *BotUsecase) record(ctx context.Context, in entity.Inbound, known bool) {
	if u.recorder == nil {
		return
	}
	if err := u.recorder.Record(ctx, in.ChatID, in.Command, known); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Int64("chat_id", in.ChatID).Msg("failed to record command")
	}
}

func (u *BotUsecase) static(r entity.Reply) commandHandler {
	return func(context.Context) (entity.Reply, error) {
		return r, nil
	}
}

func (u *BotUsecase) price(a asset) commandHandler {
	return func(ctx context.Context) (entity.Reply, error) {
		p, err := u.market.Price(ctx, a.id)
		if err != nil {
			return entity.Reply{}, err
		}
		return entity.TextReply(FormatPrice(a.name, a.ticker, p)), nil
	}
}

func (u *BotUsecase) top(ctx context.Context) (entity.Reply, error) {
	movers, err := u.market.TopMovers(ctx)
	if errors.Is(err, marketdomain.ErrNoMarketData) {
		return entity.TextReply(NoticeFetchError), nil
	}
	if err != nil {
		return entity.Reply{}, err
	}
	return entity.TextReply(FormatTopMovers(movers)), nil
}

func (u *BotUsecase) signal(ctx context.Context) (entity.Reply, error) {
	reports, err := u.signals.EvaluateSample(ctx)
	if err != nil {
		return entity.Reply{}, err
	}
	return entity.TextReply(FormatSignals(reports)), nil
}
