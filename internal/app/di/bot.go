package di

import (
	"context"

	"cryptobot_backend/internal/app/config"
	botadapters "cryptobot_backend/internal/feature/bot/adapters"
	"cryptobot_backend/internal/feature/bot/catalog"
	botusecase "cryptobot_backend/internal/feature/bot/usecase"
	"cryptobot_backend/internal/platform/externalapi/telegram"
	infrahttp "cryptobot_backend/internal/platform/http"
	"cryptobot_backend/internal/platform/http/handler"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// NewBotUsecase はコマンドルーターを組み立てます。db が nil でなければ監査ログを有効にします。
func NewBotUsecase(cfg *config.Config, market botusecase.MarketService, signals botusecase.SignalService, db *gorm.DB) (*botusecase.BotUsecase, error) {
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}
	cat = cat.WithChannelURL(cfg.ChannelURL)

	messenger := telegram.NewTelegramMessenger(cfg.Telegram, infrahttp.NewHTTPClient(cfg.Telegram.Timeout))

	var opts []botusecase.Option
	if db != nil {
		opts = append(opts, botusecase.WithRecorder(botadapters.NewCommandLogRepository(db)))
	}
	return botusecase.NewBotUsecase(market, signals, messenger, cat, opts...), nil
}

// HealthChecks は使用中の任意バックエンドごとの確認処理を返します。
func HealthChecks(rdb *redis.Client, db *gorm.DB) []handler.Check {
	var checks []handler.Check
	if rdb != nil {
		checks = append(checks, handler.Check{
			Name: "redis",
			Ping: func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		})
	}
	if db != nil {
		checks = append(checks, handler.Check{
			Name: "db",
			Ping: func(ctx context.Context) error {
				sqlDB, err := db.DB()
				if err != nil {
					return err
				}
				return sqlDB.PingContext(ctx)
			},
		})
	}
	return checks
}
