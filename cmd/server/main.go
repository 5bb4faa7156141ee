package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	redisv9 "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"cryptobot_backend/internal/app/config"
	"cryptobot_backend/internal/app/di"
	"cryptobot_backend/internal/app/router"
	bothandler "cryptobot_backend/internal/feature/bot/transport/handler"
	infradb "cryptobot_backend/internal/platform/db"
	"cryptobot_backend/internal/platform/http/handler"
	"cryptobot_backend/internal/platform/logger"
	infraredis "cryptobot_backend/internal/platform/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if _, err := logger.Setup(cfg.Log); err != nil {
		log.Warn().Err(err).Str("level", cfg.Log.Level).Msg("invalid LOG_LEVEL; keeping defaults")
	}
	gin.SetMode(cfg.Server.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Redis (任意)
	var rdb *redisv9.Client
	if cfg.Redis.Enabled() {
		if tmp, err := infraredis.NewRedisClient(ctx, cfg.Redis); err != nil {
			log.Warn().Msg("redis unavailable; running without cache")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Error().Err(err).Msg("failed to close redis client")
				}
			}()
		}
	}

	// DB (任意): コマンド監査ログ
	var db *gorm.DB
	if cfg.DB.Enabled() {
		if tmp, err := infradb.OpenDB(cfg.DB); err != nil {
			log.Warn().Err(err).Msg("database unavailable; running without command log")
		} else {
			db = tmp
		}
	}

	// Usecase
	marketUC := di.NewMarketUsecase(cfg, rdb)
	signalUC := di.NewSignalUsecase(cfg)
	botUC, err := di.NewBotUsecase(cfg, marketUC, signalUC, db)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build bot")
	}

	// Handler / ルータ生成
	webhookH := bothandler.NewWebhookHandler(botUC)
	healthH := handler.NewHealthHandler(di.HealthChecks(rdb, db)...)
	r := router.NewRouter(cfg.Server, webhookH, healthH)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}

	if db != nil {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}
