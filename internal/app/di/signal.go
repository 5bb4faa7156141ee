package di

import (
	"time"

	"cryptobot_backend/internal/app/config"
	signalusecase "cryptobot_backend/internal/feature/signal/usecase"
	"cryptobot_backend/internal/platform/externalapi/taapi"
	infrahttp "cryptobot_backend/internal/platform/http"
	"cryptobot_backend/internal/shared/ratelimiter"
)

// NewSignalUsecase はTAAPIクライアントを組み立てます。TAAPI.RateLimit > 0 ならレート制限を掛けます。
func NewSignalUsecase(cfg *config.Config) *signalusecase.SignalUsecase {
	var limiter ratelimiter.Limiter
	if cfg.TAAPI.RateLimit > 0 {
		limiter = ratelimiter.NewRateLimiter(cfg.TAAPI.RateLimit, time.Minute)
	}
	httpClient := infrahttp.NewHTTPClient(cfg.TAAPI.Timeout)
	return signalusecase.NewSignalUsecase(taapi.NewTAAPIIndicators(cfg.TAAPI, httpClient, limiter))
}
