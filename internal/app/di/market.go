// Package di はアプリケーションコンポーネントを生成するDIファクトリを提供します。
package di

import (
	"cryptobot_backend/internal/app/config"
	marketusecase "cryptobot_backend/internal/feature/market/usecase"
	"cryptobot_backend/internal/platform/cache"
	"cryptobot_backend/internal/platform/externalapi/coingecko"
	infrahttp "cryptobot_backend/internal/platform/http"

	"github.com/redis/go-redis/v9"
)

// NewMarketRepository はCoinGeckoクライアントを生成します。
// rdb があり MarketCacheTTL が正ならRedisキャッシュでラップします。
func NewMarketRepository(cfg *config.Config, rdb *redis.Client) marketusecase.MarketRepository {
	httpClient := infrahttp.NewHTTPClient(cfg.CoinGecko.Timeout)
	var repo marketusecase.MarketRepository = coingecko.NewCoinGeckoMarket(cfg.CoinGecko, httpClient)
	if rdb != nil && cfg.MarketCacheTTL > 0 {
		repo = cache.NewCachingMarketRepository(rdb, cfg.MarketCacheTTL, repo, "market")
	}
	return repo
}

// NewMarketUsecase はmarketフィーチャーを組み立てます。
func NewMarketUsecase(cfg *config.Config, rdb *redis.Client) *marketusecase.MarketUsecase {
	return marketusecase.NewMarketUsecase(NewMarketRepository(cfg, rdb))
}
