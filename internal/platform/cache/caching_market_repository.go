// Package cache はリポジトリインターフェースのキャッシュ実装を提供します。
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"cryptobot_backend/internal/feature/market/domain/entity"
	"cryptobot_backend/internal/feature/market/usecase"
)

const (
	defaultTTL       = 30 * time.Second
	defaultNamespace = "market"
)

// CachingMarketRepository は MarketRepository をRedisキャッシュでラップするデコレーターです。
// キャッシュ障害時は内側のリポジトリへフォールバックし、クライアントが nil ならキャッシュしません。
type CachingMarketRepository struct {
	inner     usecase.MarketRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.MarketRepository = (*CachingMarketRepository)(nil)

// NewCachingMarketRepository は inner をラップします。ttl <= 0 は30秒、namespace が空なら "market" を使います。
func NewCachingMarketRepository(rdb *redis.Client, ttl time.Duration, inner usecase.MarketRepository, namespace string) *CachingMarketRepository {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if namespace == "" {
		namespace = defaultNamespace
	}
	return &CachingMarketRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// GetPrice はキャッシュ済みの価格を返し、無ければ取得して保存します。
func (c *CachingMarketRepository) GetPrice(ctx context.Context, id string) (float64, error) {
	if c.rdb == nil {
		return c.inner.GetPrice(ctx, id)
	}

	key := c.priceKey(id)
	if s, err := c.rdb.Get(ctx, key).Result(); err == nil {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			return v, nil
		}
		// 壊れたエントリは削除
		_ = c.rdb.Del(ctx, key).Err()
	}

	v, err := c.inner.GetPrice(ctx, id)
	if err != nil {
		return 0, err
	}

	if err := c.rdb.Set(ctx, key, strconv.FormatFloat(v, 'f', -1, 64), c.ttl).Err(); err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Str("key", key).Msg("cache set failed")
	}
	return v, nil
}

// ListMarkets はキャッシュ済みのランキングを返し、無ければ取得して保存します。
// 空の結果はキャッシュしません。
func (c *CachingMarketRepository) ListMarkets(ctx context.Context, perPage int) ([]entity.CoinMarket, error) {
	if c.rdb == nil {
		return c.inner.ListMarkets(ctx, perPage)
	}

	key := c.marketsKey(perPage)
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.CoinMarket
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.ListMarkets(ctx, perPage)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	if b, err := json.Marshal(out); err == nil {
		if err := c.rdb.Set(ctx, key, b, c.ttl).Err(); err != nil {
			zerolog.Ctx(ctx).Debug().Err(err).Str("key", key).Msg("cache set failed")
		}
	}
	return out, nil
}

func (c *CachingMarketRepository) priceKey(id string) string {
	return fmt.Sprintf("%s:price:%s", c.namespace, safe(id))
}

func (c *CachingMarketRepository) marketsKey(perPage int) string {
	return fmt.Sprintf("%s:markets:%d", c.namespace, perPage)
}

// safe はRedisキーで問題になる文字をエスケープします。
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
