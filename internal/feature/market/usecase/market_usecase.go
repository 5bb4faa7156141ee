package usecase

import (
	"cmp"
	"context"
	"slices"

	"cryptobot_backend/internal/feature/market/domain"
	"cryptobot_backend/internal/feature/market/domain/entity"
)

const (
	// RankedListSize は時価総額ランキングから取得する件数です。
	RankedListSize = 50
	// MoversSize は上昇・下落リストそれぞれの件数です。
	MoversSize = 5
)

// MarketRepository は市場データ取得の抽象です。
type MarketRepository interface {
	// GetPrice は id のUSD価格を返します。未知のidは0です。
	GetPrice(ctx context.Context, id string) (float64, error)
	// ListMarkets は時価総額順に先頭 perPage 件を返します。
	ListMarkets(ctx context.Context, perPage int) ([]entity.CoinMarket, error)
}

// MarketUsecase は価格と騰落ランキングの問い合わせに応答します。
type MarketUsecase struct {
	repo MarketRepository
}

func NewMarketUsecase(repo MarketRepository) *MarketUsecase {
	return &MarketUsecase{repo: repo}
}

// Price は指定したプロバイダidのUSD価格を返します。
func (uc *MarketUsecase) Price(ctx context.Context, id string) (float64, error) {
	return uc.repo.GetPrice(ctx, id)
}

// TopMovers は上位 RankedListSize 件を24時間騰落率で順位付けします。
// 一覧が空なら domain.ErrNoMarketData を返します。
func (uc *MarketUsecase) TopMovers(ctx context.Context) (entity.Movers, error) {
	coins, err := uc.repo.ListMarkets(ctx, RankedListSize)
	if err != nil {
		return entity.Movers{}, err
	}
	if len(coins) == 0 {
		return entity.Movers{}, domain.ErrNoMarketData
	}
	return RankMovers(coins, MoversSize), nil
}

// RankMovers は24時間騰落率の上位 n 件と下位 n 件を返します。
// 同率はプロバイダの順序を保ち、入力スライスは変更しません。
func RankMovers(coins []entity.CoinMarket, n int) entity.Movers {
	gainers := slices.Clone(coins)
	slices.SortStableFunc(gainers, func(a, b entity.CoinMarket) int {
		return cmp.Compare(b.ChangeOrZero(), a.ChangeOrZero())
	})

	losers := slices.Clone(coins)
	slices.SortStableFunc(losers, func(a, b entity.CoinMarket) int {
		return cmp.Compare(a.ChangeOrZero(), b.ChangeOrZero())
	})

	k := min(n, len(coins))
	return entity.Movers{Gainers: gainers[:k], Losers: losers[:k]}
}
