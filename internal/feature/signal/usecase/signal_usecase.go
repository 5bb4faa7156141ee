package usecase

import (
	"context"
	"fmt"

	"cryptobot_backend/internal/feature/signal/domain/entity"

	"github.com/samber/lo"
)

// SampleSize は1回の /signal で評価する銘柄数です。
const SampleSize = 3

// Intervals は各銘柄でこの順に評価します。
var Intervals = []string{"1h", "4h", "1d"}

// Universe は /signal の抽出対象となる固定ティッカー一覧です。
var Universe = []string{"BTC", "ETH", "BNB", "XRP", "DOGE", "ADA", "SOL", "TRX", "DOT", "MATIC"}

// IndicatorRepository は指標プロバイダの抽象です。欠損値は 0 として返します。
type IndicatorRepository interface {
	RSI(ctx context.Context, symbol, interval string) (float64, error)
	MACDHistogram(ctx context.Context, symbol, interval string) (float64, error)
}

// SignalUsecase はRSI + MACDのシグナルを評価します。
type SignalUsecase struct {
	repo   IndicatorRepository
	sample func(symbols []string, n int) []string
}

func NewSignalUsecase(repo IndicatorRepository) *SignalUsecase {
	return &SignalUsecase{
		repo: repo,
		sample: func(symbols []string, n int) []string {
			return lo.Samples(symbols, n)
		},
	}
}

// Evaluate は symbol について時間足ごとに1件の Reading を返します。
// プロバイダのエラーが1件でもあれば評価全体を中断します。
func (uc *SignalUsecase) Evaluate(ctx context.Context, symbol string) ([]entity.Reading, error) {
	readings := make([]entity.Reading, 0, len(Intervals))
	for _, interval := range Intervals {
		rsi, err := uc.repo.RSI(ctx, symbol, interval)
		if err != nil {
			return nil, fmt.Errorf("rsi %s %s: %w", symbol, interval, err)
		}
		hist, err := uc.repo.MACDHistogram(ctx, symbol, interval)
		if err != nil {
			return nil, fmt.Errorf("macd %s %s: %w", symbol, interval, err)
		}
		readings = append(readings, entity.Reading{
			Symbol:        symbol,
			Interval:      interval,
			RSI:           rsi,
			MACDHistogram: hist,
			Signal:        entity.Classify(rsi, hist),
		})
	}
	return readings, nil
}

// PickSymbols は Universe から重複なしで SampleSize 件を抽出します。
func (uc *SignalUsecase) PickSymbols() []string {
	return uc.sample(Universe, SampleSize)
}

// EvaluateSample は新たに抽出した銘柄を抽出順に評価します。
func (uc *SignalUsecase) EvaluateSample(ctx context.Context) ([]entity.Report, error) {
	symbols := uc.PickSymbols()
	reports := make([]entity.Report, 0, len(symbols))
	for _, sym := range symbols {
		readings, err := uc.Evaluate(ctx, sym)
		if err != nil {
			return nil, err
		}
		reports = append(reports, entity.Report{Symbol: sym, Readings: readings})
	}
	return reports, nil
}
