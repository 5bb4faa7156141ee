package taapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"cryptobot_backend/internal/feature/signal/usecase"
	"cryptobot_backend/internal/shared/ratelimiter"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
)

const (
	rsiField      = "value"
	macdHistField = "valueMACDHist"
)

// TAAPIIndicators はTAAPI.IOからRSI/MACDを取得するIndicatorRepository実装です。
type TAAPIIndicators struct {
	cfg     Config
	client  *http.Client
	limiter ratelimiter.Limiter
}

var _ usecase.IndicatorRepository = (*TAAPIIndicators)(nil)

// NewTAAPIIndicators はクライアントを生成します。limiter は nil でも構いません。
func NewTAAPIIndicators(cfg Config, client *http.Client, limiter ratelimiter.Limiter) *TAAPIIndicators {
	return &TAAPIIndicators{cfg: cfg, client: client, limiter: limiter}
}

// RSI は "value" フィールドを返します。無ければ0です。
func (t *TAAPIIndicators) RSI(ctx context.Context, symbol, interval string) (float64, error) {
	body, err := t.get(ctx, "rsi", symbol, interval)
	if err != nil {
		return 0, err
	}
	return gjson.GetBytes(body, rsiField).Float(), nil
}

// MACDHistogram は "valueMACDHist" フィールドを返します。無ければ0です。
func (t *TAAPIIndicators) MACDHistogram(ctx context.Context, symbol, interval string) (float64, error) {
	body, err := t.get(ctx, "macd", symbol, interval)
	if err != nil {
		return 0, err
	}
	return gjson.GetBytes(body, macdHistField).Float(), nil
}

func (t *TAAPIIndicators) get(ctx context.Context, indicator, symbol, interval string) ([]byte, error) {
	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	q := url.Values{}
	q.Set("secret", t.cfg.Secret)
	q.Set("exchange", t.cfg.Exchange)
	q.Set("symbol", symbol+"/"+QuoteAsset)
	q.Set("interval", interval)

	u := fmt.Sprintf("%s/%s?%s", strings.TrimRight(t.cfg.BaseURL, "/"), indicator, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	res, err := t.client.Do(req)
	if err != nil {
		// url.Error はsecretを含むURL全体を保持している
		return nil, fmt.Errorf("taapi %s request failed: %w", indicator, unwrapURLError(err))
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close response body")
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("taapi %s http %d", indicator, res.StatusCode)
	}
	return io.ReadAll(res.Body)
}

func unwrapURLError(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		return ue.Err
	}
	return err
}
