package coingecko

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"cryptobot_backend/internal/feature/market/domain/entity"
	"cryptobot_backend/internal/feature/market/usecase"
	"cryptobot_backend/internal/platform/externalapi/coingecko/dto"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
)

const (
	apiKeyHeader = "x-cg-demo-api-key"
	vsCurrency   = "usd"
)

// asset id 内でエスケープが必要な gjson パスのメタ文字
var pathEscaper = strings.NewReplacer(".", `\.`, "*", `\*`, "?", `\?`, "|", `\|`, "#", `\#`, "@", `\@`)

// CoinGeckoMarket はCoinGecko APIから価格・時価総額ランキングを取得するMarketRepository実装です。
type CoinGeckoMarket struct {
	cfg    Config
	client *http.Client
}

var _ usecase.MarketRepository = (*CoinGeckoMarket)(nil)

func NewCoinGeckoMarket(cfg Config, client *http.Client) *CoinGeckoMarket {
	return &CoinGeckoMarket{cfg: cfg, client: client}
}

// GetPrice は /simple/price を呼び出し <id>.usd を読み取ります。
// 該当フィールドが無い、またはJSONでないボディは0として扱います。
func (g *CoinGeckoMarket) GetPrice(ctx context.Context, id string) (float64, error) {
	q := url.Values{}
	q.Set("ids", id)
	q.Set("vs_currencies", vsCurrency)

	body, err := g.get(ctx, "/simple/price", q)
	if err != nil {
		return 0, err
	}
	return gjson.GetBytes(body, pathEscaper.Replace(id)+"."+vsCurrency).Float(), nil
}

// ListMarkets は /coins/markets から時価総額順の1ページ目を取得します。
// データなしの応答は空スライスとnilエラーを返します。
func (g *CoinGeckoMarket) ListMarkets(ctx context.Context, perPage int) ([]entity.CoinMarket, error) {
	q := url.Values{}
	q.Set("vs_currency", vsCurrency)
	q.Set("order", "market_cap_desc")
	q.Set("per_page", strconv.Itoa(perPage))
	q.Set("page", "1")
	q.Set("sparkline", "false")
	q.Set("price_change_percentage", "24h")

	body, err := g.get(ctx, "/coins/markets", q)
	if err != nil {
		return nil, err
	}
	if isEmptyResult(body) {
		return nil, nil
	}

	var items []dto.MarketItem
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("coingecko decode markets: %w", err)
	}

	coins := make([]entity.CoinMarket, 0, len(items))
	for _, it := range items {
		coins = append(coins, entity.CoinMarket{
			ID:                    it.ID,
			Name:                  it.Name,
			Symbol:                it.Symbol,
			PriceChangePercent24h: it.PriceChangePercentage24h,
		})
	}
	return coins, nil
}

// isEmptyResult は空ボディ・null・false・0・""・空配列・空オブジェクトを「データなし」と判定します。
// JSONとして不正なボディはfalseを返し、デコードエラーとして扱います。
func isEmptyResult(body []byte) bool {
	if len(bytes.TrimSpace(body)) == 0 {
		return true
	}
	if !gjson.ValidBytes(body) {
		return false
	}
	r := gjson.ParseBytes(body)
	switch r.Type {
	case gjson.Null, gjson.False:
		return true
	case gjson.Number:
		return r.Float() == 0
	case gjson.String:
		return r.Str == ""
	case gjson.JSON:
		if r.IsArray() {
			return len(r.Array()) == 0
		}
		return len(r.Map()) == 0
	}
	return false
}

func (g *CoinGeckoMarket) get(ctx context.Context, path string, q url.Values) ([]byte, error) {
	u := fmt.Sprintf("%s%s?%s", strings.TrimRight(g.cfg.BaseURL, "/"), path, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if g.cfg.APIKey != "" {
		req.Header.Set(apiKeyHeader, g.cfg.APIKey)
	}

	res, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close response body")
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("coingecko http %d", res.StatusCode)
	}
	return io.ReadAll(res.Body)
}
