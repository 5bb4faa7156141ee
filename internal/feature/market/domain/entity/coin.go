package entity

// CoinMarket は時価総額ランキングの1行です。
type CoinMarket struct {
	ID     string // provider asset id, e.g. "bitcoin"
	Name   string
	Symbol string // ticker as the provider returns it, usually lower case
	// 24時間騰落率が無い場合は nil
	PriceChangePercent24h *float64
}

// ChangeOrZero は24時間騰落率を返します。欠損値は0として扱います。
func (c CoinMarket) ChangeOrZero() float64 {
	if c.PriceChangePercent24h == nil {
		return 0
	}
	return *c.PriceChangePercent24h
}

// Movers はランキング内の24時間上昇・下落上位を保持します。
type Movers struct {
	Gainers []CoinMarket // descending by change
	Losers  []CoinMarket // ascending by change
}
