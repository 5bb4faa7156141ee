package dto

// MarketItem は /coins/markets レスポンスの1要素です。使うフィールドのみ定義しています。
type MarketItem struct {
	ID                       string   `json:"id"`
	Symbol                   string   `json:"symbol"`
	Name                     string   `json:"name"`
	PriceChangePercentage24h *float64 `json:"price_change_percentage_24h"`
}
