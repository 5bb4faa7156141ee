package domain

import "errors"

// ErrNoMarketData はプロバイダの市場一覧が空だった場合に返されます。
var ErrNoMarketData = errors.New("no market data")
