package entity

const (
	// OversoldRSI 未満 (厳密) なら売られすぎ
	OversoldRSI = 30.0
	// OverboughtRSI 超 (厳密) なら買われすぎ
	OverboughtRSI = 70.0
)

// Signal はRSIとMACDヒストグラムから導かれる売買判定です。
type Signal int

const (
	Neutral Signal = iota
	StrongBuy
	StrongSell
)

func (s Signal) String() string {
	switch s {
	case StrongBuy:
		return "Strong Buy"
	case StrongSell:
		return "Strong Sell"
	default:
		return "Neutral"
	}
}

// Classify は2つの指標を組み合わせて判定します。両方が一致した場合のみ Neutral 以外になります。
// 閾値の比較は厳密 (等号を含まない) です。
func Classify(rsi, macdHist float64) Signal {
	switch {
	case rsi < OversoldRSI && macdHist > 0:
		return StrongBuy
	case rsi > OverboughtRSI && macdHist < 0:
		return StrongSell
	default:
		return Neutral
	}
}

// Reading は (銘柄, 時間足) 1件の評価結果です。
type Reading struct {
	Symbol        string
	Interval      string
	RSI           float64
	MACDHistogram float64
	Signal        Signal
}

// Report は1銘柄分の Reading を時間足順にまとめたものです。
type Report struct {
	Symbol   string
	Readings []Reading
}
