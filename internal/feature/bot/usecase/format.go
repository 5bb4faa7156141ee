package usecase

import (
	"fmt"
	"strings"

	marketentity "cryptobot_backend/internal/feature/market/domain/entity"
	signalentity "cryptobot_backend/internal/feature/signal/domain/entity"

	"github.com/shopspring/decimal"
)

// NoticeFetchError は市場データが空だった場合に送る通知文です。
const NoticeFetchError = "⚠️ Error fetching data."

// FormatPercent は v を小数2桁で整形します。0以上なら "+" を付けます。
func FormatPercent(v float64) string {
	d := decimal.NewFromFloat(v).Round(2)
	if d.Sign() >= 0 {
		return "+" + d.StringFixed(2)
	}
	return d.StringFixed(2)
}

// FormatNumber は v を最短の10進表記で整形します (67000.5, 0, 45.123)。
func FormatNumber(v float64) string {
	return decimal.NewFromFloat(v).String()
}

// FormatPrice は /btc・/eth の返信文を生成します。
func FormatPrice(name, ticker string, price float64) string {
	return fmt.Sprintf("💰 %s (%s): $%s", name, ticker, FormatNumber(price))
}

// FormatMover は "<name> (<TICKER>) <±pct>%" を生成します。
func FormatMover(c marketentity.CoinMarket) string {
	return fmt.Sprintf("%s (%s) %s%%", c.Name, strings.ToUpper(c.Symbol), FormatPercent(c.ChangeOrZero()))
}

// FormatTopMovers は /top の返信文を生成します。
func FormatTopMovers(m marketentity.Movers) string {
	var b strings.Builder
	b.WriteString("📊 <b>Top 5 Gainers</b>\n")
	for _, c := range m.Gainers {
		b.WriteString("✅ " + FormatMover(c) + "\n")
	}
	b.WriteString("\n📉 <b>Top 5 Losers</b>\n")
	for _, c := range m.Losers {
		b.WriteString("❌ " + FormatMover(c) + "\n")
	}
	return b.String()
}

// SignalLabel は s の絵文字付きラベルです。
func SignalLabel(s signalentity.Signal) string {
	switch s {
	case signalentity.StrongBuy:
		return "🟢 " + s.String()
	case signalentity.StrongSell:
		return "🔴 " + s.String()
	default:
		return "⚪ " + s.String()
	}
}

// FormatReport は1銘柄分のブロックを生成します。各時間足の行は "\n" で終わります。
func FormatReport(r signalentity.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 <b>Signal for %s</b>\n", r.Symbol)
	for _, rd := range r.Readings {
		fmt.Fprintf(&b, "⏱ %s → RSI: %s | MACD: %s → %s\n",
			rd.Interval, FormatNumber(rd.RSI), FormatNumber(rd.MACDHistogram), SignalLabel(rd.Signal))
	}
	return b.String()
}

// FormatSignals は /signal の返信文を生成します。見出しの後に銘柄ブロックを空行区切りで並べます。
func FormatSignals(reports []signalentity.Report) string {
	blocks := make([]string, 0, len(reports))
	for _, r := range reports {
		blocks = append(blocks, FormatReport(r))
	}
	return "🚀 <b>Crypto Signals (RSI + MACD)</b>\n\n" + strings.Join(blocks, "\n")
}
