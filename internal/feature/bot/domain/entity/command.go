package entity

// 対応コマンド。完全一致で判定します。
const (
	CommandStart     = "/start"
	CommandTop       = "/top"
	CommandBTC       = "/btc"
	CommandETH       = "/eth"
	CommandSignal    = "/signal"
	CommandJoin      = "/join"
	CommandSubscribe = "/subscribe"
)

// Inbound はWebhook更新1件から取り出した (チャット, コマンド) の組です。
type Inbound struct {
	ChatID  int64
	Command string
}

// Complete はチャットとコマンドの両方が揃っているかを返します。
func (in Inbound) Complete() bool {
	return in.ChatID != 0 && in.Command != ""
}
