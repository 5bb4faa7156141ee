package entity

// Button はインラインキーボードのボタンです。CallbackData と URL のどちらか一方のみ設定します。
type Button struct {
	Text         string
	CallbackData string
	URL          string
}

// CallbackButton は押下時に data を新しいコマンドとしてbotへ送るボタンを返します。
func CallbackButton(text, data string) Button {
	return Button{Text: text, CallbackData: data}
}

// LinkButton は押下時に url を開くボタンを返します。
func LinkButton(text, url string) Button {
	return Button{Text: text, URL: url}
}

// Reply はチャットへ送信する1メッセージです。Text はHTML形式。
type Reply struct {
	Text     string
	Keyboard [][]Button // rows of buttons; empty means no keyboard
}

// TextReply はキーボードなしの返信を生成します。
func TextReply(text string) Reply {
	return Reply{Text: text}
}

// HasKeyboard はボタンを含む行があるかを返します。
func (r Reply) HasKeyboard() bool {
	for _, row := range r.Keyboard {
		if len(row) > 0 {
			return true
		}
	}
	return false
}
