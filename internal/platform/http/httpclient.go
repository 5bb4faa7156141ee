package http

import (
	"net"
	"net/http"
	"time"
)

// DefaultTimeout は0以下のタイムアウトが渡された場合に使います。
const DefaultTimeout = 10 * time.Second

// UserAgent は外部API呼び出しに付与する値です。
const UserAgent = "cryptobot/1.0 (+https://t.me)"

// NewHTTPClient は外部API呼び出し (CoinGecko / TAAPI / Telegram) 用のクライアントを作成します。
//
//   - Client.Timeout: リクエスト全体の上限。0以下なら DefaultTimeout
//   - http.DefaultClient はタイムアウトなしのため使わない
//   - User-Agent が未設定のリクエストには UserAgent を付与
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        50,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: &userAgentTransport{next: t}}
}

type userAgentTransport struct {
	next http.RoundTripper
}

func (u *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") != "" {
		return u.next.RoundTrip(req)
	}
	// RoundTripper は呼び出し元のリクエストを変更してはならない
	r := req.Clone(req.Context())
	r.Header.Set("User-Agent", UserAgent)
	return u.next.RoundTrip(r)
}
