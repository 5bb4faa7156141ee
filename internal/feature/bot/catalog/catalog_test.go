package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"cryptobot_backend/internal/feature/bot/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "👋 Welcome to <b>PrimeKing Crypto Bot</b>\n\nUse commands or buttons below 👇", c.Start.Text)
	assert.Equal(t, [][]entity.Button{
		{entity.CallbackButton("📊 Top Coins", "/top"), entity.CallbackButton("💰 BTC Price", "/btc")},
		{entity.CallbackButton("💰 ETH Price", "/eth"), entity.CallbackButton("📈 Signals", "/signal")},
		{entity.CallbackButton("🔗 Join Channel", "/join")},
		{entity.CallbackButton("🛒 Subscribe (Coming Soon)", "/subscribe")},
	}, c.Start.Keyboard)

	assert.Equal(t, "🔗 Click below to join our Telegram channel 👇", c.Join.Text)
	assert.Equal(t, [][]entity.Button{
		{entity.LinkButton("👉 Join Channel", "https://t.me/+On10pWG7cbAxNTY1")},
	}, c.Join.Keyboard)

	assert.Equal(t, "🚀 Paid Subscription Feature Coming Soon... Stay tuned!", c.Subscribe.Text)
	assert.True(t, c.Subscribe.HasKeyboard())

	assert.Equal(t, "⚠️ Unknown command. Use /start to see available commands.", c.Unknown.Text)
	assert.False(t, c.Unknown.HasKeyboard())
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	valid := `
start: {text: s, keyboard: [[{text: a, callback_data: /a}]]}
join: {text: j, keyboard: [[{text: b, url: "https://t.me/x"}]]}
subscribe: {text: s, keyboard: [[{text: c, callback_data: /c}]]}
unknown: {text: u}
`
	_, err := Parse([]byte(valid))
	require.NoError(t, err)

	tests := []struct {
		name string
		yaml string
	}{
		{name: "not yaml", yaml: "start: [unclosed"},
		{name: "missing text", yaml: `
start: {keyboard: [[{text: a, callback_data: /a}]]}
join: {text: j, keyboard: [[{text: b, url: "https://t.me/x"}]]}
subscribe: {text: s, keyboard: [[{text: c, callback_data: /c}]]}
unknown: {text: u}`},
		{name: "button with both targets", yaml: `
start: {text: s, keyboard: [[{text: a, callback_data: /a, url: "https://x"}]]}
join: {text: j, keyboard: [[{text: b, url: "https://t.me/x"}]]}
subscribe: {text: s, keyboard: [[{text: c, callback_data: /c}]]}
unknown: {text: u}`},
		{name: "button without target", yaml: `
start: {text: s, keyboard: [[{text: a}]]}
join: {text: j, keyboard: [[{text: b, url: "https://t.me/x"}]]}
subscribe: {text: s, keyboard: [[{text: c, callback_data: /c}]]}
unknown: {text: u}`},
		{name: "join without keyboard", yaml: `
start: {text: s, keyboard: [[{text: a, callback_data: /a}]]}
join: {text: j}
subscribe: {text: s, keyboard: [[{text: c, callback_data: /c}]]}
unknown: {text: u}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	c, err := Load("")
	require.NoError(t, err)
	assert.NotEmpty(t, c.Start.Text)

	path := filepath.Join(t.TempDir(), "replies.yaml")
	require.NoError(t, os.WriteFile(path, defaultYAML, 0o600))
	fromFile, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, c, fromFile)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestWithChannelURL(t *testing.T) {
	t.Parallel()

	c, err := Default()
	require.NoError(t, err)

	moved := c.WithChannelURL("https://t.me/+other")
	assert.Equal(t, "https://t.me/+other", moved.Join.Keyboard[0][0].URL)
	assert.Equal(t, "https://t.me/+On10pWG7cbAxNTY1", c.Join.Keyboard[0][0].URL)
	assert.Equal(t, c.Start, moved.Start)

	assert.Same(t, c, c.WithChannelURL(""))
}
