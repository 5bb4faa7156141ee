// Package catalog はYAMLから読み込むbotの固定返信を保持します。
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"cryptobot_backend/internal/feature/bot/domain/entity"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultYAML []byte

// ErrInvalidCatalog はすべての検証エラーでラップされます。
var ErrInvalidCatalog = errors.New("invalid reply catalog")

// Catalog は固定文言の返信一式です。
type Catalog struct {
	Start     entity.Reply
	Join      entity.Reply
	Subscribe entity.Reply
	Unknown   entity.Reply
}

type document struct {
	Start     replyDoc `yaml:"start"`
	Join      replyDoc `yaml:"join"`
	Subscribe replyDoc `yaml:"subscribe"`
	Unknown   replyDoc `yaml:"unknown"`
}

type replyDoc struct {
	Text     string        `yaml:"text"`
	Keyboard [][]buttonDoc `yaml:"keyboard"`
}

type buttonDoc struct {
	Text         string `yaml:"text"`
	CallbackData string `yaml:"callback_data"`
	URL          string `yaml:"url"`
}

// Default は組み込みのカタログを返します。
func Default() (*Catalog, error) {
	return Parse(defaultYAML)
}

// Load はカタログファイルを読み込みます。path が空なら Default を返します。
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(b)
}

// Parse はYAMLカタログをデコードして検証します。
func Parse(b []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	c := &Catalog{}
	entries := []struct {
		name         string
		src          replyDoc
		dst          *entity.Reply
		needKeyboard bool
	}{
		{"start", doc.Start, &c.Start, true},
		{"join", doc.Join, &c.Join, true},
		{"subscribe", doc.Subscribe, &c.Subscribe, true},
		{"unknown", doc.Unknown, &c.Unknown, false},
	}
	for _, e := range entries {
		r, err := e.src.toReply()
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidCatalog, e.name, err)
		}
		if e.needKeyboard && !r.HasKeyboard() {
			return nil, fmt.Errorf("%w: %s: keyboard is empty", ErrInvalidCatalog, e.name)
		}
		*e.dst = r
	}
	return c, nil
}

// WithChannelURL は /join のリンクボタンを url に差し替えたコピーを返します。
func (c *Catalog) WithChannelURL(url string) *Catalog {
	if url == "" {
		return c
	}
	out := *c
	out.Join.Keyboard = make([][]entity.Button, len(c.Join.Keyboard))
	for i, row := range c.Join.Keyboard {
		out.Join.Keyboard[i] = make([]entity.Button, len(row))
		for j, b := range row {
			if b.URL != "" {
				b.URL = url
			}
			out.Join.Keyboard[i][j] = b
		}
	}
	return &out
}

func (d replyDoc) toReply() (entity.Reply, error) {
	if d.Text == "" {
		return entity.Reply{}, errors.New("text is empty")
	}
	r := entity.Reply{Text: d.Text}
	for i, row := range d.Keyboard {
		buttons := make([]entity.Button, 0, len(row))
		for j, b := range row {
			if b.Text == "" {
				return entity.Reply{}, fmt.Errorf("button %d/%d: text is empty", i, j)
			}
			if (b.CallbackData == "") == (b.URL == "") {
				return entity.Reply{}, fmt.Errorf("button %d/%d: exactly one of callback_data and url is required", i, j)
			}
			buttons = append(buttons, entity.Button{Text: b.Text, CallbackData: b.CallbackData, URL: b.URL})
		}
		r.Keyboard = append(r.Keyboard, buttons)
	}
	return r, nil
}
