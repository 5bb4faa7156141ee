// Package logger はプロセス全体のzerologロガーを設定します。
package logger

import (
	"io"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const defaultLevel = "info"

// Config はログ出力の設定です。
type Config struct {
	Level  string // zerolog level name (trace, debug, info, warn, error)
	Pretty bool   // human readable console output instead of JSON
}

// LoadConfig は LOG_LEVEL / LOG_PRETTY を読み込みます。
func LoadConfig() Config {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = defaultLevel
	}
	pretty, _ := strconv.ParseBool(os.Getenv("LOG_PRETTY"))
	return Config{Level: level, Pretty: pretty}
}

// Setup はグローバルロガーを設定して返します。
func Setup(cfg Config) (zerolog.Logger, error) {
	return SetupWriter(cfg, os.Stdout)
}

// SetupWriter は出力先を指定する Setup です。
func SetupWriter(cfg Config, w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return log.Logger, err
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	out := w
	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: "2006-01-02 15:04:05"}
	}

	log.Logger = zerolog.New(out).With().Timestamp().Str("service", "cryptobot").Logger()
	// リクエスト外の zerolog.Ctx はグローバルロガーを使う
	zerolog.DefaultContextLogger = &log.Logger
	return log.Logger, nil
}
