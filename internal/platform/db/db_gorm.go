// Package db はコマンド監査ログ用の任意のgormデータベースを開きます。
package db

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	botadapters "cryptobot_backend/internal/feature/bot/adapters"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	defaultSQLitePath = "cryptobot.db"
	retryInterval     = 3 * time.Second
)

// ErrUnsupportedDriver は postgres / sqlite 以外のドライバーで返されます。
var ErrUnsupportedDriver = errors.New("unsupported database driver")

// Config はDB接続設定です。Driver が空ならDBは無効です。
type Config struct {
	Driver         string        // "postgres" or "sqlite"
	URL            string        // postgres DSN / URL
	Path           string        // sqlite file path
	RunMigrations  bool          // AutoMigrate on open
	ConnectTimeout time.Duration // total time spent retrying the first connection
}

// LoadConfigFromEnv は DB_DRIVER / DATABASE_URL / DB_PATH / RUN_MIGRATIONS を読み込みます。
// DATABASE_URL のみ指定された場合は postgres とみなします。
func LoadConfigFromEnv() Config {
	cfg := Config{
		Driver:         strings.ToLower(os.Getenv("DB_DRIVER")),
		URL:            os.Getenv("DATABASE_URL"),
		Path:           os.Getenv("DB_PATH"),
		RunMigrations:  true,
		ConnectTimeout: 60 * time.Second,
	}
	if cfg.Driver == "" && cfg.URL != "" {
		cfg.Driver = DriverPostgres
	}
	if cfg.Path == "" {
		cfg.Path = defaultSQLitePath
	}
	if v, err := strconv.ParseBool(os.Getenv("RUN_MIGRATIONS")); err == nil {
		cfg.RunMigrations = v
	}
	return cfg
}

func (c Config) Enabled() bool {
	return c.Driver != ""
}

// BuildDSN は設定されたドライバー用の接続文字列を返します。
func BuildDSN(cfg Config) string {
	if cfg.Driver == DriverSQLite {
		return cfg.Path
	}
	return cfg.URL
}

// Opener はDSNからDBを開く関数です。テストで差し替えます。
type Opener func(dsn string) (*gorm.DB, error)

// ConnectWithRetry は成功するか timeout を超えるまで open を繰り返します。
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().Add(retryInterval).After(deadline) {
			return nil, fmt.Errorf("db connect failed after %s: %w", timeout, err)
		}
		log.Warn().Err(err).Dur("retry_in", retryInterval).Msg("db connect failed, retrying")
		time.Sleep(retryInterval)
	}
}

func dialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case DriverPostgres:
		return postgres.Open(dsn), nil
	case DriverSQLite:
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
}

// OpenDB はリトライ付きで接続し、有効な場合はマイグレーションを実行します。
func OpenDB(cfg Config) (*gorm.DB, error) {
	if _, err := dialector(cfg.Driver, ""); err != nil {
		return nil, err
	}
	opener := func(dsn string) (*gorm.DB, error) {
		d, _ := dialector(cfg.Driver, dsn)
		return gorm.Open(d, &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
	}
	return openWith(cfg, opener, Migrate)
}

func openWith(cfg Config, opener Opener, migrate func(*gorm.DB) error) (*gorm.DB, error) {
	db, err := ConnectWithRetry(BuildDSN(cfg), cfg.ConnectTimeout, opener)
	if err != nil {
		return nil, err
	}

	if cfg.RunMigrations {
		if err := migrate(db); err != nil {
			// マイグレーション失敗時は開いたプールを閉じてから返す
			if sqlDB, e := db.DB(); e == nil {
				_ = sqlDB.Close()
			}
			return nil, err
		}
	}
	log.Info().Str("driver", cfg.Driver).Msg("database ready")
	return db, nil
}

// Migrate はコマンドログのテーブルを作成・更新します。
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&botadapters.CommandLogModel{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}
