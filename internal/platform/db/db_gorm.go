// Package db はGORMのデータベース接続を提供します。
package db

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"user_service/internal/platform/config"
)

const (
	// DriverSQLite はSQLiteドライバー名です。
	DriverSQLite = "sqlite"
	// DriverPostgres はPostgreSQLドライバー名です。
	DriverPostgres = "postgres"

	defaultSQLitePath     = "users.db"
	defaultConnectTimeout = 60 * time.Second
)

// retryInterval は接続リトライの間隔です。
const retryInterval = time.Second

// Config はデータベース接続設定を保持します。
type Config struct {
	Driver         string
	Path           string
	User           string
	Password       string
	Name           string
	Host           string
	Port           string
	SSLMode        string
	ConnectTimeout time.Duration
}

// Opener はDSNからgorm.DBを開く関数です。
type Opener func(dsn string) (*gorm.DB, error)

// LoadConfigFromEnv は環境変数からデータベース設定を読み込みます。
func LoadConfigFromEnv() Config {
	return Config{
		Driver:         config.GetString("DB_DRIVER", DriverSQLite),
		Path:           config.GetString("DB_PATH", defaultSQLitePath),
		User:           config.GetString("DB_USER", ""),
		Password:       config.GetString("DB_PASSWORD", ""),
		Name:           config.GetString("DB_NAME", ""),
		Host:           config.GetString("DB_HOST", "localhost"),
		Port:           config.GetString("DB_PORT", "5432"),
		SSLMode:        config.GetString("DB_SSLMODE", "disable"),
		ConnectTimeout: config.GetDuration("DB_CONNECT_TIMEOUT", defaultConnectTimeout),
	}
}

// BuildDSN は設定からドライバーに応じたDSN文字列を生成します。
func BuildDSN(cfg Config) string {
	if cfg.Driver == DriverPostgres {
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)
	}
	if cfg.Path == "" {
		return defaultSQLitePath
	}
	return cfg.Path
}

// gormConfig は全ドライバー共通のGORM設定を返します。
// TranslateErrorによりドライバー固有の一意制約違反がgorm.ErrDuplicatedKeyに変換されます。
func gormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	}
}

// NewOpener はドライバー名に対応するOpenerを返します。
func NewOpener(driver string) (Opener, error) {
	switch driver {
	case DriverSQLite, "":
		return func(dsn string) (*gorm.DB, error) {
			return gorm.Open(sqlite.Open(dsn), gormConfig())
		}, nil
	case DriverPostgres:
		return func(dsn string) (*gorm.DB, error) {
			return gorm.Open(postgres.Open(dsn), gormConfig())
		}, nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
}

// ConnectWithRetry はタイムアウトまで接続をリトライします。
// 少なくとも1回は接続を試みます。
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().Add(retryInterval).After(deadline) {
			return nil, fmt.Errorf("DB connect failed after %s: %w", timeout, err)
		}
		slog.Warn("DB connect failed, retrying", "error", err, "interval", retryInterval)
		time.Sleep(retryInterval)
	}
}

// OpenDB は設定に従ってデータベースに接続し、コネクションプールを構成します。
func OpenDB(cfg Config) (*gorm.DB, error) {
	open, err := NewOpener(cfg.Driver)
	if err != nil {
		return nil, err
	}
	db, err := ConnectWithRetry(BuildDSN(cfg), cfg.ConnectTimeout, open)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if cfg.Driver != DriverPostgres {
		// SQLiteは書き込みが単一接続に直列化される。:memory:も接続ごとに別DBになるため1本に固定する
		sqlDB.SetMaxOpenConns(1)
	}
	slog.Info("database connected", "driver", cfg.Driver)
	return db, nil
}
