// Package redis はRedisクライアントの生成を提供します。
package redis

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"user_service/internal/platform/config"
)

// ErrNotConfigured はREDIS_HOSTが未設定の場合に返されます。
var ErrNotConfigured = errors.New("redis is not configured")

// Config はRedis接続設定を保持します。
type Config struct {
	Host     string
	Port     string
	Password string
}

// LoadConfigFromEnv は環境変数からRedis設定を読み込みます。
func LoadConfigFromEnv() Config {
	return Config{
		Host:     config.GetString("REDIS_HOST", ""),
		Port:     config.GetString("REDIS_PORT", "6379"),
		Password: config.GetString("REDIS_PASSWORD", ""),
	}
}

// Addr は host:port 形式のアドレスを返します。
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

// NewRedisClient は設定からクライアントを生成し、疎通確認を行います。
// Hostが空の場合はErrNotConfiguredを返します。
func NewRedisClient(ctx context.Context, cfg Config) (*redis.Client, error) {
	if cfg.Host == "" {
		return nil, ErrNotConfigured
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       0,
	})

	// 接続確認
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		slog.Error("Redis connection failed", "address", cfg.Addr(), "error", err)
		_ = rdb.Close()
		return nil, err
	}

	slog.Info("Redis connection successful", "address", cfg.Addr())
	return rdb, nil
}
