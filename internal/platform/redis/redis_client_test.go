package redis

import (
	"context"
	"errors"
	"testing"
)

// TestLoadConfigFromEnv は環境変数からRedis設定が読み込まれることを検証します。
func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_PORT", "")
	t.Setenv("REDIS_PASSWORD", "secret")

	cfg := LoadConfigFromEnv()

	if cfg.Addr() != "cache:6379" {
		t.Errorf("expected addr %q, got %q", "cache:6379", cfg.Addr())
	}
	if cfg.Password != "secret" {
		t.Errorf("expected password %q, got %q", "secret", cfg.Password)
	}
}

// TestNewRedisClient_NotConfigured はHost未設定時に接続を試みずエラーを返すことを検証します。
func TestNewRedisClient_NotConfigured(t *testing.T) {
	t.Parallel()

	rdb, err := NewRedisClient(context.Background(), Config{})

	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
	if rdb != nil {
		t.Error("expected nil client")
	}
}
