// Command initdb drops and recreates the users table and seeds sample accounts.
// It destroys existing data and purges cached users when Redis is configured.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"golang.org/x/crypto/bcrypt"

	usersadapters "user_service/internal/feature/users/adapters"
	"user_service/internal/platform/cache"
	"user_service/internal/platform/config"
	platformdb "user_service/internal/platform/db"
	"user_service/internal/platform/logger"
	platformredis "user_service/internal/platform/redis"
)

func main() {
	config.LoadDotEnv(".env")
	log := logger.New("user-service-initdb", config.GetLevel("LOG_LEVEL", slog.LevelInfo))
	slog.SetDefault(log)

	dbCfg := platformdb.LoadConfigFromEnv()
	db, err := platformdb.OpenDB(dbCfg)
	if err != nil {
		log.Error("failed to open database", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	inserted, err := usersadapters.ResetAndSeed(ctx, db, usersadapters.DefaultSeeds, bcrypt.DefaultCost)
	if err != nil {
		log.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	log.Info("database initialized with ID reset and sample users", "driver", dbCfg.Driver, "inserted", inserted)

	// IDが振り直されるため、キャッシュ済みのユーザーも消す
	rdb, err := platformredis.NewRedisClient(ctx, platformredis.LoadConfigFromEnv())
	if errors.Is(err, platformredis.ErrNotConfigured) {
		return
	}
	if err != nil {
		log.Error("Redis unreachable; cached users may be stale until their TTL expires", "error", err)
		os.Exit(1)
	}
	defer func() { _ = rdb.Close() }()

	removed, err := cache.Purge(ctx, rdb, cache.DefaultNamespace)
	if err != nil {
		log.Error("failed to purge user cache", "error", err)
		os.Exit(1)
	}
	log.Info("user cache purged", "removed", removed)
}
