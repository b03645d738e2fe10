package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"user_service/internal/app/di"
	"user_service/internal/app/router"
	authhandler "user_service/internal/feature/auth/transport/handler"
	authusecase "user_service/internal/feature/auth/usecase"
	usersadapters "user_service/internal/feature/users/adapters"
	usershandler "user_service/internal/feature/users/transport/handler"
	usersusecase "user_service/internal/feature/users/usecase"
	"user_service/internal/platform/config"
	platformdb "user_service/internal/platform/db"
	"user_service/internal/platform/logger"
	platformredis "user_service/internal/platform/redis"
)

func main() {
	config.LoadDotEnv(".env")
	cfg := config.LoadServer()

	log := logger.New("user-service", cfg.LogLevel)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// db
	db, err := platformdb.OpenDB(platformdb.LoadConfigFromEnv())
	if err != nil {
		log.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	if cfg.RunMigrations {
		if err := usersadapters.Migrate(db); err != nil {
			log.Error("failed to migrate", "error", err)
			os.Exit(1)
		}
	}

	// Redis（任意）
	rdb, err := platformredis.NewRedisClient(ctx, platformredis.LoadConfigFromEnv())
	if err != nil {
		log.Warn("Redis unavailable. Running without cache.", "error", err)
		rdb = nil
	} else {
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	// Repository
	userRepo := di.NewUserRepository(rdb, db, cfg.CacheTTL)

	// Usecase
	userUC := usersusecase.NewUserUsecase(userRepo, usersusecase.NewEmailPolicy(cfg.AllowedEmailDomains))
	authUC := authusecase.NewAuthUsecase(userRepo)

	// Handler
	userH := usershandler.NewUserHandler(userUC)
	authH := authhandler.NewAuthHandler(authUC)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.NewRouter(log, userH, authH),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("user service listening", "addr", srv.Addr, "allowed_domains", cfg.AllowedEmailDomains)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", "error", err)
		}
		log.Info("user service stopped")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}
}
