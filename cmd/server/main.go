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

	"investiguide_backend/internal/app/di"
	"investiguide_backend/internal/app/router"
	"investiguide_backend/internal/platform/config"
	infradb "investiguide_backend/internal/platform/db"
	"investiguide_backend/internal/platform/http/middleware"
	"investiguide_backend/internal/platform/logging"
	infraredis "investiguide_backend/internal/platform/redis"
	"investiguide_backend/internal/shared/ratelimiter"
)

func main() {
	cfg := config.Load()
	logging.New(cfg.Log.Level, cfg.Log.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	// db
	db, err := infradb.Open(cfg.Database)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer func() { _ = sqlDB.Close() }()
	}
	if cfg.Database.RunMigrations {
		if err := infradb.Migrate(db, di.Models()...); err != nil {
			return err
		}
		slog.Info("database migrated")
	}

	// Redis
	rdb, err := infraredis.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		slog.Warn("Redis unavailable. Running without cache.", "error", err)
		rdb = nil
	}
	if rdb != nil {
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	// JWT_SECRETチェック
	if cfg.JWT.Secret == "" {
		return errors.New("JWT_SECRET is not set")
	}

	opts := router.Options{
		JWTSecret:      cfg.JWT.Secret,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Metrics:        middleware.NewMetrics("investiguide"),
	}
	if cfg.Server.RateLimitRPS > 0 {
		limiter := ratelimiter.NewRateLimiter(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst)
		go limiter.Run(ctx, time.Minute)
		opts.Limiter = limiter
	}

	// ルータ生成
	r := router.NewRouter(di.NewHandlers(cfg, db, rdb), opts)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
