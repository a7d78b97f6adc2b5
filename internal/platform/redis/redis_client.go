// Package redis はアプリケーションで共有するRedisクライアントを生成します。
package redis

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"investiguide_backend/internal/platform/config"
)

// NewRedisClient はcfgに従ってクライアントを生成し、接続を確認します。
// ホストが未設定の場合はnilを返し、呼び出し側はキャッシュなしで動作します。
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	if !cfg.Enabled() {
		slog.Info("Redis is not configured; fund cache disabled")
		return nil, nil
	}

	addr := cfg.Addr()
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       0,
	})

	// 接続確認
	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Error("Redis connection failed", "address", addr, "error", err)
		_ = rdb.Close()
		return nil, err
	}

	slog.Info("Redis connection successful", "address", addr)
	return rdb, nil
}
