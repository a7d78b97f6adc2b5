// Command seed はYAMLのフィクスチャからカタログとファンドを登録します。
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"investiguide_backend/internal/app/di"
	fundadapters "investiguide_backend/internal/feature/funds/adapters"
	"investiguide_backend/internal/platform/cache"
	"investiguide_backend/internal/platform/config"
	infradb "investiguide_backend/internal/platform/db"
	"investiguide_backend/internal/platform/logging"
	infraredis "investiguide_backend/internal/platform/redis"
)

func main() {
	path := flag.String("fixtures", "fixtures/funds.yaml", "path to the fixtures YAML file")
	migrate := flag.Bool("migrate", true, "create or update tables before seeding")
	flag.Parse()

	cfg := config.Load()
	logging.New(cfg.Log.Level, cfg.Log.Format)

	if err := run(context.Background(), cfg, *path, *migrate); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, path string, migrate bool) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open fixtures: %w", err)
	}
	defer func() { _ = f.Close() }()

	fx, err := fundadapters.LoadFixtures(f)
	if err != nil {
		return err
	}

	db, err := infradb.Open(cfg.Database)
	if err != nil {
		return err
	}
	if migrate {
		if err := infradb.Migrate(db, di.Models()...); err != nil {
			return err
		}
	}

	res, err := fundadapters.NewSeeder(db).Seed(ctx, fx)
	if err != nil {
		return err
	}
	slog.Info("seed completed", "catalog_entries", res.CatalogEntries, "funds", res.Funds)

	// キャッシュ済みのファンドを破棄
	rdb, err := infraredis.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		slog.Warn("Redis unavailable; fund cache not invalidated", "error", err)
		return nil
	}
	if rdb == nil {
		return nil
	}
	defer func() { _ = rdb.Close() }()

	cached := cache.NewCachingFundRepository(rdb, cfg.Redis.FundTTL, fundadapters.NewFundRepository(db), di.FundCacheNamespace)
	if err := cached.Invalidate(ctx); err != nil {
		return fmt.Errorf("failed to invalidate fund cache: %w", err)
	}
	slog.Info("fund cache invalidated", "namespace", di.FundCacheNamespace)
	return nil
}
