package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	fundadapters "investiguide_backend/internal/feature/funds/adapters"
	"investiguide_backend/internal/feature/funds/usecase"
	"investiguide_backend/internal/platform/cache"
)

// FundCacheNamespace はファンドキャッシュのキー接頭辞です。cmd/seedの無効化でも使います。
const FundCacheNamespace = "funds"

// NewFundRepository creates a FundRepository implementation.
// If Redis is available, the GORM repository is wrapped with a read-through cache.
func NewFundRepository(rdb *redis.Client, db *gorm.DB, ttl time.Duration) usecase.FundRepository {
	repo := fundadapters.NewFundRepository(db)
	if rdb != nil {
		return cache.NewCachingFundRepository(rdb, ttl, repo, FundCacheNamespace)
	}
	return repo
}
