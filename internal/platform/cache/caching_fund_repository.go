// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"investiguide_backend/internal/feature/funds/domain/entity"
	"investiguide_backend/internal/feature/funds/usecase"
)

// CachingFundRepository decorates a FundRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository. A nil client disables caching.
type CachingFundRepository struct {
	inner     usecase.FundRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.FundRepository = (*CachingFundRepository)(nil)

// NewCachingFundRepository decorates a FundRepository with Redis caching.
// If ttl is 0, it defaults to 10 minutes. If namespace is empty, it uses "funds".
func NewCachingFundRepository(rdb *redis.Client, ttl time.Duration, inner usecase.FundRepository, namespace string) *CachingFundRepository {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	if namespace == "" {
		namespace = "funds"
	}
	return &CachingFundRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// FindByID retrieves a fund, checking cache first then falling back to the database.
// Not-found results are not cached.
func (c *CachingFundRepository) FindByID(ctx context.Context, id uint) (*entity.Fund, error) {
	var out entity.Fund
	err := c.cached(ctx, c.key("fund", fmt.Sprint(id)), &out, func() (any, error) {
		f, err := c.inner.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		out = *f
		return f, nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByIDs is passed through; its inputs are per-user and rarely repeat.
func (c *CachingFundRepository) FindByIDs(ctx context.Context, ids []uint) ([]entity.Fund, error) {
	return c.inner.FindByIDs(ctx, ids)
}

// List retrieves funds matching filter, keyed by the normalized filter.
func (c *CachingFundRepository) List(ctx context.Context, filter entity.FundFilter) ([]entity.Fund, error) {
	var out []entity.Fund
	err := c.cached(ctx, c.key("list", filterKey(filter)), &out, func() (any, error) {
		funds, err := c.inner.List(ctx, filter)
		if err != nil {
			return nil, err
		}
		out = funds
		return funds, nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListCatalog retrieves a classification table.
func (c *CachingFundRepository) ListCatalog(ctx context.Context, kind entity.CatalogKind) ([]entity.Ref, error) {
	var out []entity.Ref
	err := c.cached(ctx, c.key("catalog", string(kind)), &out, func() (any, error) {
		refs, err := c.inner.ListCatalog(ctx, kind)
		if err != nil {
			return nil, err
		}
		out = refs
		return refs, nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Invalidate removes every cached entry of this namespace. It is a no-op without Redis.
func (c *CachingFundRepository) Invalidate(ctx context.Context) error {
	if c.rdb == nil {
		return nil
	}
	return c.deleteByPattern(ctx, c.namespace+":*")
}

// cached は キャッシュにあればdstへデコードし、なければloadの結果をdstに設定してキャッシュします。
// loadはdstを自分で埋める必要があります。
func (c *CachingFundRepository) cached(ctx context.Context, key string, dst any, load func() (any, error)) error {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		_, err := load()
		return err
	}

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		if err := json.Unmarshal(b, dst); err == nil {
			return nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	v, err := load()
	if err != nil {
		return err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(v); err == nil {
		if err := c.rdb.Set(ctx, key, b, c.ttl).Err(); err != nil {
			slog.Debug("fund cache write failed", "key", key, "error", err)
		}
	}
	return nil
}

// key generates a cache key within the namespace.
func (c *CachingFundRepository) key(kind, id string) string {
	return c.namespace + ":" + kind + ":" + safe(id)
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingFundRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}
