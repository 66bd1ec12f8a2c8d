package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/mattys-media/backend/models"
)

const (
	productListCachePrefix = "products:v:"
	cacheVersionKey        = "products:version"

	defaultTTL = 10 * time.Minute
)

// ProductCache caches catalog listings in Redis. Invalidation bumps a
// version counter instead of enumerating keys, so stale entries simply
// age out under their TTL. A nil *ProductCache is a no-op, which is how
// the service runs when REDIS_URL is unset.
type ProductCache struct {
	redis  *redis.Client
	logger *zap.Logger
	ttl    time.Duration
}

func NewProductCache(client *redis.Client, logger *zap.Logger) *ProductCache {
	return &ProductCache{redis: client, logger: logger, ttl: defaultTTL}
}

func (pc *ProductCache) listKey(version int64, category string) string {
	if category == "" {
		category = "all"
	}
	return fmt.Sprintf("%s%d:%s", productListCachePrefix, version, category)
}

func (pc *ProductCache) version(ctx context.Context) int64 {
	version, err := pc.redis.Get(ctx, cacheVersionKey).Int64()
	if err != nil {
		return 0
	}
	return version
}

// GetList returns a cached product listing, if one is warm.
func (pc *ProductCache) GetList(ctx context.Context, category string) ([]models.ProductResponse, bool) {
	if pc == nil {
		return nil, false
	}

	version := pc.version(ctx)
	if version == 0 {
		return nil, false
	}

	data, err := pc.redis.Get(ctx, pc.listKey(version, category)).Result()
	if err != nil {
		return nil, false
	}

	var products []models.ProductResponse
	if err := json.Unmarshal([]byte(data), &products); err != nil {
		pc.logger.Warn("Failed to unmarshal cached product list", zap.Error(err))
		return nil, false
	}
	return products, true
}

// SetListAsync caches a product listing without blocking the request.
func (pc *ProductCache) SetListAsync(category string, products []models.ProductResponse) {
	if pc == nil {
		return
	}

	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		version := pc.version(bgCtx)
		if version == 0 {
			// Establish the version counter on first use.
			var err error
			version, err = pc.redis.Incr(bgCtx, cacheVersionKey).Result()
			if err != nil {
				return
			}
		}

		data, err := json.Marshal(products)
		if err != nil {
			pc.logger.Warn("Failed to marshal product list for cache", zap.Error(err))
			return
		}

		if err := pc.redis.Set(bgCtx, pc.listKey(version, category), data, pc.ttl).Err(); err != nil {
			pc.logger.Warn("Failed to cache product list", zap.Error(err))
		}
	}()
}

// Invalidate bumps the cache version so all cached listings miss.
func (pc *ProductCache) Invalidate(ctx context.Context) {
	if pc == nil {
		return
	}

	newVersion, err := pc.redis.Incr(ctx, cacheVersionKey).Result()
	if err != nil {
		pc.logger.Error("Failed to invalidate product cache", zap.Error(err))
		return
	}
	pc.logger.Info("Product cache invalidated", zap.Int64("new_version", newVersion))
}
