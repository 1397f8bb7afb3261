package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/12432383-sudo/housecraft-shop/models"
)

const (
	ProductCachePrefix     = "product:detail:"
	ProductListCachePrefix = "products:v:"
	CacheVersionKey        = "products:version"

	DefaultCacheTTL = 5 * time.Minute
)

// CacheManager caches public catalog responses in Redis. Invalidation bumps
// a version key, so stale list entries simply fall out of reach. The query
// layer itself stays pure; caching lives only at this HTTP boundary.
type CacheManager struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewCacheManager(redis *redis.Client) *CacheManager {
	return &CacheManager{redis: redis, ttl: DefaultCacheTTL}
}

// GetProductList retrieves a cached list response for the category/search
// combination, if present.
func (cm *CacheManager) GetProductList(ctx context.Context, category, query string) (map[string]interface{}, bool) {
	version, err := cm.getCacheVersion(ctx)
	if err != nil || version == 0 {
		return nil, false
	}

	cached, err := cm.redis.Get(ctx, cm.listKey(version, category, query)).Result()
	if err != nil {
		return nil, false
	}

	var response map[string]interface{}
	if err := json.Unmarshal([]byte(cached), &response); err != nil {
		zap.L().Warn("Failed to unmarshal cached product list", zap.Error(err))
		return nil, false
	}
	return response, true
}

// GetProduct retrieves a cached product detail response, if present.
func (cm *CacheManager) GetProduct(ctx context.Context, productID string) (map[string]interface{}, bool) {
	cached, err := cm.redis.Get(ctx, ProductCachePrefix+productID).Result()
	if err != nil {
		return nil, false
	}

	var response map[string]interface{}
	if err := json.Unmarshal([]byte(cached), &response); err != nil {
		zap.L().Warn("Failed to unmarshal cached product", zap.Error(err), zap.String("product_id", productID))
		return nil, false
	}
	return response, true
}

// SetProductAsync caches a product detail response without blocking the
// request. Invalidate drops the entry on the next mutation of the product.
func (cm *CacheManager) SetProductAsync(productID string, product models.Product) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		payload, err := json.Marshal(product)
		if err != nil {
			zap.L().Warn("Failed to marshal product for cache", zap.Error(err), zap.String("product_id", productID))
			return
		}
		if err := cm.redis.Set(ctx, ProductCachePrefix+productID, payload, cm.ttl).Err(); err != nil {
			zap.L().Warn("Failed to cache product", zap.Error(err), zap.String("product_id", productID))
		}
	}()
}

// SetProductListAsync caches a list response without blocking the request.
func (cm *CacheManager) SetProductListAsync(category, query string, response map[string]interface{}) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		version, err := cm.getCacheVersion(ctx)
		if err != nil || version == 0 {
			return
		}
		payload, err := json.Marshal(response)
		if err != nil {
			zap.L().Warn("Failed to marshal product list for cache", zap.Error(err))
			return
		}
		if err := cm.redis.Set(ctx, cm.listKey(version, category, query), payload, cm.ttl).Err(); err != nil {
			zap.L().Warn("Failed to cache product list", zap.Error(err))
		}
	}()
}

// Invalidate bumps the list version and drops the given product's detail
// entry. Called after every admin mutation.
func (cm *CacheManager) Invalidate(ctx context.Context, productID string) {
	if err := cm.redis.Incr(ctx, CacheVersionKey).Err(); err != nil {
		zap.L().Error("Failed to invalidate product cache", zap.Error(err), zap.String("product_id", productID))
	}
	if productID == "" {
		return
	}
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := cm.redis.Del(bgCtx, ProductCachePrefix+productID).Err(); err != nil {
			zap.L().Warn("Failed to delete product detail cache", zap.Error(err), zap.String("product_id", productID))
		}
	}()
}

func (cm *CacheManager) getCacheVersion(ctx context.Context) (int64, error) {
	ver, err := cm.redis.Get(ctx, CacheVersionKey).Int64()
	if err == nil && ver > 0 {
		return ver, nil
	}
	if err == redis.Nil {
		if err := cm.redis.Set(ctx, CacheVersionKey, 1, 0).Err(); err == nil {
			return 1, nil
		}
	}
	return 0, fmt.Errorf("failed to get cache version: %w", err)
}

func (cm *CacheManager) listKey(version int64, category, query string) string {
	return fmt.Sprintf("%s%d:cat:%s:q:%s", ProductListCachePrefix, version, category, query)
}
