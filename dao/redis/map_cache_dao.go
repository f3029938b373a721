package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"roomshare-server/db"
	"roomshare-server/models"
)

const MAP_CACHE_KEY_FORMAT_V1 = "map_listings_v1:%s"
const MAP_CACHE_TTL = 30 * time.Second

// MapCacheDAO is a short-lived server-side cache for map viewport queries,
// keyed by the normalized filter signature. It only trims database load;
// responses still carry cached:false because the HTTP layer must never let
// a CDN hold a personalized payload.
type MapCacheDAO struct {
	client db.RedisClient
}

func NewMapCacheDAO(client db.RedisClient) *MapCacheDAO {
	return &MapCacheDAO{client: client}
}

// Get returns the cached listings for a filter signature, or (nil, false).
func (dao *MapCacheDAO) Get(ctx context.Context, signature string) ([]models.ListingSummary, bool) {
	raw, err := dao.client.Get(ctx, fmt.Sprintf(MAP_CACHE_KEY_FORMAT_V1, signature))
	if errors.Is(err, db.ErrCacheMiss) {
		return nil, false
	}
	if err != nil {
		return nil, false
	}
	var listings []models.ListingSummary
	if err := json.Unmarshal([]byte(raw), &listings); err != nil {
		return nil, false
	}
	return listings, true
}

// Put stores listings for a filter signature.
func (dao *MapCacheDAO) Put(ctx context.Context, signature string, listings []models.ListingSummary) error {
	data, err := json.Marshal(listings)
	if err != nil {
		return fmt.Errorf("marshal map cache entry: %w", err)
	}
	if err := dao.client.Set(ctx, fmt.Sprintf(MAP_CACHE_KEY_FORMAT_V1, signature), string(data), MAP_CACHE_TTL); err != nil {
		return fmt.Errorf("set map cache entry: %w", err)
	}
	return nil
}

// InvalidateAll drops every cached viewport. Called after listing writes.
func (dao *MapCacheDAO) InvalidateAll(ctx context.Context) error {
	keys, err := dao.client.Keys(ctx, fmt.Sprintf(MAP_CACHE_KEY_FORMAT_V1, "*"))
	if err != nil {
		return fmt.Errorf("list map cache keys: %w", err)
	}
	for _, k := range keys {
		if err := dao.client.Del(ctx, k); err != nil {
			return fmt.Errorf("delete map cache key %s: %w", k, err)
		}
	}
	return nil
}
