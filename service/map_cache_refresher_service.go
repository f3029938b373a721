package services

import (
	"context"
	"time"

	"roomshare-server/logger"
	"roomshare-server/models"
)

// Viewport names a map window to keep warm in the cache.
type Viewport struct {
	Name   string
	Bounds models.Bounds
}

// defaultViewports is the constant list of high-traffic metro windows.
// Populated manually as launch markets come online.
var defaultViewports = []Viewport{
	{
		Name:   "sf-bay",
		Bounds: models.Bounds{MinLat: 37.2, MaxLat: 37.9, MinLng: -122.6, MaxLng: -121.8},
	},
	{
		Name:   "nyc",
		Bounds: models.Bounds{MinLat: 40.5, MaxLat: 40.95, MinLng: -74.3, MaxLng: -73.6},
	},
	{
		Name:   "la",
		Bounds: models.Bounds{MinLat: 33.7, MaxLat: 34.35, MinLng: -118.7, MaxLng: -117.9},
	},
	{
		Name:   "austin",
		Bounds: models.Bounds{MinLat: 30.1, MaxLat: 30.55, MinLng: -98.0, MaxLng: -97.5},
	},
	{
		Name:   "seattle",
		Bounds: models.Bounds{MinLat: 47.45, MaxLat: 47.75, MinLng: -122.45, MaxLng: -122.2},
	},
}

// MapCacheRefresherService keeps the map cache warm for the busiest
// viewports so first paints after an invalidation do not all hit
// Postgres at once.
type MapCacheRefresherService struct {
	search *ListingSearchService
	log    logger.Logger
}

func NewMapCacheRefresherService(search *ListingSearchService, log logger.Logger) *MapCacheRefresherService {
	return &MapCacheRefresherService{search: search, log: log}
}

// StartPeriodicJob launches the background warm loop at the given
// interval. The loop stops when ctx is canceled.
func (r *MapCacheRefresherService) StartPeriodicJob(ctx context.Context, interval time.Duration) {
	go r.run(ctx, interval)
}

func (r *MapCacheRefresherService) run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.RefreshViewports(ctx)
		}
	}
}

// RefreshViewports runs an unfiltered map search per default viewport,
// which repopulates each viewport's cache entry as a side effect.
func (r *MapCacheRefresherService) RefreshViewports(ctx context.Context) {
	r.log.Info("warming map cache", map[string]interface{}{"viewports": len(defaultViewports)})

	for _, vp := range defaultViewports {
		bounds := vp.Bounds
		result, err := r.search.MapSearch(ctx, models.FilterParams{Bounds: &bounds})
		if err != nil {
			r.log.Warn("viewport warm failed", map[string]interface{}{
				"viewport": vp.Name,
				"error":    err.Error(),
			})
			continue
		}
		r.log.Debug("viewport warmed", map[string]interface{}{
			"viewport": vp.Name,
			"count":    result.Meta.Count,
		})
	}
}
