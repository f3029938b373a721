package services

import (
	"context"

	"roomshare-server/apperr"
	"roomshare-server/config"
	daopg "roomshare-server/dao/postgres"
	daoredis "roomshare-server/dao/redis"
	"roomshare-server/geo"
	"roomshare-server/logger"
	"roomshare-server/metrics"
	"roomshare-server/models"
)

// pointSpanDeg is the viewport synthesized around an explicit lat/lng
// point when the client has no map bounds yet.
const pointSpanDeg = 0.5

// ListingSearchService translates filter params into listing queries:
// paginated list search, capped map search, and live counts.
type ListingSearchService struct {
	listingDao *daopg.ListingDAO
	mapCache   *daoredis.MapCacheDAO
	cfg        config.SearchConfig
	log        logger.Logger
}

func NewListingSearchService(
	listingDao *daopg.ListingDAO,
	mapCache *daoredis.MapCacheDAO,
	cfg config.SearchConfig,
	log logger.Logger,
) *ListingSearchService {
	return &ListingSearchService{
		listingDao: listingDao,
		mapCache:   mapCache,
		cfg:        cfg,
		log:        log,
	}
}

// Search runs the paginated list query. A request with no viewport at all
// is answered with boundsRequired rather than an unbounded table scan;
// malformed or contradictory filters are rejected outright.
func (s *ListingSearchService) Search(ctx context.Context, parsed models.ParsedSearch) (*models.SearchResult, error) {
	metrics.SearchQueries.WithLabelValues("list").Inc()
	f := parsed.Filters

	if err := validateFilters(f, s.cfg); err != nil {
		return nil, err
	}

	scoped, ok := s.scopeToViewport(f)
	if !ok {
		return &models.SearchResult{
			Items:          []models.ListingSummary{},
			BoundsRequired: true,
			Page:           1,
			Limit:          s.cfg.DefaultPageSize,
		}, nil
	}

	limit := s.cfg.DefaultPageSize

	if scoped.Cursor != "" {
		return s.searchByCursor(ctx, scoped, parsed.Sort, limit)
	}
	return s.searchByPage(ctx, scoped, parsed.Sort, parsed.RequestedPage, limit)
}

func (s *ListingSearchService) searchByPage(ctx context.Context, f models.FilterParams, sort models.SortOption, page, limit int) (*models.SearchResult, error) {
	listings, total, err := s.listingDao.Search(ctx, f, sort, page, limit)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "Search failed", err)
	}

	items := summarize(listings)
	expandedDim := ""

	// Thin first pages get a second, relaxed pass when the caller opted in.
	if f.NearMatches && page == 1 && total < s.cfg.NearMatchThreshold {
		expanded, dim := geo.ExpandFiltersForNearMatches(f, s.cfg)
		if dim != "" {
			expandedDim = dim
			metrics.NearMatchExpansions.WithLabelValues(dim).Inc()
			wider, widerTotal, err := s.listingDao.Search(ctx, expanded, sort, 1, limit)
			if err != nil {
				return nil, apperr.Wrap(apperr.CodeInternal, "Search failed", err)
			}
			items = mergeNearMatches(items, summarize(wider), limit)
			total = widerTotal
		}
	}

	totalPages := (total + limit - 1) / limit
	return &models.SearchResult{
		Items:             items,
		Total:             total,
		Page:              page,
		Limit:             limit,
		TotalPages:        totalPages,
		ExpandedDimension: expandedDim,
	}, nil
}

func (s *ListingSearchService) searchByCursor(ctx context.Context, f models.FilterParams, sort models.SortOption, limit int) (*models.SearchResult, error) {
	cursor, err := daopg.DecodeCursor(f.Cursor)
	if err != nil {
		return nil, apperr.Validation("Invalid cursor")
	}

	listings, next, err := s.listingDao.SearchAfterCursor(ctx, f, sort, cursor, limit)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "Search failed", err)
	}

	result := &models.SearchResult{
		Items: summarize(listings),
		Page:  f.PageNumber,
		Limit: limit,
	}
	if next != nil {
		result.NextCursor = next.Encode()
	}
	return result, nil
}

// MapSearch returns all matching listings within the viewport, capped.
// The viewport is required, validated, and clamped rather than rejected
// when oversized.
func (s *ListingSearchService) MapSearch(ctx context.Context, f models.FilterParams) (*models.MapSearchResult, error) {
	metrics.SearchQueries.WithLabelValues("map").Inc()
	if f.Bounds == nil {
		return nil, apperr.Validation("bounds are required for map search")
	}
	if err := geo.ValidateBounds(*f.Bounds, s.cfg); err != nil {
		return nil, err
	}
	if err := validateFilters(f, s.cfg); err != nil {
		return nil, err
	}

	clamped := geo.ClampBounds(*f.Bounds, s.cfg.MaxLatSpan, s.cfg.MaxLngSpan)
	f.Bounds = &clamped

	signature := f.ToValues().Encode()
	if cached, ok := s.mapCache.Get(ctx, signature); ok {
		metrics.MapCacheHits.WithLabelValues("hit").Inc()
		return mapResult(cached, clamped, s.cfg.MapResultCap), nil
	}
	metrics.MapCacheHits.WithLabelValues("miss").Inc()

	listings, err := s.listingDao.SearchWithinBounds(ctx, f, s.cfg.MapResultCap)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "Map search failed", err)
	}

	summaries := summarize(listings)
	if err := s.mapCache.Put(ctx, signature, summaries); err != nil {
		s.log.Warn("map cache write failed", map[string]interface{}{"error": err.Error()})
	}
	return mapResult(summaries, clamped, s.cfg.MapResultCap), nil
}

// Count answers the live result-count query driving the filter panel.
func (s *ListingSearchService) Count(ctx context.Context, parsed models.ParsedSearch) (*models.CountResult, error) {
	metrics.SearchQueries.WithLabelValues("count").Inc()
	f := parsed.Filters
	if err := validateFilters(f, s.cfg); err != nil {
		return nil, err
	}

	scoped, ok := s.scopeToViewport(f)
	if !ok {
		return &models.CountResult{BoundsRequired: true}, nil
	}

	n, err := s.listingDao.Count(ctx, scoped)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "Count failed", err)
	}
	return &models.CountResult{Count: n}, nil
}

// scopeToViewport ensures the query has bounds, synthesizing a small box
// around an explicit point when needed. Returns false when no viewport can
// be derived at all.
func (s *ListingSearchService) scopeToViewport(f models.FilterParams) (models.FilterParams, bool) {
	if f.Bounds != nil {
		clamped := geo.ClampBounds(*f.Bounds, s.cfg.MaxLatSpan, s.cfg.MaxLngSpan)
		f.Bounds = &clamped
		return f, true
	}
	if f.Lat != nil && f.Lng != nil {
		f.Bounds = &models.Bounds{
			MinLat: *f.Lat - pointSpanDeg/2,
			MaxLat: *f.Lat + pointSpanDeg/2,
			MinLng: *f.Lng - pointSpanDeg/2,
			MaxLng: *f.Lng + pointSpanDeg/2,
		}
		return f, true
	}
	return f, false
}

func validateFilters(f models.FilterParams, cfg config.SearchConfig) error {
	if f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice {
		return apperr.Validation("minPrice must not exceed maxPrice")
	}
	if f.Bounds != nil {
		if err := geo.ValidateBounds(*f.Bounds, cfg); err != nil {
			return err
		}
	}
	if f.Lat != nil && f.Lng != nil {
		if err := geo.ValidatePoint(*f.Lat, *f.Lng); err != nil {
			return err
		}
	}
	return nil
}

func summarize(listings []models.Listing) []models.ListingSummary {
	out := make([]models.ListingSummary, 0, len(listings))
	for _, l := range listings {
		out = append(out, l.Summary())
	}
	return out
}

// mergeNearMatches appends relaxed results after the strict ones, skipping
// duplicates and flagging everything from the wider pass.
func mergeNearMatches(strict, wider []models.ListingSummary, limit int) []models.ListingSummary {
	seen := make(map[string]bool, len(strict))
	for _, item := range strict {
		seen[item.ID] = true
	}
	out := strict
	for _, item := range wider {
		if len(out) >= limit {
			break
		}
		if seen[item.ID] {
			continue
		}
		item.IsNearMatch = true
		out = append(out, item)
	}
	return out
}

func mapResult(listings []models.ListingSummary, bounds models.Bounds, resultCap int) *models.MapSearchResult {
	return &models.MapSearchResult{
		Listings: listings,
		Bounds:   bounds,
		Meta: models.MapMeta{
			Count:  len(listings),
			Capped: len(listings) >= resultCap,
			Cached: false, // never CDN-cacheable, even on a warm server cache
		},
	}
}
