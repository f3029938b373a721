package geo

import (
	"time"

	"roomshare-server/config"
	"roomshare-server/models"
)

// Expansion dimensions reported by ExpandFiltersForNearMatches.
const (
	DimensionPrice = "price"
	DimensionDate  = "date"
)

const dateLayout = "2006-01-02"

// nowFunc is swapped in tests to pin "today".
var nowFunc = time.Now

// ExpandFiltersForNearMatches relaxes exactly one filter dimension so a
// strict search that came back thin can be retried wider. Price takes
// priority: when either price bound is set, maxPrice grows by the
// configured percentage (ceiling) and minPrice shrinks by it (floor).
// Otherwise a future move-in date shifts back by the configured day count,
// date-only, so no timezone drift. With nothing expandable the input passes
// through untouched and the dimension is empty.
func ExpandFiltersForNearMatches(p models.FilterParams, cfg config.SearchConfig) (models.FilterParams, string) {
	out := p

	if p.HasPriceFilter() {
		if p.MaxPrice != nil {
			v := ceilPercent(*p.MaxPrice, 100+cfg.PriceExpandPercent)
			out.MaxPrice = &v
		}
		if p.MinPrice != nil {
			v := floorPercent(*p.MinPrice, 100-cfg.PriceExpandPercent)
			out.MinPrice = &v
		}
		return out, DimensionPrice
	}

	if d, ok := futureDate(p.MoveInDate); ok {
		out.MoveInDate = d.AddDate(0, 0, -cfg.MoveInShiftDays).Format(dateLayout)
		return out, DimensionDate
	}

	return out, ""
}

func ceilPercent(v, pct int) int {
	return (v*pct + 99) / 100
}

func floorPercent(v, pct int) int {
	return v * pct / 100
}

func futureDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	d, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, false
	}
	today, _ := time.Parse(dateLayout, nowFunc().UTC().Format(dateLayout))
	if !d.After(today) {
		return time.Time{}, false
	}
	return d, true
}
