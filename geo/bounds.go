// Package geo holds the pure bounding-box math behind map and list search.
package geo

import (
	"math"

	"roomshare-server/apperr"
	"roomshare-server/config"
	"roomshare-server/models"
)

// ClampBounds shrinks an oversized viewport symmetrically around its center
// so each span is at most the configured maximum. Oversized input is never
// an error: a zoomed-out world view must degrade to a bounded query, not
// reject. Longitude handling is antimeridian-aware.
func ClampBounds(b models.Bounds, maxLatSpan, maxLngSpan float64) models.Bounds {
	out := b

	if out.LatSpan() > maxLatSpan {
		center := (out.MinLat + out.MaxLat) / 2
		out.MinLat = center - maxLatSpan/2
		out.MaxLat = center + maxLatSpan/2
	}

	if out.LngSpan() > maxLngSpan {
		_, center := out.Center()
		out.MinLng = normalizeLng(center - maxLngSpan/2)
		out.MaxLng = normalizeLng(center + maxLngSpan/2)
	}

	return out
}

// ValidateBounds rejects non-finite coordinates, latitudes outside the
// configured range, and inverted latitude pairs. An inverted longitude
// pair (minLng > maxLng) is a valid antimeridian wrap and passes.
func ValidateBounds(b models.Bounds, cfg config.SearchConfig) error {
	for _, v := range []float64{b.MinLat, b.MaxLat, b.MinLng, b.MaxLng} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return apperr.Validation("bounds must be finite numbers")
		}
	}
	if b.MinLat < cfg.MinLatitude || b.MaxLat > cfg.MaxLatitude {
		return apperr.Validation("Latitude out of range")
	}
	if b.MinLat >= b.MaxLat {
		return apperr.Validation("minLat must be less than maxLat")
	}
	if b.MinLng < -180 || b.MinLng > 180 || b.MaxLng < -180 || b.MaxLng > 180 {
		return apperr.Validation("Longitude out of range")
	}
	return nil
}

// ValidatePoint rejects non-finite or out-of-range coordinates.
func ValidatePoint(lat, lng float64) error {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lng) || math.IsInf(lng, 0) {
		return apperr.Validation("coordinates must be finite numbers")
	}
	if lat < -90 || lat > 90 {
		return apperr.Validation("Latitude out of range")
	}
	if lng < -180 || lng > 180 {
		return apperr.Validation("Longitude out of range")
	}
	return nil
}

// normalizeLng folds a longitude into [-180, 180].
func normalizeLng(lng float64) float64 {
	for lng > 180 {
		lng -= 360
	}
	for lng < -180 {
		lng += 360
	}
	return lng
}
