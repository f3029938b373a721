package models

// Bounds is a geographic bounding box constraining a spatial query.
// MinLng > MaxLng is a valid box spanning the antimeridian.
type Bounds struct {
	MinLat float64 `json:"min_lat"`
	MaxLat float64 `json:"max_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLng float64 `json:"max_lng"`
}

// LatSpan returns the latitude extent in degrees.
func (b Bounds) LatSpan() float64 {
	return b.MaxLat - b.MinLat
}

// LngSpan returns the longitude extent in degrees, normalized into [0, 360).
// An inverted pair signals an antimeridian wrap.
func (b Bounds) LngSpan() float64 {
	if b.MinLng > b.MaxLng {
		return 180 - b.MinLng + (b.MaxLng + 180)
	}
	return b.MaxLng - b.MinLng
}

// Center returns the box center. Longitude is wrap-aware and normalized
// into [-180, 180].
func (b Bounds) Center() (lat, lng float64) {
	lat = (b.MinLat + b.MaxLat) / 2
	lng = b.MinLng + b.LngSpan()/2
	if lng > 180 {
		lng -= 360
	}
	return lat, lng
}

// Contains reports whether the point falls inside the box, wrap-aware.
func (b Bounds) Contains(lat, lng float64) bool {
	if lat < b.MinLat || lat > b.MaxLat {
		return false
	}
	if b.MinLng > b.MaxLng {
		return lng >= b.MinLng || lng <= b.MaxLng
	}
	return lng >= b.MinLng && lng <= b.MaxLng
}
