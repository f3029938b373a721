package models

// SearchResult is the paginated list-search response body.
type SearchResult struct {
	Items      []ListingSummary `json:"items"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"totalPages"`
	NextCursor string           `json:"nextCursor,omitempty"`

	// BoundsRequired signals the query needs an explicit viewport before
	// results are meaningful. Distinct from "zero results found".
	BoundsRequired bool `json:"boundsRequired,omitempty"`

	// ExpandedDimension names the relaxed filter when near matches were
	// folded in ("price" or "date").
	ExpandedDimension string `json:"expandedDimension,omitempty"`
}

// MapSearchResult is the unpaginated map-viewport response body.
type MapSearchResult struct {
	Listings []ListingSummary `json:"listings"`
	Bounds   Bounds           `json:"bounds"`
	Meta     MapMeta          `json:"meta"`
}

// MapMeta carries response metadata. Cached is always false: map payloads
// are personalized and must never be CDN-cached.
type MapMeta struct {
	Count  int  `json:"count"`
	Capped bool `json:"capped"`
	Cached bool `json:"cached"`
}

// CountResult is the live result-count response used by the filter panel.
type CountResult struct {
	Count          int  `json:"count"`
	BoundsRequired bool `json:"boundsRequired"`
}
