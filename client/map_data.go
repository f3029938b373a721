package client

import (
	"net/url"
	"sync"

	"roomshare-server/models"
)

// MapData is the shared holder for the listings rendered on the map.
// Every accepted write carries the data version it was fetched for;
// writes tagged with an older version are dropped so a slow, superseded
// fetch cannot clobber fresher data.
type MapData struct {
	mu       sync.Mutex
	version  uint64
	listings []models.ListingSummary
	bounds   *models.Bounds
}

func NewMapData() *MapData {
	return &MapData{}
}

// Version returns the current expected data version. Fetches snapshot it
// before starting and hand it back with their write.
func (m *MapData) Version() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.version
}

// Invalidate bumps the expected version, marking all in-flight fetches
// stale. Returns the new version for the fetch about to start.
func (m *MapData) Invalidate() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.version++
	return m.version
}

// Write applies a fetched result if its version is still current.
// Returns false when the write was dropped as stale.
func (m *MapData) Write(version uint64, listings []models.ListingSummary, bounds *models.Bounds) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if version < m.version {
		return false
	}
	m.version = version
	m.listings = listings
	m.bounds = bounds
	return true
}

// Listings returns the currently displayed listings.
func (m *MapData) Listings() []models.ListingSummary {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listings
}

// Bounds returns the viewport the current listings were fetched for.
func (m *MapData) Bounds() *models.Bounds {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bounds
}

// MapRelevantChanged reports whether any URL param that affects map
// result membership differs between two committed states. Every filter
// dimension counts, including nearMatches; missing one desyncs the map
// from the list.
func MapRelevantChanged(before, after url.Values) bool {
	for _, key := range models.MapRelevantKeys {
		if !sameValues(before[key], after[key]) {
			return true
		}
	}
	return false
}

func sameValues(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
