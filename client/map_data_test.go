package client

import (
	"net/url"
	"testing"

	"roomshare-server/models"
)

func TestMapData_StaleWriteIsDropped(t *testing.T) {
	m := NewMapData()

	v1 := m.Invalidate()
	v2 := m.Invalidate()

	fresh := []models.ListingSummary{{ID: "fresh"}}
	if !m.Write(v2, fresh, nil) {
		t.Fatal("current-version write rejected")
	}

	stale := []models.ListingSummary{{ID: "stale"}}
	if m.Write(v1, stale, nil) {
		t.Error("stale write accepted")
	}
	if got := m.Listings(); len(got) != 1 || got[0].ID != "fresh" {
		t.Errorf("listings = %v, stale write altered state", got)
	}
}

func TestMapData_WriteRecordsBounds(t *testing.T) {
	m := NewMapData()
	v := m.Invalidate()
	b := &models.Bounds{MinLat: 37, MaxLat: 38, MinLng: -123, MaxLng: -122}

	m.Write(v, nil, b)

	if got := m.Bounds(); got == nil || got.MinLat != 37 {
		t.Errorf("bounds = %+v", got)
	}
}

func TestMapRelevantChanged_IncludesNearMatches(t *testing.T) {
	before := url.Values{"minLat": {"37"}, "maxLat": {"38"}, "minLng": {"-123"}, "maxLng": {"-122"}}
	after := url.Values{"minLat": {"37"}, "maxLat": {"38"}, "minLng": {"-123"}, "maxLng": {"-122"}, "nearMatches": {"true"}}

	if !MapRelevantChanged(before, after) {
		t.Error("nearMatches toggle not considered map-relevant")
	}
}

func TestMapRelevantChanged_IgnoresPagination(t *testing.T) {
	before := url.Values{"minPrice": {"500"}, "page": {"1"}}
	after := url.Values{"minPrice": {"500"}, "page": {"2"}}

	if MapRelevantChanged(before, after) {
		t.Error("pagination change triggered a map refetch")
	}
}
