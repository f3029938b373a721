package models

import (
	"net/url"
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

func testValues(pairs ...string) url.Values {
	v := url.Values{}
	for i := 0; i+1 < len(pairs); i += 2 {
		v.Set(pairs[i], pairs[i+1])
	}
	return v
}

func pinNow(t *testing.T, day string) {
	t.Helper()
	fixed, err := time.Parse(dateLayout, day)
	if err != nil {
		t.Fatal(err)
	}
	orig := nowFunc
	nowFunc = func() time.Time { return fixed }
	t.Cleanup(func() { nowFunc = orig })
}

func TestParseSearchParams_FullFilterSet(t *testing.T) {
	pinNow(t, "2026-03-01")
	vals := testValues(
		"minLat", "37", "maxLat", "38", "minLng", "-123", "maxLng", "-122",
		"minPrice", "500", "maxPrice", "1500",
		"roomType", "private",
		"leaseDuration", "monthly",
		"amenities", "WiFi,parking",
		"houseRules", "no smoking",
		"languages", "ENGLISH,Spanish",
		"moveInDate", "2026-06-01",
		"q", "sunny mission loft",
		"nearMatches", "true",
		"sort", "price_asc",
	)

	parsed, err := ParseSearchParams(vals, 100)
	if err != nil {
		t.Fatal(err)
	}
	p := parsed.Filters

	if p.Bounds == nil || p.Bounds.MinLat != 37 || p.Bounds.MaxLng != -122 {
		t.Errorf("bounds = %+v", p.Bounds)
	}
	if p.MinPrice == nil || *p.MinPrice != 500 || p.MaxPrice == nil || *p.MaxPrice != 1500 {
		t.Errorf("price = %v..%v", p.MinPrice, p.MaxPrice)
	}
	if p.RoomType != "private" || p.LeaseDuration != "monthly" {
		t.Errorf("enums = %q %q", p.RoomType, p.LeaseDuration)
	}

	// Set values are canonicalized against the allowlist.
	wantAmenities := []string{"Wifi", "Parking"}
	if len(p.Amenities) != 2 || p.Amenities[0] != wantAmenities[0] || p.Amenities[1] != wantAmenities[1] {
		t.Errorf("amenities = %v, want %v", p.Amenities, wantAmenities)
	}
	if len(p.HouseRules) != 1 || p.HouseRules[0] != "No Smoking" {
		t.Errorf("houseRules = %v", p.HouseRules)
	}
	if len(p.Languages) != 2 || p.Languages[0] != "English" || p.Languages[1] != "Spanish" {
		t.Errorf("languages = %v", p.Languages)
	}

	if p.MoveInDate != "2026-06-01" {
		t.Errorf("moveInDate = %q", p.MoveInDate)
	}
	if !p.NearMatches {
		t.Error("nearMatches not parsed")
	}
	if parsed.Sort != SortPriceAsc {
		t.Errorf("sort = %q", parsed.Sort)
	}
	if parsed.BoundsRequired {
		t.Error("boundsRequired with bounds present")
	}
	if parsed.BrowseMode {
		t.Error("browseMode with active filters")
	}
}

func TestParseSearchParams_BoundsErrors(t *testing.T) {
	tests := []struct {
		name string
		vals url.Values
	}{
		{"non-numeric", testValues("minLat", "abc", "maxLat", "38", "minLng", "-123", "maxLng", "-122")},
		{"partial", testValues("minLat", "37", "maxLat", "38")},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := ParseSearchParams(test.vals, 100); err == nil {
				t.Error("expected error for malformed bounds")
			}
		})
	}
}

func TestParseSearchParams_MissingBoundsIsNotAnError(t *testing.T) {
	parsed, err := ParseSearchParams(testValues("roomType", "private"), 100)
	if err != nil {
		t.Fatal(err)
	}
	if !parsed.BoundsRequired {
		t.Error("expected boundsRequired when no viewport given")
	}
}

func TestParseSearchParams_DropsBadValues(t *testing.T) {
	pinNow(t, "2026-03-01")
	vals := testValues(
		"roomType", "castle",
		"amenities", "Wifi,moat",
		"moveInDate", "2025-01-01", // in the past
		"minPrice", "-5",
		"nearMatches", "maybe",
	)

	parsed, err := ParseSearchParams(vals, 100)
	if err != nil {
		t.Fatal(err)
	}
	p := parsed.Filters

	if p.RoomType != "" {
		t.Errorf("unknown roomType kept: %q", p.RoomType)
	}
	if len(p.Amenities) != 1 || p.Amenities[0] != "Wifi" {
		t.Errorf("amenities = %v", p.Amenities)
	}
	if p.MoveInDate != "" {
		t.Errorf("past moveInDate kept: %q", p.MoveInDate)
	}
	if p.MinPrice != nil {
		t.Errorf("negative minPrice kept: %d", *p.MinPrice)
	}
	if p.NearMatches {
		t.Error("malformed nearMatches parsed as true")
	}
}

func TestParseSearchParams_QueryCap(t *testing.T) {
	long := make([]byte, 150)
	for i := range long {
		long[i] = 'a'
	}
	parsed, err := ParseSearchParams(testValues("q", string(long)), 100)
	if err != nil {
		t.Fatal(err)
	}
	if got := len(parsed.Filters.Query); got != 100 {
		t.Errorf("query length = %d, want 100", got)
	}
}

func TestParseSearchParams_QueryCapKeepsRunesWhole(t *testing.T) {
	// 40 three-byte runes are 120 bytes; a 100-byte cap lands mid-rune
	// and must back up to the previous boundary.
	long := strings.Repeat("日", 40)
	parsed, err := ParseSearchParams(testValues("q", long), 100)
	if err != nil {
		t.Fatal(err)
	}
	q := parsed.Filters.Query
	if !utf8.ValidString(q) {
		t.Errorf("truncated query is not valid UTF-8: %q", q)
	}
	if len(q) > 100 {
		t.Errorf("query length = %d, want <= 100", len(q))
	}
	if got := utf8.RuneCountInString(q); got != 33 {
		t.Errorf("rune count = %d, want 33", got)
	}
}

func TestParseSearchParams_PaginationExclusivity(t *testing.T) {
	if _, err := ParseSearchParams(testValues("page", "2", "cursor", "abc"), 100); err == nil {
		t.Error("expected error when page and cursor are both set")
	}
}

func TestParseSearchParams_LoneCoordinateDropped(t *testing.T) {
	parsed, err := ParseSearchParams(testValues("lat", "37.7"), 100)
	if err != nil {
		t.Fatal(err)
	}
	if parsed.Filters.Lat != nil || parsed.Filters.Lng != nil {
		t.Error("lone lat should be dropped")
	}
}

func TestToValues_RoundTrip(t *testing.T) {
	pinNow(t, "2026-03-01")
	vals := testValues(
		"minLat", "37", "maxLat", "38", "minLng", "-123", "maxLng", "-122",
		"minPrice", "500",
		"roomType", "private",
		"amenities", "Wifi,Parking",
		"q", "sunny",
		"sort", "price_desc",
		"lat", "37.5", "lng", "-122.5",
	)

	first, err := ParseSearchParams(vals, 100)
	if err != nil {
		t.Fatal(err)
	}
	second, err := ParseSearchParams(first.Filters.ToValues(), 100)
	if err != nil {
		t.Fatal(err)
	}

	a, b := first.Filters.ToValues().Encode(), second.Filters.ToValues().Encode()
	if a != b {
		t.Errorf("round trip not stable:\n%s\nvs\n%s", a, b)
	}
}
