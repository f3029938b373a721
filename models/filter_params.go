package models

import (
	"net/url"
	"strconv"
	"strings"
)

// SortOption orders search results.
type SortOption string

const (
	SortRecommended SortOption = "recommended"
	SortPriceAsc    SortOption = "price_asc"
	SortPriceDesc   SortOption = "price_desc"
)

// ParseSortOption maps a raw value onto a supported ordering, defaulting
// to recommended.
func ParseSortOption(raw string) SortOption {
	switch SortOption(raw) {
	case SortPriceAsc, SortPriceDesc:
		return SortOption(raw)
	default:
		return SortRecommended
	}
}

// Single-valued filter enumerations. Unknown values are dropped at parse time.
var (
	RoomTypes        = []string{"private", "shared", "entire"}
	LeaseDurations   = []string{"monthly", "6_months", "12_months", "flexible"}
	GenderPrefs      = []string{"male", "female", "any"}
	HouseholdGenders = []string{"male", "female", "mixed"}
)

// Allowlisted set values with canonical casing. Incoming values are matched
// case-insensitively and rewritten to the canonical form ("WiFi" -> "Wifi").
var (
	AmenityAllowlist = []string{
		"Wifi", "Parking", "Laundry", "Furnished", "Air Conditioning",
		"Heating", "Dishwasher", "Gym", "Pool", "Pets Allowed",
	}
	HouseRuleAllowlist = []string{
		"No Smoking", "No Pets", "No Guests", "Quiet Hours",
	}
	LanguageAllowlist = []string{
		"English", "Spanish", "French", "Mandarin", "Hindi",
		"Arabic", "Portuguese", "German", "Japanese", "Korean",
	}
)

// FilterParams is the canonical structured filter state. It is built fresh
// from the URL on every request and only ever replaced, never mutated in
// place: producing a new URL is the only way to change committed state.
type FilterParams struct {
	Bounds *Bounds

	MinPrice *int
	MaxPrice *int

	RoomType        string
	LeaseDuration   string
	GenderPref      string
	HouseholdGender string

	Amenities  []string
	HouseRules []string
	Languages  []string

	MoveInDate string // YYYY-MM-DD, date-only
	Query      string
	NearMatches bool

	Sort SortOption

	// Explicit search point, preserved across filter clears.
	Lat *float64
	Lng *float64

	// Pagination. Page-number form (Page) and cursor form (Cursor,
	// CursorStack, PageNumber) are mutually exclusive in a well-formed
	// request.
	Page        int
	Cursor      string
	CursorStack []string
	PageNumber  int
}

// HasPriceFilter reports whether either price bound is set.
func (p FilterParams) HasPriceFilter() bool {
	return p.MinPrice != nil || p.MaxPrice != nil
}

// Filter param keys, shared by the codec and the chip presenter.
const (
	KeyMinLat      = "minLat"
	KeyMaxLat      = "maxLat"
	KeyMinLng      = "minLng"
	KeyMaxLng      = "maxLng"
	KeyMinPrice    = "minPrice"
	KeyMaxPrice    = "maxPrice"
	KeyRoomType    = "roomType"
	KeyLease       = "leaseDuration"
	KeyGenderPref  = "genderPreference"
	KeyHousehold   = "householdGender"
	KeyAmenities   = "amenities"
	KeyHouseRules  = "houseRules"
	KeyLanguages   = "languages"
	KeyMoveInDate  = "moveInDate"
	KeyQuery       = "q"
	KeyNearMatches = "nearMatches"
	KeySort        = "sort"
	KeyLat         = "lat"
	KeyLng         = "lng"
	KeyPage        = "page"
	KeyCursor      = "cursor"
	KeyCursorStack = "cursorStack"
	KeyPageNumber  = "pageNumber"
)

// FilterDimensionKeys are the params that affect result membership. "Clear
// all" removes exactly these; everything else (q, lat, lng, bounds, sort)
// survives.
var FilterDimensionKeys = []string{
	KeyMinPrice, KeyMaxPrice, KeyRoomType, KeyLease, KeyGenderPref,
	KeyHousehold, KeyAmenities, KeyHouseRules, KeyLanguages, KeyMoveInDate,
	KeyNearMatches,
}

// PaginationKeys are stripped whenever the result set changes.
var PaginationKeys = []string{KeyPage, KeyCursor, KeyCursorStack, KeyPageNumber}

// MapRelevantKeys is the full set of params whose change requires a map
// refetch. It must cover every membership-affecting dimension, including
// nearMatches, or map and list drift apart.
var MapRelevantKeys = append([]string{
	KeyMinLat, KeyMaxLat, KeyMinLng, KeyMaxLng, KeyQuery, KeyLat, KeyLng,
}, FilterDimensionKeys...)

// ToValues serializes the params back into URL query values. Zero values
// are omitted. Approximate inverse of ParseSearchParams.
func (p FilterParams) ToValues() url.Values {
	q := url.Values{}

	if p.Bounds != nil {
		q.Set(KeyMinLat, ftoa(p.Bounds.MinLat))
		q.Set(KeyMaxLat, ftoa(p.Bounds.MaxLat))
		q.Set(KeyMinLng, ftoa(p.Bounds.MinLng))
		q.Set(KeyMaxLng, ftoa(p.Bounds.MaxLng))
	}
	if p.MinPrice != nil {
		q.Set(KeyMinPrice, itoa(*p.MinPrice))
	}
	if p.MaxPrice != nil {
		q.Set(KeyMaxPrice, itoa(*p.MaxPrice))
	}
	if p.RoomType != "" {
		q.Set(KeyRoomType, p.RoomType)
	}
	if p.LeaseDuration != "" {
		q.Set(KeyLease, p.LeaseDuration)
	}
	if p.GenderPref != "" {
		q.Set(KeyGenderPref, p.GenderPref)
	}
	if p.HouseholdGender != "" {
		q.Set(KeyHousehold, p.HouseholdGender)
	}
	if len(p.Amenities) > 0 {
		q.Set(KeyAmenities, join(p.Amenities, ","))
	}
	if len(p.HouseRules) > 0 {
		q.Set(KeyHouseRules, join(p.HouseRules, ","))
	}
	if len(p.Languages) > 0 {
		q.Set(KeyLanguages, join(p.Languages, ","))
	}
	if p.MoveInDate != "" {
		q.Set(KeyMoveInDate, p.MoveInDate)
	}
	if p.Query != "" {
		q.Set(KeyQuery, p.Query)
	}
	if p.NearMatches {
		q.Set(KeyNearMatches, "true")
	}
	if p.Sort != "" && p.Sort != SortRecommended {
		q.Set(KeySort, string(p.Sort))
	}
	if p.Lat != nil {
		q.Set(KeyLat, ftoa(*p.Lat))
	}
	if p.Lng != nil {
		q.Set(KeyLng, ftoa(*p.Lng))
	}
	if p.Page > 0 {
		q.Set(KeyPage, itoa(p.Page))
	}
	if p.Cursor != "" {
		q.Set(KeyCursor, p.Cursor)
	}
	if len(p.CursorStack) > 0 {
		q.Set(KeyCursorStack, join(p.CursorStack, ","))
	}
	if p.PageNumber > 0 {
		q.Set(KeyPageNumber, itoa(p.PageNumber))
	}

	return q
}

// NormalizeSet maps raw values onto an allowlist with canonical casing,
// dropping unknowns and duplicates. Order follows first appearance.
func NormalizeSet(raw []string, allowlist []string) []string {
	canonical := make(map[string]string, len(allowlist))
	for _, a := range allowlist {
		canonical[strings.ToLower(a)] = a
	}
	var out []string
	seen := make(map[string]bool)
	for _, r := range raw {
		c, ok := canonical[strings.ToLower(strings.TrimSpace(r))]
		if !ok || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// lightweight helpers (no fmt.Sprintf allocations for ints/bools)
func itoa(i int) string     { return strconv.Itoa(i) }
func ftoa(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
func join(ss []string, sep string) string {
	if len(ss) == 0 {
		return ""
	}
	out := ss[0]
	for i := 1; i < len(ss); i++ {
		out += sep + ss[i]
	}
	return out
}
