package models

import (
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"roomshare-server/apperr"
)

// ParsedSearch is the outcome of decoding a request's query string.
type ParsedSearch struct {
	Filters        FilterParams
	RequestedPage  int
	Sort           SortOption
	BoundsRequired bool
	BrowseMode     bool
}

const dateLayout = "2006-01-02"

// nowFunc is swapped in tests to pin "today" for move-in date validation.
var nowFunc = time.Now

// ParseSearchParams decodes a flat query string into structured filter
// state. It is total over well-formed input: unknown or malformed values
// are dropped, with one exception: bounds params that are present but
// partial or non-numeric are fundamental to correctness and produce a
// validation error instead of being ignored.
func ParseSearchParams(vals url.Values, maxQueryLength int) (ParsedSearch, error) {
	var p FilterParams

	bounds, err := parseBounds(vals)
	if err != nil {
		return ParsedSearch{}, err
	}
	p.Bounds = bounds

	p.MinPrice = parseOptionalUint(vals.Get(KeyMinPrice))
	p.MaxPrice = parseOptionalUint(vals.Get(KeyMaxPrice))

	p.RoomType = parseEnum(vals.Get(KeyRoomType), RoomTypes)
	p.LeaseDuration = parseEnum(vals.Get(KeyLease), LeaseDurations)
	p.GenderPref = parseEnum(vals.Get(KeyGenderPref), GenderPrefs)
	p.HouseholdGender = parseEnum(vals.Get(KeyHousehold), HouseholdGenders)

	p.Amenities = NormalizeSet(splitCSV(vals.Get(KeyAmenities)), AmenityAllowlist)
	p.HouseRules = NormalizeSet(splitCSV(vals.Get(KeyHouseRules)), HouseRuleAllowlist)
	p.Languages = NormalizeSet(splitCSV(vals.Get(KeyLanguages)), LanguageAllowlist)

	p.MoveInDate = parseMoveInDate(vals.Get(KeyMoveInDate))

	q := strings.TrimSpace(vals.Get(KeyQuery))
	if maxQueryLength > 0 && len(q) > maxQueryLength {
		// Cut on a rune boundary so a multi-byte character is never split.
		cut := maxQueryLength
		for cut > 0 && !utf8.RuneStart(q[cut]) {
			cut--
		}
		q = q[:cut]
	}
	p.Query = q

	if b, err := strconv.ParseBool(vals.Get(KeyNearMatches)); err == nil {
		p.NearMatches = b
	}

	p.Sort = ParseSortOption(vals.Get(KeySort))

	p.Lat = parseOptionalFloat(vals.Get(KeyLat))
	p.Lng = parseOptionalFloat(vals.Get(KeyLng))
	if p.Lat == nil || p.Lng == nil {
		// A lone coordinate is meaningless.
		p.Lat, p.Lng = nil, nil
	}

	p.Cursor = vals.Get(KeyCursor)
	p.CursorStack = splitCSV(vals.Get(KeyCursorStack))
	if n, err := strconv.Atoi(vals.Get(KeyPageNumber)); err == nil && n > 0 {
		p.PageNumber = n
	}
	if n, err := strconv.Atoi(vals.Get(KeyPage)); err == nil && n > 0 {
		p.Page = n
	}
	if p.Cursor != "" && p.Page > 0 {
		return ParsedSearch{}, apperr.Validation("page and cursor pagination are mutually exclusive")
	}

	page := p.Page
	if page == 0 {
		page = 1
	}

	return ParsedSearch{
		Filters:        p,
		RequestedPage:  page,
		Sort:           p.Sort,
		BoundsRequired: p.Bounds == nil && p.Lat == nil,
		BrowseMode:     isBrowseMode(p),
	}, nil
}

// parseBounds returns nil when no bounds params are present, an error when
// they are present but partial or non-numeric.
func parseBounds(vals url.Values) (*Bounds, error) {
	raws := []string{
		vals.Get(KeyMinLat), vals.Get(KeyMaxLat),
		vals.Get(KeyMinLng), vals.Get(KeyMaxLng),
	}
	present := 0
	for _, r := range raws {
		if r != "" {
			present++
		}
	}
	if present == 0 {
		return nil, nil
	}
	if present < 4 {
		return nil, apperr.Validation("partial bounds: all of minLat, maxLat, minLng, maxLng are required")
	}
	nums := make([]float64, 4)
	for i, r := range raws {
		f, err := strconv.ParseFloat(r, 64)
		if err != nil {
			return nil, apperr.Validation("non-numeric bounds value")
		}
		nums[i] = f
	}
	return &Bounds{MinLat: nums[0], MaxLat: nums[1], MinLng: nums[2], MaxLng: nums[3]}, nil
}

func parseMoveInDate(raw string) string {
	if raw == "" {
		return ""
	}
	d, err := time.Parse(dateLayout, raw)
	if err != nil {
		return ""
	}
	today, _ := time.Parse(dateLayout, nowFunc().UTC().Format(dateLayout))
	if d.Before(today) {
		return ""
	}
	return d.Format(dateLayout)
}

func parseEnum(raw string, allowed []string) string {
	for _, a := range allowed {
		if raw == a {
			return raw
		}
	}
	return ""
}

func parseOptionalUint(raw string) *int {
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return nil
	}
	return &n
}

func parseOptionalFloat(raw string) *float64 {
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &f
}

func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func isBrowseMode(p FilterParams) bool {
	return p.Query == "" &&
		!p.HasPriceFilter() &&
		p.RoomType == "" && p.LeaseDuration == "" &&
		p.GenderPref == "" && p.HouseholdGender == "" &&
		len(p.Amenities) == 0 && len(p.HouseRules) == 0 && len(p.Languages) == 0 &&
		p.MoveInDate == "" && !p.NearMatches
}
