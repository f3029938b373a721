// Package chips derives removable filter chips from URL search state.
// Chips are a pure projection of the query string: no hidden state, and
// every render regenerates them from scratch.
package chips

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"roomshare-server/models"
)

// Chip is one removable filter token.
type Chip struct {
	Filter     string `json:"filter"`
	Label      string `json:"label"`
	Value      string `json:"value"`
	RemoveHref string `json:"removeHref"`
}

// ChipSet is the rendered chip row: at most maxVisible chips plus an
// overflow count and a clear-all target.
type ChipSet struct {
	Chips        []Chip `json:"chips"`
	Overflow     int    `json:"overflow"`
	ClearAllHref string `json:"clearAllHref"`
}

// OverflowLabel renders the "+N more" indicator, empty when nothing overflows.
func (s ChipSet) OverflowLabel() string {
	if s.Overflow == 0 {
		return ""
	}
	return fmt.Sprintf("+%d more", s.Overflow)
}

// URLToFilterChips projects the query string at path into chips. maxVisible
// caps the rendered chips; the remainder is reported as overflow.
func URLToFilterChips(path string, vals url.Values, maxVisible int) ChipSet {
	all := deriveChips(path, vals)

	set := ChipSet{ClearAllHref: ClearAllHref(path, vals)}
	if maxVisible > 0 && len(all) > maxVisible {
		set.Chips = all[:maxVisible]
		set.Overflow = len(all) - maxVisible
	} else {
		set.Chips = all
	}
	return set
}

func deriveChips(path string, vals url.Values) []Chip {
	var out []Chip

	if c, ok := priceChip(path, vals); ok {
		out = append(out, c)
	}

	singles := []struct {
		key   string
		label func(string) string
	}{
		{models.KeyRoomType, titleize},
		{models.KeyLease, titleize},
		{models.KeyGenderPref, func(v string) string { return "Gender: " + titleize(v) }},
		{models.KeyHousehold, func(v string) string { return "Household: " + titleize(v) }},
		{models.KeyMoveInDate, func(v string) string { return "Move in " + v }},
	}
	for _, s := range singles {
		if v := vals.Get(s.key); v != "" {
			out = append(out, Chip{
				Filter:     s.key,
				Label:      s.label(v),
				Value:      v,
				RemoveHref: removeKeysHref(path, vals, s.key),
			})
		}
	}

	for _, key := range []string{models.KeyAmenities, models.KeyHouseRules, models.KeyLanguages} {
		for _, v := range splitCSV(vals.Get(key)) {
			out = append(out, Chip{
				Filter:     key,
				Label:      v,
				Value:      v,
				RemoveHref: removeSetValueHref(path, vals, key, v),
			})
		}
	}

	if v := vals.Get(models.KeyNearMatches); v == "true" {
		out = append(out, Chip{
			Filter:     models.KeyNearMatches,
			Label:      "Near matches",
			Value:      "true",
			RemoveHref: removeKeysHref(path, vals, models.KeyNearMatches),
		})
	}

	return out
}

// priceChip collapses both price bounds into one chip when both are set.
// Removing the combined chip removes both params.
func priceChip(path string, vals url.Values) (Chip, bool) {
	minRaw, maxRaw := vals.Get(models.KeyMinPrice), vals.Get(models.KeyMaxPrice)
	minV, minOK := atoi(minRaw)
	maxV, maxOK := atoi(maxRaw)

	switch {
	case minOK && maxOK:
		return Chip{
			Filter:     "price",
			Label:      fmt.Sprintf("$%d - $%d", minV, maxV),
			Value:      minRaw + "-" + maxRaw,
			RemoveHref: removeKeysHref(path, vals, models.KeyMinPrice, models.KeyMaxPrice),
		}, true
	case minOK:
		return Chip{
			Filter:     "price",
			Label:      fmt.Sprintf("Min $%d", minV),
			Value:      minRaw,
			RemoveHref: removeKeysHref(path, vals, models.KeyMinPrice),
		}, true
	case maxOK:
		return Chip{
			Filter:     "price",
			Label:      fmt.Sprintf("Max $%d", maxV),
			Value:      maxRaw,
			RemoveHref: removeKeysHref(path, vals, models.KeyMaxPrice),
		}, true
	}
	return Chip{}, false
}

// ClearAllHref removes every filter-dimension param and all pagination
// params while preserving the non-filter params: free-text query, the
// explicit lat/lng point, bounds, and sort.
func ClearAllHref(path string, vals url.Values) string {
	next := clone(vals)
	for _, k := range models.FilterDimensionKeys {
		next.Del(k)
	}
	stripPagination(next)
	return encode(path, next)
}

func removeKeysHref(path string, vals url.Values, keys ...string) string {
	next := clone(vals)
	for _, k := range keys {
		next.Del(k)
	}
	stripPagination(next)
	return encode(path, next)
}

// removeSetValueHref removes one value from a CSV-set param, dropping the
// param entirely when it empties.
func removeSetValueHref(path string, vals url.Values, key, value string) string {
	next := clone(vals)
	var kept []string
	for _, v := range splitCSV(next.Get(key)) {
		if v != value {
			kept = append(kept, v)
		}
	}
	if len(kept) == 0 {
		next.Del(key)
	} else {
		next.Set(key, strings.Join(kept, ","))
	}
	stripPagination(next)
	return encode(path, next)
}

// Pagination is stripped from every chip target: the result set changes.
func stripPagination(vals url.Values) {
	for _, k := range models.PaginationKeys {
		vals.Del(k)
	}
}

func clone(vals url.Values) url.Values {
	next := url.Values{}
	for k, vs := range vals {
		next[k] = append([]string(nil), vs...)
	}
	return next
}

func encode(path string, vals url.Values) string {
	if len(vals) == 0 {
		return path
	}
	return path + "?" + vals.Encode()
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

func atoi(raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func titleize(v string) string {
	v = strings.ReplaceAll(v, "_", " ")
	if v == "" {
		return v
	}
	return strings.ToUpper(v[:1]) + v[1:]
}
