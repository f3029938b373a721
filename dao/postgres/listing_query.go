package postgres

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"roomshare-server/models"
)

// buildWhere translates filter params into a WHERE clause with positional
// args. Only active listings are ever searchable.
func buildWhere(f models.FilterParams) (string, []interface{}) {
	clauses := []string{"active = TRUE"}
	var args []interface{}

	arg := func(v interface{}) int {
		args = append(args, v)
		return len(args)
	}

	if b := f.Bounds; b != nil {
		clauses = append(clauses,
			fmt.Sprintf("lat BETWEEN $%d AND $%d", arg(b.MinLat), arg(b.MaxLat)))
		if b.MinLng > b.MaxLng {
			// Antimeridian wrap: the box covers both sides of 180.
			clauses = append(clauses,
				fmt.Sprintf("(lng >= $%d OR lng <= $%d)", arg(b.MinLng), arg(b.MaxLng)))
		} else {
			clauses = append(clauses,
				fmt.Sprintf("lng BETWEEN $%d AND $%d", arg(b.MinLng), arg(b.MaxLng)))
		}
	}

	if f.MinPrice != nil {
		clauses = append(clauses, fmt.Sprintf("price_monthly >= $%d", arg(*f.MinPrice)))
	}
	if f.MaxPrice != nil {
		clauses = append(clauses, fmt.Sprintf("price_monthly <= $%d", arg(*f.MaxPrice)))
	}

	if f.RoomType != "" {
		clauses = append(clauses, fmt.Sprintf("room_type = $%d", arg(f.RoomType)))
	}
	if f.LeaseDuration != "" {
		clauses = append(clauses, fmt.Sprintf("lease_duration = $%d", arg(f.LeaseDuration)))
	}
	if f.GenderPref != "" {
		clauses = append(clauses, fmt.Sprintf("gender_preference = $%d", arg(f.GenderPref)))
	}
	if f.HouseholdGender != "" {
		clauses = append(clauses, fmt.Sprintf("household_gender = $%d", arg(f.HouseholdGender)))
	}

	// A listing must offer every requested amenity and house rule, but any
	// shared language qualifies.
	if len(f.Amenities) > 0 {
		clauses = append(clauses, fmt.Sprintf("amenities @> $%d", arg(pq.Array(f.Amenities))))
	}
	if len(f.HouseRules) > 0 {
		clauses = append(clauses, fmt.Sprintf("house_rules @> $%d", arg(pq.Array(f.HouseRules))))
	}
	if len(f.Languages) > 0 {
		clauses = append(clauses, fmt.Sprintf("languages && $%d", arg(pq.Array(f.Languages))))
	}

	if f.MoveInDate != "" {
		clauses = append(clauses, fmt.Sprintf("available_from <= $%d", arg(f.MoveInDate)))
	}

	// Free text: AND semantics across terms, each term matched
	// case-insensitively against title, description, and city.
	for _, term := range strings.Fields(f.Query) {
		n := arg("%" + term + "%")
		clauses = append(clauses,
			fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d OR city ILIKE $%d)", n, n, n))
	}

	return "WHERE " + joinClauses(clauses, " AND "), args
}

func orderBy(sort models.SortOption) string {
	switch sort {
	case models.SortPriceAsc:
		return "price_monthly ASC, id ASC"
	case models.SortPriceDesc:
		return "price_monthly DESC, id DESC"
	default:
		return "created_at DESC, id DESC"
	}
}

func cursorColumn(sort models.SortOption) string {
	switch sort {
	case models.SortPriceAsc, models.SortPriceDesc:
		return "price_monthly"
	default:
		return "created_at"
	}
}

func sortValueOf(l models.Listing, sort models.SortOption) string {
	switch sort {
	case models.SortPriceAsc, models.SortPriceDesc:
		return fmt.Sprintf("%d", l.PriceMonthly)
	default:
		return l.CreatedAt.UTC().Format("2006-01-02T15:04:05.000000Z")
	}
}

// Cursor is a keyset-pagination position: the sort value and id of the
// last row of the previous page.
type Cursor struct {
	SortValue string
	ID        string
}

// Encode serializes the cursor into an opaque URL-safe token.
func (c Cursor) Encode() string {
	return base64.RawURLEncoding.EncodeToString([]byte(c.SortValue + "|" + c.ID))
}

// DecodeCursor parses a token produced by Encode. Malformed tokens are a
// validation error: a stale bookmark should get a clear 400, not a 500.
func DecodeCursor(token string) (*Cursor, error) {
	if token == "" {
		return nil, nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("malformed cursor")
	}
	parts := strings.SplitN(string(raw), "|", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, fmt.Errorf("malformed cursor")
	}
	return &Cursor{SortValue: parts[0], ID: parts[1]}, nil
}

func joinClauses(parts []string, sep string) string {
	return strings.Join(parts, sep)
}
