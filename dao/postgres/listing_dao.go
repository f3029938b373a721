package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"roomshare-server/apperr"
	"roomshare-server/models"
)

// ListingDAO handles listing persistence in Postgres.
type ListingDAO struct {
	db *sql.DB
}

// NewListingDAO initializes a ListingDAO over an open connection pool.
func NewListingDAO(db *sql.DB) *ListingDAO {
	return &ListingDAO{db: db}
}

const listingColumns = `id, owner_id, title, description, room_type, lease_duration,
	price_monthly, street, zip, city, state, lat, lng, amenities, house_rules,
	languages, gender_preference, household_gender, available_from, active,
	created_at, updated_at`

func scanListing(row interface{ Scan(...interface{}) error }) (models.Listing, error) {
	var l models.Listing
	err := row.Scan(
		&l.ID, &l.OwnerID, &l.Title, &l.Description, &l.RoomType, &l.LeaseDuration,
		&l.PriceMonthly, &l.Street, &l.Zip, &l.City, &l.State, &l.Lat, &l.Lng,
		pq.Array(&l.Amenities), pq.Array(&l.HouseRules), pq.Array(&l.Languages),
		&l.GenderPref, &l.HouseholdGend, &l.AvailableFrom, &l.Active,
		&l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

// GetByID returns a listing or a NOT_FOUND error.
func (dao *ListingDAO) GetByID(ctx context.Context, id string) (*models.Listing, error) {
	row := dao.db.QueryRowContext(ctx,
		fmt.Sprintf("SELECT %s FROM listings WHERE id = $1", listingColumns), id)
	l, err := scanListing(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.New(apperr.CodeNotFound, "Listing not found")
	}
	if err != nil {
		return nil, fmt.Errorf("get listing %s: %w", id, err)
	}
	return &l, nil
}

// CountByOwner returns the number of listings owned by a user, active or not.
func (dao *ListingDAO) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	var n int
	err := dao.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM listings WHERE owner_id = $1", ownerID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count listings for owner %s: %w", ownerID, err)
	}
	return n, nil
}

// Create inserts a new listing.
func (dao *ListingDAO) Create(ctx context.Context, l *models.Listing) error {
	now := time.Now().UTC()
	l.CreatedAt, l.UpdatedAt = now, now
	_, err := dao.db.ExecContext(ctx, `
		INSERT INTO listings (`+listingColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22)`,
		l.ID, l.OwnerID, l.Title, l.Description, l.RoomType, l.LeaseDuration,
		l.PriceMonthly, l.Street, l.Zip, l.City, l.State, l.Lat, l.Lng,
		pq.Array(l.Amenities), pq.Array(l.HouseRules), pq.Array(l.Languages),
		l.GenderPref, l.HouseholdGend, l.AvailableFrom, l.Active,
		l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert listing: %w", err)
	}
	return nil
}

// ListingPatch carries partial-update fields; nil means "leave unchanged".
type ListingPatch struct {
	Title         *string  `json:"title"`
	Description   *string  `json:"description"`
	RoomType      *string  `json:"room_type"`
	LeaseDuration *string  `json:"lease_duration"`
	PriceMonthly  *int     `json:"price_monthly"`
	Amenities     []string `json:"amenities"`
	HouseRules    []string `json:"house_rules"`
	Languages     []string `json:"languages"`
	AvailableFrom *string  `json:"available_from"`
	Active        *bool    `json:"active"`
}

// Update applies a patch to a listing identified by id.
func (dao *ListingDAO) Update(ctx context.Context, id string, patch ListingPatch) error {
	set := []string{"updated_at = NOW()"}
	args := []interface{}{}
	add := func(col string, v interface{}) {
		args = append(args, v)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.RoomType != nil {
		add("room_type", *patch.RoomType)
	}
	if patch.LeaseDuration != nil {
		add("lease_duration", *patch.LeaseDuration)
	}
	if patch.PriceMonthly != nil {
		add("price_monthly", *patch.PriceMonthly)
	}
	if patch.Amenities != nil {
		add("amenities", pq.Array(patch.Amenities))
	}
	if patch.HouseRules != nil {
		add("house_rules", pq.Array(patch.HouseRules))
	}
	if patch.Languages != nil {
		add("languages", pq.Array(patch.Languages))
	}
	if patch.AvailableFrom != nil {
		add("available_from", *patch.AvailableFrom)
	}
	if patch.Active != nil {
		add("active", *patch.Active)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE listings SET %s WHERE id = $%d",
		joinClauses(set, ", "), len(args))

	res, err := dao.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update listing %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.New(apperr.CodeNotFound, "Listing not found")
	}
	return nil
}

// Delete removes a listing permanently.
func (dao *ListingDAO) Delete(ctx context.Context, id string) error {
	res, err := dao.db.ExecContext(ctx, "DELETE FROM listings WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete listing %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.New(apperr.CodeNotFound, "Listing not found")
	}
	return nil
}

// Search runs a paginated filter query and returns the page plus the total
// match count.
func (dao *ListingDAO) Search(ctx context.Context, f models.FilterParams, sort models.SortOption, page, limit int) ([]models.Listing, int, error) {
	where, args := buildWhere(f)

	var total int
	countQuery := "SELECT COUNT(*) FROM listings " + where
	if err := dao.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count listings: %w", err)
	}

	offset := (page - 1) * limit
	query := fmt.Sprintf("SELECT %s FROM listings %s ORDER BY %s LIMIT %d OFFSET %d",
		listingColumns, where, orderBy(sort), limit, offset)

	listings, err := dao.queryListings(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return listings, total, nil
}

// SearchAfterCursor runs a keyset-paginated filter query. It fetches one
// row beyond the limit to decide whether a next cursor exists.
func (dao *ListingDAO) SearchAfterCursor(ctx context.Context, f models.FilterParams, sort models.SortOption, cursor *Cursor, limit int) ([]models.Listing, *Cursor, error) {
	where, args := buildWhere(f)

	if cursor != nil {
		// The comparator follows the sort direction: ascending orders
		// advance past the cursor with >, descending ones with <.
		cmp := "<"
		if sort == models.SortPriceAsc {
			cmp = ">"
		}
		args = append(args, cursor.SortValue, cursor.ID)
		where += fmt.Sprintf(" AND (%s, id) %s ($%d, $%d)",
			cursorColumn(sort), cmp, len(args)-1, len(args))
	}

	query := fmt.Sprintf("SELECT %s FROM listings %s ORDER BY %s LIMIT %d",
		listingColumns, where, orderBy(sort), limit+1)

	listings, err := dao.queryListings(ctx, query, args...)
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(listings) > limit {
		listings = listings[:limit]
		last := listings[len(listings)-1]
		next = &Cursor{SortValue: sortValueOf(last, sort), ID: last.ID}
	}
	return listings, next, nil
}

// Count returns the number of listings matching the filter set.
func (dao *ListingDAO) Count(ctx context.Context, f models.FilterParams) (int, error) {
	where, args := buildWhere(f)
	var n int
	if err := dao.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM listings "+where, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count listings: %w", err)
	}
	return n, nil
}

// SearchWithinBounds returns all matching listings inside the (already
// clamped) viewport, capped. Used by the map endpoint; no pagination.
func (dao *ListingDAO) SearchWithinBounds(ctx context.Context, f models.FilterParams, cap int) ([]models.Listing, error) {
	where, args := buildWhere(f)
	query := fmt.Sprintf("SELECT %s FROM listings %s ORDER BY created_at DESC, id DESC LIMIT %d",
		listingColumns, where, cap)
	return dao.queryListings(ctx, query, args...)
}

func (dao *ListingDAO) queryListings(ctx context.Context, query string, args ...interface{}) ([]models.Listing, error) {
	rows, err := dao.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query listings: %w", err)
	}
	defer rows.Close()

	var out []models.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("scan listing: %w", err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate listings: %w", err)
	}
	return out, nil
}
