package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"roomshare-server/apperr"
	"roomshare-server/models"
)

// BookingDAO handles booking requests.
type BookingDAO struct {
	db *sql.DB
}

func NewBookingDAO(db *sql.DB) *BookingDAO {
	return &BookingDAO{db: db}
}

// Insert stores a new booking request.
func (dao *BookingDAO) Insert(ctx context.Context, b *models.Booking) error {
	now := time.Now().UTC()
	b.CreatedAt, b.UpdatedAt = now, now
	_, err := dao.db.ExecContext(ctx, `
		INSERT INTO bookings (id, listing_id, renter_id, move_in_date, note, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		b.ID, b.ListingID, b.RenterID, b.MoveInDate, b.Note, b.Status, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

// GetByID returns a booking or a NOT_FOUND error.
func (dao *BookingDAO) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var b models.Booking
	err := dao.db.QueryRowContext(ctx, `
		SELECT id, listing_id, renter_id, move_in_date, note, status, created_at, updated_at
		FROM bookings WHERE id = $1`, id).
		Scan(&b.ID, &b.ListingID, &b.RenterID, &b.MoveInDate, &b.Note, &b.Status, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.New(apperr.CodeNotFound, "Booking not found")
	}
	if err != nil {
		return nil, fmt.Errorf("get booking %s: %w", id, err)
	}
	return &b, nil
}

// UpdateStatus moves a booking into a new lifecycle state.
func (dao *BookingDAO) UpdateStatus(ctx context.Context, id string, status models.BookingStatus) error {
	res, err := dao.db.ExecContext(ctx,
		"UPDATE bookings SET status = $1, updated_at = NOW() WHERE id = $2", status, id)
	if err != nil {
		return fmt.Errorf("update booking %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.New(apperr.CodeNotFound, "Booking not found")
	}
	return nil
}

// CountActiveForListing returns the number of pending or accepted bookings
// on a listing. A non-zero count blocks listing deletion.
func (dao *BookingDAO) CountActiveForListing(ctx context.Context, listingID string) (int, error) {
	var n int
	err := dao.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM bookings
		WHERE listing_id = $1 AND status IN ('pending', 'accepted')`, listingID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count active bookings: %w", err)
	}
	return n, nil
}
