package models

import "time"

// BookingStatus is the lifecycle state of a booking request.
type BookingStatus string

const (
	BookingPending  BookingStatus = "pending"
	BookingAccepted BookingStatus = "accepted"
	BookingDeclined BookingStatus = "declined"
	BookingCanceled BookingStatus = "canceled"
)

// IsActive reports whether the booking still blocks listing deletion.
func (s BookingStatus) IsActive() bool {
	return s == BookingPending || s == BookingAccepted
}

// Booking is a renter's request to move into a listing.
type Booking struct {
	ID         string        `json:"id"`
	ListingID  string        `json:"listing_id"`
	RenterID   string        `json:"renter_id"`
	MoveInDate string        `json:"move_in_date"` // YYYY-MM-DD
	Note       string        `json:"note"`
	Status     BookingStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}
