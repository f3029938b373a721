package models

import "time"

// Listing is the full stored record, including fields that must never
// reach list or map responses (street address, zip).
type Listing struct {
	ID            string    `json:"id"`
	OwnerID       string    `json:"owner_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	RoomType      string    `json:"room_type"`
	LeaseDuration string    `json:"lease_duration"`
	PriceMonthly  int       `json:"price_monthly"`
	Street        string    `json:"street"`
	Zip           string    `json:"zip"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	Lat           float64   `json:"lat"`
	Lng           float64   `json:"lng"`
	Amenities     []string  `json:"amenities"`
	HouseRules    []string  `json:"house_rules"`
	Languages     []string  `json:"languages"`
	GenderPref    string    `json:"gender_preference"`
	HouseholdGend string    `json:"household_gender"`
	AvailableFrom string    `json:"available_from"` // YYYY-MM-DD
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ListingSummary is the public projection used by list and map views.
// Location precision stops at city/state and coordinates; street-level
// fields are deliberately absent from the type, not just omitted.
type ListingSummary struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	RoomType      string   `json:"room_type"`
	LeaseDuration string   `json:"lease_duration"`
	PriceMonthly  int      `json:"price_monthly"`
	City          string   `json:"city"`
	State         string   `json:"state"`
	Lat           float64  `json:"lat"`
	Lng           float64  `json:"lng"`
	Amenities     []string `json:"amenities"`
	AvailableFrom string   `json:"available_from"`
	IsNearMatch   bool     `json:"is_near_match,omitempty"`
}

// Summary strips a listing down to its public shape.
func (l Listing) Summary() ListingSummary {
	return ListingSummary{
		ID:            l.ID,
		Title:         l.Title,
		RoomType:      l.RoomType,
		LeaseDuration: l.LeaseDuration,
		PriceMonthly:  l.PriceMonthly,
		City:          l.City,
		State:         l.State,
		Lat:           l.Lat,
		Lng:           l.Lng,
		Amenities:     l.Amenities,
		AvailableFrom: l.AvailableFrom,
	}
}
