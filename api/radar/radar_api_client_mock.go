package radar

import (
	"context"

	"roomshare-server/models"
)

// RadarApiClientMock serves canned places for dev environments without a
// Radar key.
type RadarApiClientMock struct{}

// NewRadarApiClientMock creates a new instance of RadarApiClientMock.
func NewRadarApiClientMock() *RadarApiClientMock {
	return &RadarApiClientMock{}
}

func (c *RadarApiClientMock) SetCredentials(secretKey string) {}

func (c *RadarApiClientMock) SearchNearby(ctx context.Context, lat, lng float64, radiusMeters int, query string) ([]models.Place, error) {
	return []models.Place{
		{Name: "Corner Grocery", Categories: []string{"shopping-food"}, Lat: lat + 0.001, Lng: lng + 0.001, DistanceM: 140},
		{Name: "Mission Gym", Categories: []string{"fitness"}, Lat: lat - 0.002, Lng: lng + 0.001, DistanceM: 260},
		{Name: "16th St Station", Categories: []string{"transit"}, Lat: lat + 0.003, Lng: lng - 0.002, DistanceM: 410},
	}, nil
}
