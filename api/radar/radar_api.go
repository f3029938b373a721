package radar

import (
	"context"

	"roomshare-server/models"
)

// PlacesAPI defines the interface for the Radar places search upstream.
type PlacesAPI interface {
	SearchNearby(ctx context.Context, lat, lng float64, radiusMeters int, query string) ([]models.Place, error)
	SetCredentials(secretKey string)
}
