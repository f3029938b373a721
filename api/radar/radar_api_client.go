package radar

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"roomshare-server/api"
	"roomshare-server/apperr"
	"roomshare-server/models"
)

// RadarApiClient embeds the common HTTPClient.
type RadarApiClient struct {
	*api.HTTPClient
	secretKey string
}

// NewRadarApiClient creates a new instance of RadarApiClient.
func NewRadarApiClient(httpClient *api.HTTPClient) *RadarApiClient {
	return &RadarApiClient{HTTPClient: httpClient}
}

func (c *RadarApiClient) SetCredentials(secretKey string) {
	c.secretKey = secretKey
}

type searchPlacesResponse struct {
	Places []struct {
		Name       string   `json:"name"`
		Categories []string `json:"categories"`
		Location   struct {
			Coordinates [2]float64 `json:"coordinates"` // [lng, lat]
		} `json:"location"`
		DistanceM float64 `json:"distance"`
	} `json:"places"`
}

// SearchNearby queries Radar's places search. Upstream failures come back
// as coded local errors; the upstream body and the credential never reach
// the caller.
func (c *RadarApiClient) SearchNearby(ctx context.Context, lat, lng float64, radiusMeters int, query string) ([]models.Place, error) {
	q := url.Values{}
	q.Set("near", fmt.Sprintf("%f,%f", lat, lng))
	q.Set("radius", strconv.Itoa(radiusMeters))
	if query != "" {
		q.Set("query", query)
	}

	headers := map[string]string{"Authorization": c.secretKey}

	var response searchPlacesResponse
	err := c.Request(ctx, "GET", "/search/places?"+q.Encode(), headers, nil, &response)
	if err != nil {
		return nil, mapUpstreamError(err)
	}

	places := make([]models.Place, 0, len(response.Places))
	for _, p := range response.Places {
		places = append(places, models.Place{
			Name:       p.Name,
			Categories: p.Categories,
			Lat:        p.Location.Coordinates[1],
			Lng:        p.Location.Coordinates[0],
			DistanceM:  p.DistanceM,
		})
	}
	return places, nil
}

func mapUpstreamError(err error) error {
	var se *api.StatusError
	if !errors.As(err, &se) {
		return apperr.Wrap(apperr.CodeUpstream, "Nearby search is unavailable", err)
	}
	switch {
	case se.StatusCode == 400:
		return apperr.New(apperr.CodeValidation, "Nearby search rejected the request")
	case se.StatusCode == 401 || se.StatusCode == 403:
		return apperr.New(apperr.CodeUpstream, "Nearby search provider rejected the request")
	case se.StatusCode == 429:
		return apperr.New(apperr.CodeRateLimited, "Nearby search is temporarily rate limited")
	default:
		return apperr.New(apperr.CodeUpstream, "Nearby search is unavailable")
	}
}
