package handlers

import (
	"net/http"

	"roomshare-server/api/radar"
	"roomshare-server/apperr"
	"roomshare-server/config"
	"roomshare-server/geo"
	"roomshare-server/logger"
	"roomshare-server/models"
)

// allowedRadii are the only accepted nearby-search radii, in meters.
var allowedRadii = []int{250, 500, 1000, 2500, 5000}

type nearbyRequest struct {
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	RadiusMeters int     `json:"radius_meters"`
	Query        string  `json:"query"`
}

// NearbyHandler proxies place searches to the Radar API. The feature is
// optional: without a configured secret key it answers 503 instead of
// failing at startup.
type NearbyHandler struct {
	placesAPI radar.PlacesAPI
	cfg       config.RadarConfig
	searchCfg config.SearchConfig
	log       logger.Logger
}

func NewNearbyHandler(placesAPI radar.PlacesAPI, cfg config.RadarConfig, searchCfg config.SearchConfig, log logger.Logger) *NearbyHandler {
	return &NearbyHandler{placesAPI: placesAPI, cfg: cfg, searchCfg: searchCfg, log: log}
}

// Nearby handles POST /v1/nearby.
func (h *NearbyHandler) Nearby(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}

	if h.cfg.SecretKey == "" {
		writeError(w, apperr.New(apperr.CodeUnavailable, "Nearby search is not configured"))
		return
	}

	var req nearbyRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := geo.ValidatePoint(req.Lat, req.Lng); err != nil {
		writeError(w, err)
		return
	}
	if !radiusAllowed(req.RadiusMeters) {
		writeError(w, apperr.Validation("radius_meters must be one of 250, 500, 1000, 2500, 5000"))
		return
	}
	if len(req.Query) > h.searchCfg.MaxQueryLength {
		writeError(w, apperr.Validation("query too long"))
		return
	}

	places, err := h.placesAPI.SearchNearby(r.Context(), req.Lat, req.Lng, req.RadiusMeters, req.Query)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.NearbyResult{
		Places: places,
		Meta:   models.MapMeta{Count: len(places), Cached: false},
	})
}

func radiusAllowed(radius int) bool {
	for _, r := range allowedRadii {
		if r == radius {
			return true
		}
	}
	return false
}
