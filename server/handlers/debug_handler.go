package handlers

import (
	"net/http"

	"roomshare-server/config"
	"roomshare-server/logger"
	"roomshare-server/models"
	services "roomshare-server/service"
	"roomshare-server/util"
)

// DebugHandler serves internal tooling endpoints. Not mounted in
// production configurations.
type DebugHandler struct {
	search *services.ListingSearchService
	cfg    config.SearchConfig
	log    logger.Logger
}

func NewDebugHandler(search *services.ListingSearchService, cfg config.SearchConfig, log logger.Logger) *DebugHandler {
	return &DebugHandler{search: search, cfg: cfg, log: log}
}

// GeoPlot handles GET /v1/debug/geo-plot. Renders the map search result
// for the given bounds as an HTML geo scatter.
func (h *DebugHandler) GeoPlot(w http.ResponseWriter, r *http.Request) {
	parsed, err := models.ParseSearchParams(r.URL.Query(), h.cfg.MaxQueryLength)
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := h.search.MapSearch(r.Context(), parsed.Filters)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := util.RenderListingsPlot(w, result.Listings, result.Bounds); err != nil {
		h.log.Error("geo plot render failed", map[string]interface{}{"error": err.Error()})
	}
}
