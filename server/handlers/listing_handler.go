package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"roomshare-server/apperr"
	"roomshare-server/config"
	daopg "roomshare-server/dao/postgres"
	"roomshare-server/logger"
	"roomshare-server/models"
	services "roomshare-server/service"
)

type ListingHandler struct {
	search  *services.ListingSearchService
	listing *services.ListingService
	cfg     config.SearchConfig
	log     logger.Logger
}

func NewListingHandler(
	search *services.ListingSearchService,
	listing *services.ListingService,
	cfg config.SearchConfig,
	log logger.Logger,
) *ListingHandler {
	return &ListingHandler{search: search, listing: listing, cfg: cfg, log: log}
}

// Search handles GET /v1/listings.
func (h *ListingHandler) Search(w http.ResponseWriter, r *http.Request) {
	parsed, err := models.ParseSearchParams(r.URL.Query(), h.cfg.MaxQueryLength)
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := h.search.Search(r.Context(), parsed)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// MapListings handles GET /v1/map-listings. Bounds are mandatory here;
// oversized spans are clamped rather than rejected.
func (h *ListingHandler) MapListings(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()
	if vals.Get(models.KeyMinLat) == "" && vals.Get(models.KeyMaxLat) == "" &&
		vals.Get(models.KeyMinLng) == "" && vals.Get(models.KeyMaxLng) == "" {
		writeError(w, apperr.Validation("bounds are required for map search"))
		return
	}

	parsed, err := models.ParseSearchParams(vals, h.cfg.MaxQueryLength)
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := h.search.MapSearch(r.Context(), parsed.Filters)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Count handles GET /v1/listings/count, the live count behind the filter
// panel.
func (h *ListingHandler) Count(w http.ResponseWriter, r *http.Request) {
	parsed, err := models.ParseSearchParams(r.URL.Query(), h.cfg.MaxQueryLength)
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := h.search.Count(r.Context(), parsed)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Get handles GET /v1/listings/{id}.
func (h *ListingHandler) Get(w http.ResponseWriter, r *http.Request) {
	viewerID, _ := UserIDFrom(r.Context())
	l, err := h.listing.Get(r.Context(), mux.Vars(r)["id"], viewerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

// Create handles POST /v1/listings.
func (h *ListingHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var body models.Listing
	if err := decodeBody(r, &body); err != nil {
		writeError(w, err)
		return
	}

	created, err := h.listing.Create(r.Context(), userID, &body)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// Patch handles PATCH /v1/listings/{id}. Ownership is checked against
// the id in the URL; any id in the body is ignored.
func (h *ListingHandler) Patch(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var patch daopg.ListingPatch
	if err := decodeBody(r, &patch); err != nil {
		writeError(w, err)
		return
	}

	updated, err := h.listing.Patch(r.Context(), mux.Vars(r)["id"], userID, patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /v1/listings/{id}.
func (h *ListingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := h.listing.Delete(r.Context(), mux.Vars(r)["id"], userID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
