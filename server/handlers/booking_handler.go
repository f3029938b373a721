package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"roomshare-server/apperr"
	"roomshare-server/logger"
	services "roomshare-server/service"
)

type bookingRequest struct {
	ListingID  string `json:"listing_id"`
	MoveInDate string `json:"move_in_date"`
	Note       string `json:"note"`
}

type bookingRespondRequest struct {
	Action string `json:"action"` // accept or decline
}

type BookingHandler struct {
	bookings *services.BookingService
	log      logger.Logger
}

func NewBookingHandler(bookings *services.BookingService, log logger.Logger) *BookingHandler {
	return &BookingHandler{bookings: bookings, log: log}
}

// Create handles POST /v1/bookings.
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req bookingRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.ListingID == "" {
		writeError(w, apperr.Validation("listing_id is required"))
		return
	}

	b, err := h.bookings.Request(r.Context(), userID, req.ListingID, req.MoveInDate, req.Note)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

// Respond handles POST /v1/bookings/{id}/respond, owner-only.
func (h *BookingHandler) Respond(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req bookingRespondRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Action != "accept" && req.Action != "decline" {
		writeError(w, apperr.Validation("action must be accept or decline"))
		return
	}

	b, err := h.bookings.Respond(r.Context(), mux.Vars(r)["id"], userID, req.Action == "accept")
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

// Cancel handles POST /v1/bookings/{id}/cancel, renter-only.
func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	b, err := h.bookings.Cancel(r.Context(), mux.Vars(r)["id"], userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}
