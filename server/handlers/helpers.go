package handlers

import (
	"encoding/json"
	"net/http"

	"roomshare-server/apperr"
)

// errorResponse is the stable wire shape for all error responses.
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

// writeError maps an error onto the JSON error shape. apperr.As folds
// unknown errors into a generic internal error, so raw store or upstream
// messages never reach the client.
func writeError(w http.ResponseWriter, err error) {
	ae := apperr.As(err)
	resp := errorResponse{Error: ae.Message}
	if ae.Code == apperr.CodeValidation {
		resp.Details = ae.Details
	}
	writeJSON(w, ae.HTTPStatus(), resp)
}

// decodeBody parses a JSON request body into dst with a uniform error.
func decodeBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.Validation("Invalid JSON body")
	}
	return nil
}
