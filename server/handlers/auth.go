package handlers

import (
	"context"
	"net/http"

	"roomshare-server/apperr"
)

type contextKey string

const userIDKey contextKey = "userID"

// WithUserID stamps the authenticated user onto the request context.
// Called by the session middleware.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFrom returns the authenticated user id, if any.
func UserIDFrom(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

// requireUser extracts the authenticated user or writes a 401.
func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := UserIDFrom(r.Context())
	if !ok {
		writeError(w, apperr.New(apperr.CodeUnauthorized, "Unauthorized"))
		return "", false
	}
	return id, true
}
