package server

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	daoredis "roomshare-server/dao/redis"
	"roomshare-server/logger"
	"roomshare-server/metrics"
	"roomshare-server/server/handlers"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// RequestIDMiddleware stamps x-request-id on every response, success and
// error paths alike, reusing the caller's id when one was sent.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("x-request-id")
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set("x-request-id", id)
		next.ServeHTTP(w, r)
	})
}

// NoStoreMiddleware blocks CDN and browser caching of personalized
// responses.
func NoStoreMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "private, no-store")
		next.ServeHTTP(w, r)
	})
}

// ObservabilityMiddleware records structured access logs and Prometheus
// request metrics per route.
func ObservabilityMiddleware(log logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			route := routeTemplate(r)
			elapsed := time.Since(start)
			metrics.RequestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(rec.status)).Inc()
			metrics.RequestDuration.WithLabelValues(route).Observe(elapsed.Seconds())

			log.Info("request", map[string]interface{}{
				"route":      route,
				"method":     r.Method,
				"status":     rec.status,
				"duration":   elapsed.String(),
				"request_id": w.Header().Get("x-request-id"),
			})
		})
	}
}

func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tmpl, err := route.GetPathTemplate(); err == nil {
			return tmpl
		}
	}
	return r.URL.Path
}

// SessionMiddleware resolves the bearer token into a user id on the
// request context. Requests without a token pass through unauthenticated;
// each handler decides whether auth is required.
func SessionMiddleware(sessions *daoredis.SessionDAO) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			session, err := sessions.GetByToken(r.Context(), token)
			if err != nil {
				// Invalid token is treated the same as no token.
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(handlers.WithUserID(r.Context(), session.UserID)))
		})
	}
}

func bearerToken(r *http.Request) string {
	const prefix = "Bearer "
	auth := r.Header.Get("Authorization")
	if len(auth) > len(prefix) && auth[:len(prefix)] == prefix {
		return auth[len(prefix):]
	}
	return ""
}

// RateLimitMiddleware rejects callers over the per-window request budget
// with 429 and a Retry-After hint. Authenticated callers are keyed by
// user id, anonymous ones by remote address.
func RateLimitMiddleware(limiter *daoredis.RateLimiter, log logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller, ok := handlers.UserIDFrom(r.Context())
			if !ok {
				caller = r.RemoteAddr
			}

			allowed, retryAfter, err := limiter.Allow(r.Context(), caller)
			if err != nil {
				// Rate limiter outage fails open; search must not go down
				// with Redis.
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				metrics.RateLimited.Inc()
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				fmt.Fprint(w, `{"error":"Too many requests"}`)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
