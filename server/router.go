package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	daoredis "roomshare-server/dao/redis"
	"roomshare-server/logger"
	"roomshare-server/server/handlers"
)

type Router struct {
	listingHandler *handlers.ListingHandler
	nearbyHandler  *handlers.NearbyHandler
	messageHandler *handlers.MessageHandler
	bookingHandler *handlers.BookingHandler
	debugHandler   *handlers.DebugHandler
	sessions       *daoredis.SessionDAO
	limiter        *daoredis.RateLimiter
	log            logger.Logger
	router         *mux.Router
	debugRoutes    bool
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	listingHandler *handlers.ListingHandler,
	nearbyHandler *handlers.NearbyHandler,
	messageHandler *handlers.MessageHandler,
	bookingHandler *handlers.BookingHandler,
	debugHandler *handlers.DebugHandler,
	sessions *daoredis.SessionDAO,
	limiter *daoredis.RateLimiter,
	log logger.Logger,
	router *mux.Router,
	debugRoutes bool,
) *Router {
	return &Router{
		listingHandler: listingHandler,
		nearbyHandler:  nearbyHandler,
		messageHandler: messageHandler,
		bookingHandler: bookingHandler,
		debugHandler:   debugHandler,
		sessions:       sessions,
		limiter:        limiter,
		log:            log,
		router:         router,
		debugRoutes:    debugRoutes,
	}
}

func (r *Router) RegisterRoutes() {
	// Observability wraps the rate limiter so throttled requests still
	// show up in the access log and request metrics.
	r.router.Use(RequestIDMiddleware)
	r.router.Use(SessionMiddleware(r.sessions))
	r.router.Use(ObservabilityMiddleware(r.log))
	r.router.Use(RateLimitMiddleware(r.limiter, r.log))

	r.router.Handle("/metrics", promhttp.Handler()).Methods("GET")
	r.router.HandleFunc("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")

	v1 := r.router.PathPrefix("/v1").Subrouter()
	v1.Use(NoStoreMiddleware)

	v1.HandleFunc("/listings", r.listingHandler.Search).Methods("GET")
	v1.HandleFunc("/listings", r.listingHandler.Create).Methods("POST")
	v1.HandleFunc("/listings/count", r.listingHandler.Count).Methods("GET")
	v1.HandleFunc("/listings/{id}", r.listingHandler.Get).Methods("GET")
	v1.HandleFunc("/listings/{id}", r.listingHandler.Patch).Methods("PATCH")
	v1.HandleFunc("/listings/{id}", r.listingHandler.Delete).Methods("DELETE")

	v1.HandleFunc("/map-listings", r.listingHandler.MapListings).Methods("GET")

	v1.HandleFunc("/nearby", r.nearbyHandler.Nearby).Methods("POST")

	v1.HandleFunc("/conversations/{id}/messages", r.messageHandler.List).Methods("GET")
	v1.HandleFunc("/conversations/{id}/messages", r.messageHandler.Send).Methods("POST")

	v1.HandleFunc("/bookings", r.bookingHandler.Create).Methods("POST")
	v1.HandleFunc("/bookings/{id}/respond", r.bookingHandler.Respond).Methods("POST")
	v1.HandleFunc("/bookings/{id}/cancel", r.bookingHandler.Cancel).Methods("POST")

	if r.debugRoutes {
		v1.HandleFunc("/debug/geo-plot", r.debugHandler.GeoPlot).Methods("GET")
	}
}
