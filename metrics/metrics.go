// Package metrics registers the Prometheus instruments for the HTTP
// surface. Everything is registered once at init via promauto and
// exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "roomshare_http_requests_total",
		Help: "HTTP requests by route, method and status code.",
	}, []string{"route", "method", "status"})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "roomshare_http_request_duration_seconds",
		Help:    "HTTP request latency by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	SearchQueries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "roomshare_search_queries_total",
		Help: "Listing search queries by shape (list, map, count).",
	}, []string{"shape"})

	NearMatchExpansions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "roomshare_near_match_expansions_total",
		Help: "Near-match expansions by dimension (price, date).",
	}, []string{"dimension"})

	MapCacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "roomshare_map_cache_requests_total",
		Help: "Map cache lookups by outcome (hit, miss).",
	}, []string{"outcome"})

	RateLimited = promauto.NewCounter(prometheus.CounterOpts{
		Name: "roomshare_rate_limited_total",
		Help: "Requests rejected by the rate limiter.",
	})
)
