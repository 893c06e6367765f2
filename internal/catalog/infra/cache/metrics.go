package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FeaturedHits counts snapshot reads served from the cache, by backend.
	FeaturedHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_featured_cache_hits_total",
			Help: "Total number of featured products cache hits",
		},
		[]string{"backend"}, // "redis", "memory"
	)

	FeaturedMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_featured_cache_misses_total",
			Help: "Total number of featured products cache misses",
		},
		[]string{"backend"},
	)

	FeaturedErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_featured_cache_errors_total",
			Help: "Total number of featured products cache operation errors",
		},
		[]string{"backend", "operation"}, // "get", "set", "delete"
	)
)
