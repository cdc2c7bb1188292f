package syncer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	fetchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "feedmirror_fetches_total",
		Help: "The total number of fetch results by outcome",
	}, []string{"status"})

	refreshesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "feedmirror_refreshes_total",
		Help: "The total number of refresh requests",
	})

	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "feedmirror_cache_hits_total",
		Help: "The number of fetches served from the local cache",
	})

	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "feedmirror_cache_misses_total",
		Help: "The number of fetches that had to go to the source",
	})

	remoteCalls = promauto.NewCounter(prometheus.CounterOpts{
		Name: "feedmirror_remote_calls_total",
		Help: "The total number of requests made to the source",
	})
)
