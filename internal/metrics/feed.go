package metrics

import "github.com/prometheus/client_golang/prometheus"

// Feed Prometheus metrics.
var (
	FeedRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "arxiv_feed",
			Name:      "requests_total",
			Help:      "Total number of feed requests",
		},
		[]string{"version", "status"},
	)

	FeedDocuments = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "arxiv_feed",
			Name:      "documents_per_feed",
			Help:      "Documents returned per feed response",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000, 2000},
		},
	)

	FeedCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "arxiv_feed",
			Name:      "cache_total",
			Help:      "Feed response cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)
)

var feedMetricsRegistered bool

// RegisterFeedMetrics registers the feed metrics. Must be called once from main.
func RegisterFeedMetrics() {
	if feedMetricsRegistered {
		return
	}
	prometheus.MustRegister(FeedRequestsTotal)
	prometheus.MustRegister(FeedDocuments)
	prometheus.MustRegister(FeedCacheTotal)
	feedMetricsRegistered = true
}
