package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ChatRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_requests_total",
			Help: "Total number of chat requests by outcome",
		},
		[]string{"status"},
	)

	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chat_answer_cache_hits_total",
			Help: "Total number of answer cache hits",
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chat_answer_cache_misses_total",
			Help: "Total number of answer cache misses",
		},
	)

	RateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chat_rate_limited_total",
			Help: "Total number of requests rejected by the throttle",
		},
	)

	AnswerDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "chat_answer_duration_seconds",
			Help: "Duration of answer computation in seconds",
		},
	)
)
