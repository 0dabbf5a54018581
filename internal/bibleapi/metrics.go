package bibleapi

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	fetchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bible_api_fetches_total",
		Help: "Bible API calls by operation and outcome.",
	}, []string{"operation", "outcome"})

	fetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bible_api_fetch_duration_seconds",
		Help:    "Bible API call latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
)
