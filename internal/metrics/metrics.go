package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Record Metrics
var (
	RecordsParsed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRecordsParsed,
			Help: HelpTextRecordsParsed,
		},
		[]string{LabelKind},
	)

	ParseErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameParseErrors,
			Help: HelpTextParseErrors,
		},
		[]string{LabelReason},
	)

	PayloadDecodeAbsent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePayloadDecodeAbsent,
			Help: HelpTextPayloadDecodeAbsent,
		},
	)
)

// Inventory Metrics
var (
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCacheHits,
			Help: HelpTextCacheHits,
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCacheMisses,
			Help: HelpTextCacheMisses,
		},
	)

	SlotsSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSlotsSkipped,
			Help: HelpTextSlotsSkipped,
		},
	)
)
