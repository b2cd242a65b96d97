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

// Planner Metrics
var (
	EventsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsProcessed,
			Help: HelpTextEventsProcessed,
		},
		[]string{LabelType},
	)

	StaleResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStaleResults,
			Help: HelpTextStaleResults,
		},
		[]string{LabelType},
	)

	ExpansionFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameExpansionFailures,
			Help: HelpTextExpansionFailures,
		},
		[]string{LabelReason},
	)

	ExpansionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameExpansionDuration,
			Help:    HelpTextExpansionDuration,
			Buckets: HTTPLatencyBuckets,
		},
	)

	CraftFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCraftFailures,
			Help: HelpTextCraftFailures,
		},
		[]string{LabelReason},
	)

	PersistenceFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePersistenceFailures,
			Help: HelpTextPersistenceFailures,
		},
		[]string{LabelTable, LabelOp},
	)

	QueueOverflows = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameQueueOverflows,
			Help: HelpTextQueueOverflows,
		},
	)

	FrameDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameFrameDuration,
			Help:    HelpTextFrameDuration,
			Buckets: FrameLatencyBuckets,
		},
	)

	InboxDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameInboxDepth,
			Help: HelpTextInboxDepth,
		},
	)

	WishListEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameWishListEntries,
			Help: HelpTextWishListEntries,
		},
		[]string{LabelStatus},
	)
)

// Crafting Metrics
var (
	SourceCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSourceCacheLookups,
			Help: HelpTextSourceCacheLookups,
		},
		[]string{LabelResult},
	)

	ItemsCrafted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemsCrafted,
			Help: HelpTextItemsCrafted,
		},
	)

	SearchesPerformed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSearchesPerformed,
			Help: HelpTextSearchesPerformed,
		},
	)
)
