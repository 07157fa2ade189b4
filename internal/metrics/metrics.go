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

	RateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRateLimited,
			Help: HelpTextRateLimited,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	TablesBuilt = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTablesBuilt,
			Help: HelpTextTablesBuilt,
		},
	)

	TableCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTableCacheHits,
			Help: HelpTextTableCacheHits,
		},
	)

	TableCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTableCacheMisses,
			Help: HelpTextTableCacheMisses,
		},
	)

	TableBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameTableBuildSeconds,
			Help:    HelpTextTableBuildSeconds,
			Buckets: TableBuildBuckets,
		},
	)

	CatalogReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCatalogReloads,
			Help: HelpTextCatalogReloads,
		},
		[]string{LabelResult},
	)

	CatalogStages = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameCatalogStages,
			Help: HelpTextCatalogStages,
		},
	)

	SettingsWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSettingsWrites,
			Help: HelpTextSettingsWrites,
		},
		[]string{LabelBackend},
	)

	CashableUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCashableUpdates,
			Help: HelpTextCashableUpdates,
		},
		[]string{LabelPrice},
	)
)
