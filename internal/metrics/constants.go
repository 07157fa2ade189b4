package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameTablesBuilt       = "exp_tables_built_total"
	MetricNameTableCacheHits    = "exp_table_cache_hits_total"
	MetricNameTableCacheMisses  = "exp_table_cache_misses_total"
	MetricNameTableBuildSeconds = "exp_table_build_duration_seconds"
	MetricNameCatalogReloads    = "catalog_reloads_total"
	MetricNameCatalogStages     = "catalog_stages"
	MetricNameSettingsWrites    = "settings_writes_total"
	MetricNameCashableUpdates   = "cashable_updates_total"
	MetricNameRateLimited       = "http_rate_limited_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextTablesBuilt       = "Total number of ranked EXP tables computed"
	HelpTextTableCacheHits    = "Total number of EXP table cache hits"
	HelpTextTableCacheMisses  = "Total number of EXP table cache misses"
	HelpTextTableBuildSeconds = "Time spent computing and ranking one EXP table"
	HelpTextCatalogReloads    = "Total number of catalogue reload attempts"
	HelpTextCatalogStages     = "Number of stages in the active catalogue"
	HelpTextSettingsWrites    = "Total number of settings writes"
	HelpTextCashableUpdates   = "Total number of cashable quantity updates"
	HelpTextRateLimited       = "Total number of requests rejected by the rate limiter"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelResult  = "result"
	LabelBackend = "backend"
	LabelPrice   = "price"
)

// Label values
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// TableBuildBuckets covers a catalogue scan, which should stay well under 10ms
var TableBuildBuckets = []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgMetricsRecorded = "Metrics recorded for event"
)
