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

// Planner metric names
const (
	MetricNameEventsProcessed     = "planner_events_processed_total"
	MetricNameStaleResults        = "planner_stale_results_total"
	MetricNameExpansionFailures   = "planner_expansion_failures_total"
	MetricNameExpansionDuration   = "planner_expansion_duration_seconds"
	MetricNameCraftFailures       = "planner_craft_failures_total"
	MetricNamePersistenceFailures = "planner_persistence_failures_total"
	MetricNameQueueOverflows      = "planner_worker_queue_overflows_total"
	MetricNameFrameDuration       = "planner_frame_duration_seconds"
	MetricNameInboxDepth          = "planner_inbox_depth"
	MetricNameWishListEntries     = "planner_wish_list_entries"
)

// Crafting metric names
const (
	MetricNameSourceCacheLookups = "crafting_source_cache_lookups_total"
	MetricNameItemsCrafted       = "items_crafted_total"
	MetricNameSearchesPerformed  = "searches_performed_total"
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

// Planner metric help text
const (
	HelpTextEventsProcessed     = "Total number of inbox events processed by the planner"
	HelpTextStaleResults        = "Total number of background results dropped because their target changed"
	HelpTextExpansionFailures   = "Total number of wish-list expansions that failed"
	HelpTextExpansionDuration   = "Time spent resolving one wish-list entry in seconds"
	HelpTextCraftFailures       = "Total number of craft decrements that failed"
	HelpTextPersistenceFailures = "Total number of user state writes that failed"
	HelpTextQueueOverflows      = "Total number of jobs submitted while the worker queue was full"
	HelpTextFrameDuration       = "Time spent draining the inbox in one frame in seconds"
	HelpTextInboxDepth          = "Number of events waiting in the planner inbox"
	HelpTextWishListEntries     = "Number of wish-list entries by status"
)

// Crafting metric help text
const (
	HelpTextSourceCacheLookups = "Total number of source cache lookups by result"
	HelpTextItemsCrafted       = "Total number of wish-list units marked as crafted"
	HelpTextSearchesPerformed  = "Total number of item searches requested"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelReason = "reason"
	LabelTable  = "table"
	LabelOp     = "op"
	LabelResult = "result"
)

// Label values
const (
	ResultHit  = "hit"
	ResultMiss = "miss"

	ReasonCyclicRecipe = "cyclic_recipe"
	ReasonUnavailable  = "unavailable"
	ReasonOverflow     = "overflow"
	ReasonOther        = "other"

	PathUnmatched = "unmatched"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// FrameLatencyBuckets covers a frame from 10µs up to a badly stalled 100ms
var FrameLatencyBuckets = []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadUndecodable = "Event payload could not be decoded for metrics"
)
