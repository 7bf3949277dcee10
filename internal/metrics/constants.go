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

// Record metric names
const (
	MetricNameRecordsParsed       = "netitem_records_parsed_total"
	MetricNameParseErrors         = "netitem_parse_errors_total"
	MetricNamePayloadDecodeAbsent = "netitem_payload_decode_absent_total"
)

// Inventory metric names
const (
	MetricNameCacheHits    = "inventory_cache_hits_total"
	MetricNameCacheMisses  = "inventory_cache_misses_total"
	MetricNameSlotsSkipped = "inventory_slots_skipped_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"

	HelpTextRecordsParsed       = "Total number of slot records parsed, by record kind"
	HelpTextParseErrors         = "Total number of slot records rejected, by reason"
	HelpTextPayloadDecodeAbsent = "Total number of payload tokens that decoded to no item"

	HelpTextCacheHits    = "Total number of inventory snapshot cache hits"
	HelpTextCacheMisses  = "Total number of inventory snapshot cache misses"
	HelpTextSlotsSkipped = "Total number of malformed slots replaced by empty slots during lenient decoding"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelKind   = "kind"
	LabelReason = "reason"
)

// Parse error reasons
const (
	ReasonInvalidArgument = "invalid_argument"
	ReasonFormat          = "format"
	ReasonOther           = "other"
)

// PathUnmatched labels requests that matched no route.
const PathUnmatched = "unmatched"

// HTTPLatencyBuckets spans 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
