package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
	MetricNameSecurityEvents       = "http_security_events_total"
)

// Reforge metric names
const (
	MetricNameReforgeAttempts   = "reforge_attempts_total"
	MetricNameReforgeRefusals   = "reforge_refusals_total"
	MetricNameCoinsSpent        = "reforge_coins_spent_total"
	MetricNameMaterialsConsumed = "reforge_materials_consumed_total"
	MetricNameMaterialsRefunded = "reforge_materials_refunded_total"
	MetricNameItemsDestroyed    = "reforge_items_destroyed_total"
	MetricNameRefundFailures    = "reforge_coin_refund_failures_total"
	MetricNameCoinsUnrefunded   = "reforge_coins_unrefunded_total"
	MetricNameConfigReloads     = "reforge_config_reloads_total"
	MetricNameLevelStoreErrors  = "reforge_level_store_errors_total"
	MetricNameConfigMaxLevel    = "reforge_config_max_level"
	MetricNameConfiguredLevels  = "reforge_config_levels"
	MetricNameAllowedPatterns   = "reforge_config_patterns"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextSecurityEvents       = "Total number of refused or suspicious client requests by event"
)

// Reforge metric help text
const (
	HelpTextReforgeAttempts   = "Total number of resolved reforge attempts by outcome"
	HelpTextReforgeRefusals   = "Total number of reforge requests refused before the roll"
	HelpTextCoinsSpent        = "Total coins kept by the reforge engine"
	HelpTextMaterialsConsumed = "Total material units consumed by reforge attempts"
	HelpTextMaterialsRefunded = "Total material units returned after destructive failures"
	HelpTextItemsDestroyed    = "Total number of items destroyed by failed reforges"
	HelpTextRefundFailures    = "Total number of refused attempts whose coin refund failed"
	HelpTextCoinsUnrefunded   = "Total coins withdrawn for refused attempts that could not be refunded"
	HelpTextConfigReloads     = "Total number of progression config reloads by status"
	HelpTextLevelStoreErrors  = "Total number of level store persistence errors"
	HelpTextConfigMaxLevel    = "Maximum reforge level of the live progression table"
	HelpTextConfiguredLevels  = "Number of levels defined in the live progression table"
	HelpTextAllowedPatterns   = "Number of eligibility patterns in the live progression table by list"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelOutcome   = "outcome"
	LabelReason    = "reason"
	LabelCategory  = "category"
	LabelOperation = "operation"
	LabelList      = "list"
	LabelEvent     = "event"
)

// Security event label values
const (
	SecurityEventAuthFailure    = "auth_failure"
	SecurityEventRateLimited    = "rate_limited"
	SecurityEventAttemptLimited = "attempt_limited"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
