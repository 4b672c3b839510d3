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
	MetricNameEventsPublished = "events_published_total"
)

// Gameplay metric names
const (
	MetricNamePlayersCreated = "players_created_total"
	MetricNameShotsFired     = "shots_fired_total"
	MetricNameEnemiesSpawned = "enemies_spawned_total"
	MetricNameItemsUsed      = "items_used_total"
	MetricNameLevelUps       = "level_ups_total"
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
	HelpTextEventsPublished = "Total number of events published"
)

// Gameplay metric help text
const (
	HelpTextPlayersCreated = "Total number of players created"
	HelpTextShotsFired     = "Total number of shots fired by weapon and outcome"
	HelpTextEnemiesSpawned = "Total number of enemies spawned by type"
	HelpTextItemsUsed      = "Total number of use-item attempts by item type and outcome"
	HelpTextLevelUps       = "Total number of player level ups"
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
	LabelWeapon  = "weapon"
	LabelOutcome = "outcome"
	LabelItem    = "item"
)

// Outcome label values
const (
	OutcomeHit     = "hit"
	OutcomeMiss    = "miss"
	OutcomeSuccess = "success"
	OutcomeEmpty   = "empty"
)

// PathUnmatched labels requests that matched no route, keeping path cardinality bounded
const PathUnmatched = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadDecodeFailed = "Event payload could not be decoded"
	LogMsgMetricsRecorded          = "Metrics recorded for event"
)
