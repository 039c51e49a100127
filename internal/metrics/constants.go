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
	MetricNameDropAttempts      = "drop_attempts_total"
	MetricNameDropsIssued       = "drops_issued_total"
	MetricNameEquipOperations   = "equip_operations_total"
	MetricNameTradesSettled     = "trades_settled_total"
	MetricNameReactionsConsumed = "reactions_consumed_total"
	MetricNameExperienceGranted = "experience_granted_total"
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
	HelpTextDropAttempts      = "Total number of drop attempts by outcome"
	HelpTextDropsIssued       = "Total number of drops issued by rarity"
	HelpTextEquipOperations   = "Total number of equip and unequip operations"
	HelpTextTradesSettled     = "Total number of trade settlements by outcome"
	HelpTextReactionsConsumed = "Total number of reaction drops consumed"
	HelpTextExperienceGranted = "Total experience credited to post authors"
)

// ============================================================================
// Label Names and Values
// ============================================================================

const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelOutcome = "outcome"
	LabelRarity  = "rarity"
	LabelSlot    = "slot"
)

// Drop attempt outcomes
const (
	OutcomeBlocked  = "blocked"
	OutcomeLostFlip = "lost_flip"
	OutcomeNoItems  = "no_items"
	OutcomeLostRace = "lost_race"
	OutcomeIssued   = "issued"
)

// Trade settlement outcomes
const (
	OutcomeAccepted = "accepted"
	OutcomeDeclined = "declined"
	OutcomeConflict = "conflict"
)

// Equip operation types
const (
	OperationEquip   = "equip"
	OperationUnequip = "unequip"
)
