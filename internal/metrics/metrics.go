package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPLatencyBuckets covers the expected latency range of the engine's
// short transactional requests.
var HTTPLatencyBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5}

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
	DropAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDropAttempts,
			Help: HelpTextDropAttempts,
		},
		[]string{LabelOutcome},
	)

	DropsIssued = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDropsIssued,
			Help: HelpTextDropsIssued,
		},
		[]string{LabelRarity},
	)

	EquipOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEquipOperations,
			Help: HelpTextEquipOperations,
		},
		[]string{LabelType, LabelSlot},
	)

	TradesSettled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTradesSettled,
			Help: HelpTextTradesSettled,
		},
		[]string{LabelOutcome},
	)

	ReactionsConsumed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameReactionsConsumed,
			Help: HelpTextReactionsConsumed,
		},
	)

	ExperienceGranted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameExperienceGranted,
			Help: HelpTextExperienceGranted,
		},
	)
)
