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

	SecurityEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSecurityEvents,
			Help: HelpTextSecurityEvents,
		},
		[]string{LabelEvent},
	)
)

// Reforge Metrics
var (
	ReforgeAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameReforgeAttempts,
			Help: HelpTextReforgeAttempts,
		},
		[]string{LabelOutcome, LabelCategory},
	)

	ReforgeRefusals = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameReforgeRefusals,
			Help: HelpTextReforgeRefusals,
		},
		[]string{LabelReason},
	)

	CoinsSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCoinsSpent,
			Help: HelpTextCoinsSpent,
		},
	)

	MaterialsConsumed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMaterialsConsumed,
			Help: HelpTextMaterialsConsumed,
		},
	)

	MaterialsRefunded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMaterialsRefunded,
			Help: HelpTextMaterialsRefunded,
		},
	)

	ItemsDestroyed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemsDestroyed,
			Help: HelpTextItemsDestroyed,
		},
	)

	RefundFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRefundFailures,
			Help: HelpTextRefundFailures,
		},
	)

	CoinsUnrefunded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCoinsUnrefunded,
			Help: HelpTextCoinsUnrefunded,
		},
	)
)

// Storage and config Metrics
var (
	ConfigReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameConfigReloads,
			Help: HelpTextConfigReloads,
		},
		[]string{LabelStatus},
	)

	LevelStoreErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLevelStoreErrors,
			Help: HelpTextLevelStoreErrors,
		},
		[]string{LabelOperation},
	)

	ConfigMaxLevel = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameConfigMaxLevel,
			Help: HelpTextConfigMaxLevel,
		},
	)

	ConfiguredLevels = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameConfiguredLevels,
			Help: HelpTextConfiguredLevels,
		},
	)

	AllowedPatterns = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameAllowedPatterns,
			Help: HelpTextAllowedPatterns,
		},
		[]string{LabelList},
	)
)
