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
	RoundsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRoundsCreated,
			Help: HelpTextRoundsCreated,
		},
	)

	DepositsRecorded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDepositsRecorded,
			Help: HelpTextDepositsRecorded,
		},
	)

	AmountDeposited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAmountDeposited,
			Help: HelpTextAmountDeposited,
		},
	)

	WinnersSelected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWinnersSelected,
			Help: HelpTextWinnersSelected,
		},
		[]string{LabelSource},
	)

	RewardsPaid = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRewardsPaid,
			Help: HelpTextRewardsPaid,
		},
	)

	FeesSwept = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameFeesSwept,
			Help: HelpTextFeesSwept,
		},
	)

	RoundsExpired = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRoundsExpired,
			Help: HelpTextRoundsExpired,
		},
	)

	LedgerCredited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLedgerCredited,
			Help: HelpTextLedgerCredited,
		},
	)

	CurrentRound = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameCurrentRound,
			Help: HelpTextCurrentRound,
		},
	)

	CurrentPool = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameCurrentPool,
			Help: HelpTextCurrentPool,
		},
	)

	OperationsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameOperationsRejected,
			Help: HelpTextOperationsRejected,
		},
		[]string{LabelOperation, LabelKind},
	)
)
