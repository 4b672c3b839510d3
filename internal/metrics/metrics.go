// Package metrics exposes Prometheus collectors for HTTP traffic and gameplay activity.
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
)

// Gameplay Metrics
var (
	PlayersCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePlayersCreated,
			Help: HelpTextPlayersCreated,
		},
	)

	ShotsFired = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameShotsFired,
			Help: HelpTextShotsFired,
		},
		[]string{LabelWeapon, LabelOutcome},
	)

	EnemiesSpawned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEnemiesSpawned,
			Help: HelpTextEnemiesSpawned,
		},
		[]string{LabelType},
	)

	ItemsUsed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsUsed,
			Help: HelpTextItemsUsed,
		},
		[]string{LabelItem, LabelOutcome},
	)

	LevelUps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLevelUps,
			Help: HelpTextLevelUps,
		},
	)
)
