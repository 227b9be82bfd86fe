// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type prometheusMetrics struct {
	queueJoins        prometheus.CounterVec
	joinRejections    prometheus.CounterVec
	queueWaitEstimate prometheus.HistogramVec
	teamsCreated      prometheus.Counter
	teamCreateFailed  prometheus.CounterVec
}

func setupPrometheusMetrics(registry *prometheus.Registry) prometheusMetrics {
	factory := promauto.With(registry)

	queueJoins := factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ab_solo_arena_queue_joins_total",
			Help: "A counter of accepted solo arena queue registrations",
		}, []string{"rated"})

	joinRejections := factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ab_solo_arena_join_rejections_total",
			Help: "A counter of rejected solo arena queue join attempts by reason",
		}, []string{"rated", "reason"})

	//nolint:promlinter
	queueWaitEstimate := factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ab_solo_arena_queue_wait_estimate_ms",
			Help:    "A histogram of average wait estimates reported at queue join time in milliseconds",
			Buckets: prometheus.ExponentialBuckets(100, 2, 12),
		}, []string{"rated"})

	teamsCreated := factory.NewCounter(
		prometheus.CounterOpts{
			Name: "ab_solo_arena_teams_created_total",
			Help: "A counter of provisioned solo arena teams",
		})

	teamCreateFailed := factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ab_solo_arena_team_create_failures_total",
			Help: "A counter of failed solo arena team creations by reason",
		}, []string{"reason"})

	return prometheusMetrics{
		queueJoins:        *queueJoins,
		joinRejections:    *joinRejections,
		queueWaitEstimate: *queueWaitEstimate,
		teamsCreated:      teamsCreated,
		teamCreateFailed:  *teamCreateFailed,
	}
}

func (metrics prometheusMetrics) QueueJoined(rated bool, waitEstimate time.Duration) {
	label := prometheus.Labels{"rated": strconv.FormatBool(rated)}
	metrics.queueJoins.With(label).Inc()
	metrics.queueWaitEstimate.With(label).Observe(float64(waitEstimate.Milliseconds()))
}

func (metrics prometheusMetrics) JoinRejected(rated bool, reason string) {
	metrics.joinRejections.With(prometheus.Labels{"rated": strconv.FormatBool(rated), "reason": reason}).Inc()
}

func (metrics prometheusMetrics) TeamCreated() {
	metrics.teamsCreated.Inc()
}

func (metrics prometheusMetrics) TeamCreateRejected(reason string) {
	metrics.teamCreateFailed.With(prometheus.Labels{"reason": reason}).Inc()
}
