// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type SoloArenaMetrics interface {
	QueueJoined(rated bool, waitEstimate time.Duration)
	JoinRejected(rated bool, reason string)
	TeamCreated()
	TeamCreateRejected(reason string)
}

func NewMetrics(registry *prometheus.Registry) SoloArenaMetrics {
	return setupPrometheusMetrics(registry)
}
