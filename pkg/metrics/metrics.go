// Package metrics holds Prometheus collectors shared across the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that
// can be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

//nolint: gochecknoglobals
var (
	// DeleteNotifications counts delete-notification publish attempts by result.
	DeleteNotifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "account_delete_notifications_total",
		Help: "Number of account delete notifications published, by result.",
	}, []string{"result"})
)
