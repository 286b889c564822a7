// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RegistrationsSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "registrations_submitted_total",
			Help: "Total number of registration submissions by flow and outcome",
		},
		[]string{"flow", "outcome"},
	)

	ValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "validation_failures_total",
			Help: "Total number of field validation failures by form",
		},
		[]string{"form"},
	)

	ApplicationsFinalized = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "applications_finalized_total",
			Help: "Total number of job applications finalized by status",
		},
		[]string{"status"},
	)

	StorageOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "storage_operation_duration_seconds",
			Help: "Duration of storage gateway operations in seconds",
		},
		[]string{"operation"},
	)

	OTPIssued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "otp_issued_total",
			Help: "Total number of verification codes issued",
		},
	)
)
