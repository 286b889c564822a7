// internal/storage/gateway.go
package storage

import (
	"context"
	"errors"
	"time"

	apperrors "qsrhire/internal/common/errors"
	"qsrhire/internal/common/metrics"
	"qsrhire/internal/models"
)

// Gateway is the narrow persistence interface consumed by the
// registration workflows. Records are created exactly once with a
// generated id and status "pending"; there is no update or delete
// (review transitions belong to an external reviewer system).
type Gateway interface {
	CreateWorkerRegistration(ctx context.Context, draft models.WorkerDraft) (*models.WorkerRegistration, error)
	GetWorkerRegistration(ctx context.Context, id string) (*models.WorkerRegistration, error)

	CreateEmployerRegistration(ctx context.Context, draft models.EmployerDraft) (*models.EmployerRegistration, error)
	GetEmployerRegistration(ctx context.Context, id string) (*models.EmployerRegistration, error)

	CreateFranchiseeRegistration(ctx context.Context, draft models.FranchiseeDraft) (*models.FranchiseeRegistration, error)
	GetFranchiseeRegistration(ctx context.Context, id string) (*models.FranchiseeRegistration, error)
}

// IsNotFound reports whether err is a lookup miss from a Gateway.
func IsNotFound(err error) bool {
	var stdErr *apperrors.StandardError
	if errors.As(err, &stdErr) {
		return stdErr.Code == apperrors.ErrCodeRegistrationNotFound
	}
	return false
}

// observe records the duration of a gateway operation.
func observe(operation string, start time.Time) {
	metrics.StorageOperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
