// internal/employer/workflow.go
package employer

import (
	"context"

	apperrors "qsrhire/internal/common/errors"
	"qsrhire/internal/common/logger"
	"qsrhire/internal/common/metrics"
	"qsrhire/internal/models"
	"qsrhire/internal/storage"
)

// Onboarding is the single-step employer and franchisee counterpart of
// the worker workflow: one Collect state, one Complete state. Each
// instance handles exactly one submission and is torn down on success.
type Onboarding struct {
	gateway  storage.Gateway
	log      logger.Logger
	complete bool
}

func NewOnboarding(gateway storage.Gateway, log logger.Logger) *Onboarding {
	return &Onboarding{
		gateway: gateway,
		log:     log.WithFields(map[string]interface{}{"flow": "employer_onboarding"}),
	}
}

// Completed reports whether a submission has succeeded.
func (o *Onboarding) Completed() bool { return o.complete }

// SubmitEmployer validates and persists a QSR outlet registration.
// Validation failures and persistence failures both leave the
// onboarding open for another attempt.
func (o *Onboarding) SubmitEmployer(ctx context.Context, draft models.EmployerDraft) (*models.EmployerRegistration, error) {
	if o.complete {
		return nil, apperrors.NewWorkflowCompleteError()
	}

	if errs := ValidateEmployer(draft); len(errs) > 0 {
		metrics.ValidationFailures.WithLabelValues("employer_onboarding").Inc()
		return nil, errs
	}

	record, err := o.gateway.CreateEmployerRegistration(ctx, draft)
	if err != nil {
		metrics.RegistrationsSubmitted.WithLabelValues("employer", "failure").Inc()
		o.log.Error("employer submit failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	o.complete = true
	metrics.RegistrationsSubmitted.WithLabelValues("employer", "success").Inc()
	o.log.Info("employer registration submitted", map[string]interface{}{
		"registrationId": record.ID,
		"brand":          record.RestaurantBrandName,
	})
	return record, nil
}

// SubmitFranchisee validates and persists a franchisee registration.
func (o *Onboarding) SubmitFranchisee(ctx context.Context, draft models.FranchiseeDraft) (*models.FranchiseeRegistration, error) {
	if o.complete {
		return nil, apperrors.NewWorkflowCompleteError()
	}

	if errs := ValidateFranchisee(draft); len(errs) > 0 {
		metrics.ValidationFailures.WithLabelValues("franchisee_onboarding").Inc()
		return nil, errs
	}

	record, err := o.gateway.CreateFranchiseeRegistration(ctx, draft)
	if err != nil {
		metrics.RegistrationsSubmitted.WithLabelValues("franchisee", "failure").Inc()
		o.log.Error("franchisee submit failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	o.complete = true
	metrics.RegistrationsSubmitted.WithLabelValues("franchisee", "success").Inc()
	o.log.Info("franchisee registration submitted", map[string]interface{}{
		"registrationId": record.ID,
		"business":       record.FranchiseeBusinessName,
	})
	return record, nil
}
