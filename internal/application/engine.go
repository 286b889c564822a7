// internal/application/engine.go
package application

import (
	"fmt"
	"math/rand"
	"time"

	apperrors "qsrhire/internal/common/errors"
	"qsrhire/internal/common/logger"
	"qsrhire/internal/common/metrics"
	"qsrhire/internal/models"
)

// StatusSource decides the outcome of a finalized application. In
// production this is the employer review pipeline; tests plug in fixed
// or randomized fixtures.
type StatusSource interface {
	Decide(job models.JobListing) (models.ApplicationStatus, string)
}

// Engine guards the apply/finalize flow for one worker's applied list.
// The list itself stays owned by the caller; the engine only reads it
// for duplicate checks and materializes new entries.
type Engine struct {
	source StatusSource
	log    logger.Logger
}

func NewEngine(source StatusSource, log logger.Logger) *Engine {
	return &Engine{
		source: source,
		log:    log.WithFields(map[string]interface{}{"component": "application_engine"}),
	}
}

// Apply checks whether the worker may open an application for the job.
// The job id is the sole de-duplication key within the applied list.
func (e *Engine) Apply(job models.JobListing, existing []models.AppliedJob) error {
	for _, applied := range existing {
		if applied.ID == job.ID {
			return apperrors.NewDuplicateApplicationError(job.ID)
		}
	}
	return nil
}

// Finalize materializes the AppliedJob for a confirmed application. The
// status comes from the decision source; an interview date label is
// carried only for interview_scheduled.
func (e *Engine) Finalize(job models.JobListing) (models.AppliedJob, error) {
	status, interviewDate := e.source.Decide(job)
	if !status.Valid() {
		return models.AppliedJob{}, &apperrors.StandardError{
			Code:      apperrors.ErrCodeInvalidStatus,
			Message:   "Decision source returned an unknown status",
			Details:   fmt.Sprintf("status: %s", status),
			Timestamp: time.Now().UTC(),
		}
	}
	if status != models.StatusInterviewScheduled {
		interviewDate = ""
	} else if interviewDate == "" {
		return models.AppliedJob{}, &apperrors.StandardError{
			Code:      apperrors.ErrCodeInvalidStatus,
			Message:   "Interview scheduled without an interview date",
			Details:   fmt.Sprintf("jobId: %s", job.ID),
			Timestamp: time.Now().UTC(),
		}
	}

	metrics.ApplicationsFinalized.WithLabelValues(string(status)).Inc()
	e.log.Info("application finalized", map[string]interface{}{
		"jobId":  job.ID,
		"status": string(status),
	})

	return models.AppliedJob{
		JobListing:    job,
		Status:        status,
		InterviewDate: interviewDate,
	}, nil
}

// Prepend inserts the finalized application at the head of the applied
// list, keeping most-recent-first ordering.
func Prepend(existing []models.AppliedJob, applied models.AppliedJob) []models.AppliedJob {
	out := make([]models.AppliedJob, 0, len(existing)+1)
	out = append(out, applied)
	return append(out, existing...)
}

// RandomSource picks a status uniformly at random. It stands in for the
// employer review pipeline in demos and tests only.
type RandomSource struct {
	rng *rand.Rand
}

func NewRandomSource(seed int64) *RandomSource {
	return &RandomSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *RandomSource) Decide(models.JobListing) (models.ApplicationStatus, string) {
	status := models.ApplicationStatuses[s.rng.Intn(len(models.ApplicationStatuses))]
	if status == models.StatusInterviewScheduled {
		return status, "Tomorrow, 10:00 AM"
	}
	return status, ""
}
