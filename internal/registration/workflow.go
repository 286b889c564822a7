// internal/registration/workflow.go
package registration

import (
	"context"

	apperrors "qsrhire/internal/common/errors"
	"qsrhire/internal/common/logger"
	"qsrhire/internal/common/metrics"
	"qsrhire/internal/models"
	"qsrhire/internal/notify"
	"qsrhire/internal/storage"
	"qsrhire/internal/uploads"
)

// Step identifies a worker signup step.
type Step int

const (
	StepBasicInfo Step = iota + 1
	StepWorkDetails
	StepVerification
)

func (s Step) String() string {
	switch s {
	case StepBasicInfo:
		return "Basic Info"
	case StepWorkDetails:
		return "Work Details"
	case StepVerification:
		return "Verification"
	default:
		return "Unknown"
	}
}

func (s Step) formLabel() string {
	switch s {
	case StepBasicInfo:
		return "worker_basic_info"
	case StepWorkDetails:
		return "worker_work_details"
	default:
		return "worker_verification"
	}
}

// StepData is one signup step's typed submission. Each step has its own
// record type with a pure validation function; the workflow never
// inspects untyped field maps.
type StepData interface {
	step() Step
	validate() apperrors.ValidationErrors
	apply(draft *models.WorkerDraft)
}

// BasicInfo is the first step: identity, contact and account fields.
type BasicInfo struct {
	FullName        string
	Age             int
	Gender          string
	PhoneNumber     string
	Email           string
	Password        string
	ConfirmPassword string
	LanguagesKnown  []string
	Region          string
}

func (b BasicInfo) step() Step { return StepBasicInfo }

func (b BasicInfo) validate() apperrors.ValidationErrors { return ValidateBasicInfo(b) }

func (b BasicInfo) apply(draft *models.WorkerDraft) {
	draft.FullName = b.FullName
	draft.Age = b.Age
	draft.Gender = b.Gender
	draft.PhoneNumber = b.PhoneNumber
	draft.Email = b.Email
	draft.Password = b.Password
	draft.LanguagesKnown = b.LanguagesKnown
	draft.Region = b.Region
}

// WorkDetails is the second step: skills and optional work history.
type WorkDetails struct {
	Skills            []string
	PastWorkDetails   string
	WorkProofURL      string
	VideoIntroURL     string
	CertificationTags []string
}

func (w WorkDetails) step() Step { return StepWorkDetails }

func (w WorkDetails) validate() apperrors.ValidationErrors { return ValidateWorkDetails(w) }

func (w WorkDetails) apply(draft *models.WorkerDraft) {
	draft.Skills = w.Skills
	draft.PastWorkDetails = w.PastWorkDetails
	draft.WorkProofURL = w.WorkProofURL
	draft.VideoIntroURL = w.VideoIntroURL
	draft.CertificationTags = w.CertificationTags
}

// Verification is the final step: government ids, id proof and terms.
type Verification struct {
	AadhaarNumber string
	PANNumber     string
	IDProofURL    string
	TermsAccepted bool
}

func (v Verification) step() Step { return StepVerification }

func (v Verification) validate() apperrors.ValidationErrors { return ValidateVerification(v) }

func (v Verification) apply(draft *models.WorkerDraft) {
	draft.AadhaarNumber = v.AadhaarNumber
	draft.PANNumber = NormalizePAN(v.PANNumber)
	draft.IDProofURL = v.IDProofURL
	draft.TermsAccepted = v.TermsAccepted
}

// Workflow drives one worker through the three signup steps, holding
// the accumulated draft until Submit hands it to the storage gateway.
// A Workflow belongs to a single session and is not safe for
// concurrent use.
type Workflow struct {
	gateway  storage.Gateway
	log      logger.Logger
	mailer   notify.Mailer
	uploads  map[Step]map[string]*uploads.Future
	current  Step
	draft    models.WorkerDraft
	complete bool
}

type Option func(*Workflow)

// WithMailer enables a best-effort confirmation email on completion.
func WithMailer(m notify.Mailer) Option {
	return func(w *Workflow) { w.mailer = m }
}

func NewWorkflow(gateway storage.Gateway, log logger.Logger, opts ...Option) *Workflow {
	w := &Workflow{
		gateway: gateway,
		log:     log.WithFields(map[string]interface{}{"flow": "worker_registration"}),
		uploads: make(map[Step]map[string]*uploads.Future),
		current: StepBasicInfo,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Current returns the step the workflow is waiting on.
func (w *Workflow) Current() Step { return w.current }

// Completed reports whether Submit has succeeded.
func (w *Workflow) Completed() bool { return w.complete }

// Draft returns a snapshot of the accumulated draft so previously
// entered values can be re-displayed when navigating back.
func (w *Workflow) Draft() models.WorkerDraft { return w.draft }

// RequireUpload declares an in-flight upload whose reference must land
// in the named draft field before the owning step can be passed.
func (w *Workflow) RequireUpload(step Step, field string, f *uploads.Future) {
	if w.uploads[step] == nil {
		w.uploads[step] = make(map[string]*uploads.Future)
	}
	w.uploads[step][field] = f
}

// Next validates data against its step's rules, merges it into the
// draft and advances the step pointer. On failure nothing is merged and
// the workflow stays on the current step.
func (w *Workflow) Next(data StepData) error {
	if w.complete {
		return apperrors.NewWorkflowCompleteError()
	}
	if data.step() != w.current || w.current == StepVerification {
		return apperrors.NewStepMismatchError(w.current.String(), data.step().String())
	}
	if field, pending := w.pendingUpload(w.current); pending {
		return apperrors.NewUploadPendingError(field)
	}

	data = w.resolveUploads(data)

	if errs := data.validate(); len(errs) > 0 {
		metrics.ValidationFailures.WithLabelValues(w.current.formLabel()).Inc()
		return errs
	}

	data.apply(&w.draft)
	w.current++

	w.log.Debug("step passed", map[string]interface{}{
		"step": data.step().String(),
		"next": w.current.String(),
	})
	return nil
}

// Back retreats one step, floored at the first. The draft keeps every
// previously entered value.
func (w *Workflow) Back() {
	if w.complete || w.current <= StepBasicInfo {
		return
	}
	w.current--
}

// Submit validates the final step, merges it and hands the complete
// draft to the storage gateway. On a persistence failure the workflow
// stays on the last step with the draft intact so the submission can be
// retried. On success the workflow is torn down.
func (w *Workflow) Submit(ctx context.Context, final Verification) (*models.WorkerRegistration, error) {
	if w.complete {
		return nil, apperrors.NewWorkflowCompleteError()
	}
	if w.current != StepVerification {
		return nil, apperrors.NewStepMismatchError(StepVerification.String(), w.current.String())
	}
	if field, pending := w.pendingUpload(StepVerification); pending {
		return nil, apperrors.NewUploadPendingError(field)
	}

	resolved := w.resolveUploads(final).(Verification)

	if errs := resolved.validate(); len(errs) > 0 {
		metrics.ValidationFailures.WithLabelValues(StepVerification.formLabel()).Inc()
		return nil, errs
	}

	merged := w.draft
	resolved.apply(&merged)

	record, err := w.gateway.CreateWorkerRegistration(ctx, merged)
	if err != nil {
		w.draft = merged
		metrics.RegistrationsSubmitted.WithLabelValues("worker", "failure").Inc()
		w.log.Error("registration submit failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	w.draft = merged
	w.complete = true
	metrics.RegistrationsSubmitted.WithLabelValues("worker", "success").Inc()
	w.log.Info("registration submitted", map[string]interface{}{
		"registrationId": record.ID,
		"region":         record.Region,
	})

	if w.mailer != nil && record.Email != "" {
		if err := w.mailer.SendRegistrationReceived(ctx, record.Email, record.FullName); err != nil {
			w.log.Warn("confirmation email failed", map[string]interface{}{
				"registrationId": record.ID,
				"error":          err.Error(),
			})
		}
	}

	return record, nil
}

// pendingUpload returns the first declared upload for the step that has
// not completed yet.
func (w *Workflow) pendingUpload(step Step) (string, bool) {
	for field, f := range w.uploads[step] {
		if !f.Ready() {
			return field, true
		}
	}
	return "", false
}

// resolveUploads copies finished upload references into the step data
// fields that were left empty while the upload ran.
func (w *Workflow) resolveUploads(data StepData) StepData {
	futures := w.uploads[data.step()]
	if len(futures) == 0 {
		return data
	}
	switch d := data.(type) {
	case WorkDetails:
		if f := futures["workProofUrl"]; f != nil && d.WorkProofURL == "" {
			d.WorkProofURL = f.Ref()
		}
		if f := futures["videoIntroUrl"]; f != nil && d.VideoIntroURL == "" {
			d.VideoIntroURL = f.Ref()
		}
		return d
	case Verification:
		if f := futures["idProofUrl"]; f != nil && d.IDProofURL == "" {
			d.IDProofURL = f.Ref()
		}
		return d
	default:
		return data
	}
}
