// Package errors provides the standardized error taxonomy shared by the
// registration, application and storage components.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Validation errors are field-scoped and recoverable: the caller
	// corrects the input and retries.
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	// Application flow errors.
	ErrCodeDuplicateApplication ErrorCode = "DUPLICATE_APPLICATION"
	ErrCodeInvalidStatus        ErrorCode = "INVALID_STATUS"

	// Workflow errors.
	ErrCodeWorkflowComplete ErrorCode = "WORKFLOW_COMPLETE"
	ErrCodeStepMismatch     ErrorCode = "STEP_MISMATCH"
	ErrCodeUploadPending    ErrorCode = "UPLOAD_PENDING"

	// Storage errors.
	ErrCodeDatabaseConnectionFailed ErrorCode = "DATABASE_CONNECTION_FAILED"
	ErrCodeDatabaseInsertFailed     ErrorCode = "DATABASE_INSERT_FAILED"
	ErrCodeRegistrationNotFound     ErrorCode = "REGISTRATION_NOT_FOUND"

	// Phone verification errors.
	ErrCodeOTPInvalid        ErrorCode = "OTP_INVALID"
	ErrCodeOTPExpired        ErrorCode = "OTP_EXPIRED"
	ErrCodeOTPDeliveryFailed ErrorCode = "OTP_DELIVERY_FAILED"

	// Catalog errors.
	ErrCodeCatalogInvalid ErrorCode = "CATALOG_INVALID"

	ErrCodeNotificationSendFailed ErrorCode = "NOTIFICATION_SEND_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Field Validation Errors
// ==========================

// FieldError is a single field-scoped validation failure. Message is
// the user-visible reason shown next to the offending input.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrors aggregates every rule violated by one submission.
// It implements error so workflow transitions can surface it directly.
type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	if len(e) == 1 {
		return fmt.Sprintf("validation failed: %s: %s", e[0].Field, e[0].Message)
	}
	return fmt.Sprintf("validation failed: %d field errors", len(e))
}

// ForField returns the errors scoped to a single field.
func (e ValidationErrors) ForField(field string) []FieldError {
	var out []FieldError
	for _, fe := range e {
		if fe.Field == field || strings.HasPrefix(fe.Field, field+".") {
			out = append(out, fe)
		}
	}
	return out
}

// Fields returns the distinct offending field names in order of first
// appearance.
func (e ValidationErrors) Fields() []string {
	seen := map[string]bool{}
	var out []string
	for _, fe := range e {
		if !seen[fe.Field] {
			seen[fe.Field] = true
			out = append(out, fe.Field)
		}
	}
	return out
}

// ==========================
// 3. Error Constructors
// ==========================

// NewValidationFailedError wraps field errors as a non-retryable
// standard error.
func NewValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   "Submitted data failed validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDuplicateApplicationError creates a non-retryable duplicate
// application error.
func NewDuplicateApplicationError(jobID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeDuplicateApplication,
		Message:   "Application already exists for this job",
		Details:   fmt.Sprintf("jobId: %s", jobID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewWorkflowCompleteError signals a transition attempted after the
// workflow was torn down.
func NewWorkflowCompleteError() *StandardError {
	return &StandardError{
		Code:      ErrCodeWorkflowComplete,
		Message:   "Workflow already complete, start a fresh registration",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewStepMismatchError signals step data submitted for a step other
// than the current one.
func NewStepMismatchError(expected, got string) *StandardError {
	return &StandardError{
		Code:      ErrCodeStepMismatch,
		Message:   "Step data does not match the current step",
		Details:   fmt.Sprintf("expected: %s, got: %s", expected, got),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewUploadPendingError signals a required upload that has not finished.
func NewUploadPendingError(field string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUploadPending,
		Message:   "Required upload still in progress",
		Details:   fmt.Sprintf("field: %s", field),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewDatabaseConnectionFailedError creates a retryable connection error.
func NewDatabaseConnectionFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseConnectionFailed,
		Message:   "Database connection error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewDatabaseInsertFailedError creates a retryable insert error. The
// submission that triggered it stays resubmittable.
func NewDatabaseInsertFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseInsertFailed,
		Message:   "Database insert operation failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewRegistrationNotFoundError creates a non-retryable lookup miss.
func NewRegistrationNotFoundError(id string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRegistrationNotFound,
		Message:   "Registration not found",
		Details:   fmt.Sprintf("registrationId: %s", id),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewOTPInvalidError creates a non-retryable code mismatch error.
func NewOTPInvalidError(phone string) *StandardError {
	return &StandardError{
		Code:      ErrCodeOTPInvalid,
		Message:   "Verification code does not match",
		Details:   fmt.Sprintf("phone: %s", phone),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewOTPExpiredError creates an error for a code past its TTL; the
// caller requests a fresh code.
func NewOTPExpiredError(phone string) *StandardError {
	return &StandardError{
		Code:      ErrCodeOTPExpired,
		Message:   "Verification code expired or never issued",
		Details:   fmt.Sprintf("phone: %s", phone),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotificationSendFailedError creates a retryable delivery error.
func NewNotificationSendFailedError(kind string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotificationSendFailed,
		Message:   "Notification delivery failed",
		Details:   fmt.Sprintf("type: %s, error: %s", kind, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewCatalogInvalidError creates a non-retryable catalog load error.
func NewCatalogInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogInvalid,
		Message:   "Job catalog failed schema validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 4. Utility Functions
// ==========================

// GetRetryCount returns the recommended retry count per error code.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeDatabaseConnectionFailed,
		ErrCodeDatabaseInsertFailed,
		ErrCodeNotificationSendFailed,
		ErrCodeOTPDeliveryFailed:
		return 3 // Retryable technical errors

	default:
		return 0 // Business errors: no retry
	}
}

// IsRetryableErrorCode checks if an error code is retryable.
func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "VALIDATION") || strings.Contains(codeStr, "STEP") || strings.Contains(codeStr, "WORKFLOW") || strings.Contains(codeStr, "UPLOAD"):
		return "WORKFLOW"
	case strings.Contains(codeStr, "DATABASE") || strings.Contains(codeStr, "NOT_FOUND"):
		return "STORAGE"
	case strings.Contains(codeStr, "OTP"):
		return "VERIFICATION"
	case strings.Contains(codeStr, "NOTIFICATION"):
		return "NOTIFICATION"
	case strings.Contains(codeStr, "APPLICATION") || strings.Contains(codeStr, "STATUS"):
		return "APPLICATION"
	default:
		return "OTHER"
	}
}
