// internal/registration/validation.go
package registration

import (
	"regexp"
	"strings"

	apperrors "qsrhire/internal/common/errors"
	"qsrhire/internal/models"
)

var (
	phoneRegex   = regexp.MustCompile(`^[6-9]\d{9}$`)
	emailRegex   = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	aadhaarRegex = regexp.MustCompile(`^\d{4}-\d{4}-\d{4}$`)
	nonDigits    = regexp.MustCompile(`\D`)
)

// ValidateBasicInfo checks the first worker signup step.
func ValidateBasicInfo(in BasicInfo) apperrors.ValidationErrors {
	var errs apperrors.ValidationErrors

	if len(strings.TrimSpace(in.FullName)) < 2 {
		errs = append(errs, apperrors.FieldError{
			Field:   "fullName",
			Code:    "MIN_LENGTH",
			Message: "Full name is required",
		})
	}

	if in.Age < 18 {
		errs = append(errs, apperrors.FieldError{
			Field:   "age",
			Code:    "OUT_OF_RANGE",
			Message: "Must be at least 18 years old",
		})
	} else if in.Age > 65 {
		errs = append(errs, apperrors.FieldError{
			Field:   "age",
			Code:    "OUT_OF_RANGE",
			Message: "Must be 65 or younger",
		})
	}

	if !models.InCatalog(models.Genders, in.Gender) {
		errs = append(errs, apperrors.FieldError{
			Field:   "gender",
			Code:    "MISSING_REQUIRED",
			Message: "Please select your gender",
		})
	}

	if !phoneRegex.MatchString(in.PhoneNumber) {
		errs = append(errs, apperrors.FieldError{
			Field:   "phoneNumber",
			Code:    "INVALID_FORMAT",
			Message: "Enter a valid 10-digit phone number",
		})
	}

	// Email is optional, empty string accepted.
	if in.Email != "" && !emailRegex.MatchString(in.Email) {
		errs = append(errs, apperrors.FieldError{
			Field:   "email",
			Code:    "INVALID_FORMAT",
			Message: "Enter a valid email",
		})
	}

	if len(in.Password) < 6 {
		errs = append(errs, apperrors.FieldError{
			Field:   "password",
			Code:    "MIN_LENGTH",
			Message: "Password must be at least 6 characters",
		})
	}
	if in.ConfirmPassword != in.Password {
		errs = append(errs, apperrors.FieldError{
			Field:   "confirmPassword",
			Code:    "MISMATCH",
			Message: "Passwords do not match",
		})
	}

	if len(in.LanguagesKnown) == 0 {
		errs = append(errs, apperrors.FieldError{
			Field:   "languagesKnown",
			Code:    "EMPTY_SELECTION",
			Message: "Select at least one language",
		})
	} else {
		for _, lang := range in.LanguagesKnown {
			if !models.InCatalog(models.Languages, lang) {
				errs = append(errs, apperrors.FieldError{
					Field:   "languagesKnown",
					Code:    "NOT_IN_CATALOG",
					Message: "Invalid selection",
				})
				break
			}
		}
	}

	if !models.InCatalog(models.Regions, in.Region) {
		errs = append(errs, apperrors.FieldError{
			Field:   "region",
			Code:    "MISSING_REQUIRED",
			Message: "Region is required",
		})
	}

	return errs
}

// ValidateWorkDetails checks the second worker signup step. Everything
// except the skill selection is optional.
func ValidateWorkDetails(in WorkDetails) apperrors.ValidationErrors {
	var errs apperrors.ValidationErrors

	if len(in.Skills) == 0 {
		errs = append(errs, apperrors.FieldError{
			Field:   "skills",
			Code:    "EMPTY_SELECTION",
			Message: "Select at least one skill",
		})
	} else {
		for _, skill := range in.Skills {
			if !models.InCatalog(models.Roles, skill) {
				errs = append(errs, apperrors.FieldError{
					Field:   "skills",
					Code:    "NOT_IN_CATALOG",
					Message: "Invalid selection",
				})
				break
			}
		}
	}

	return errs
}

// ValidateVerification checks the final worker signup step.
func ValidateVerification(in Verification) apperrors.ValidationErrors {
	var errs apperrors.ValidationErrors

	if !aadhaarRegex.MatchString(in.AadhaarNumber) {
		errs = append(errs, apperrors.FieldError{
			Field:   "aadhaarNumber",
			Code:    "INVALID_FORMAT",
			Message: "Enter Aadhaar in format ####-####-####",
		})
	}

	// PAN is optional and carries no format check beyond presence.

	if in.IDProofURL == "" {
		errs = append(errs, apperrors.FieldError{
			Field:   "idProofUrl",
			Code:    "MISSING_REQUIRED",
			Message: "ID proof upload is required",
		})
	}

	if !in.TermsAccepted {
		errs = append(errs, apperrors.FieldError{
			Field:   "termsAccepted",
			Code:    "NOT_ACCEPTED",
			Message: "You must accept the terms and conditions",
		})
	}

	return errs
}

// FormatAadhaar strips non-digit characters, truncates to 12 digits and
// re-inserts a dash every 4 characters.
func FormatAadhaar(raw string) string {
	digits := nonDigits.ReplaceAllString(raw, "")
	if len(digits) > 12 {
		digits = digits[:12]
	}
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && i%4 == 0 {
			b.WriteByte('-')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizePAN upper-cases the optional tax id.
func NormalizePAN(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}
