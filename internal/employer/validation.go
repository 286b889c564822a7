// internal/employer/validation.go
package employer

import (
	"regexp"
	"strings"

	apperrors "qsrhire/internal/common/errors"
	"qsrhire/internal/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func required(errs apperrors.ValidationErrors, value, field, message string) apperrors.ValidationErrors {
	if strings.TrimSpace(value) == "" {
		errs = append(errs, apperrors.FieldError{
			Field:   field,
			Code:    "MISSING_REQUIRED",
			Message: message,
		})
	}
	return errs
}

func minLength(errs apperrors.ValidationErrors, value, field string, min int, message string) apperrors.ValidationErrors {
	if len(value) < min {
		errs = append(errs, apperrors.FieldError{
			Field:   field,
			Code:    "MIN_LENGTH",
			Message: message,
		})
	}
	return errs
}

// ValidateEmployer checks a QSR outlet's single-step onboarding form.
func ValidateEmployer(in models.EmployerDraft) apperrors.ValidationErrors {
	var errs apperrors.ValidationErrors

	errs = minLength(errs, in.PhoneNumber, "phoneNumber", 10, "Phone number is required")
	errs = required(errs, in.RestaurantBrandName, "restaurantBrandName", "Restaurant/Brand name is required")
	errs = required(errs, in.POCFullName, "pocFullName", "POC name is required")

	if !emailRegex.MatchString(in.POCEmail) {
		errs = append(errs, apperrors.FieldError{
			Field:   "pocEmail",
			Code:    "INVALID_FORMAT",
			Message: "Valid email is required",
		})
	}

	errs = minLength(errs, in.ContactNumber, "contactNumber", 10, "Contact number is required")
	errs = required(errs, in.RestaurantAddress, "restaurantAddress", "Address is required")
	errs = required(errs, in.City, "city", "City is required")
	errs = required(errs, in.State, "state", "State is required")
	errs = minLength(errs, in.Pincode, "pincode", 6, "Valid pincode is required")
	errs = required(errs, in.RegistrationNumber, "registrationNumber", "Registration number is required")
	errs = minLength(errs, in.FSSAILicense, "fssaiLicense", 14, "Valid FSSAI license is required")
	errs = minLength(errs, in.GSTNumber, "gstNumber", 15, "Valid GST number is required")
	errs = minLength(errs, in.PANNumber, "panNumber", 10, "Valid PAN is required")

	errs = required(errs, in.GSTCertificateURL, "gstCertificateUrl", "GST certificate is required")
	errs = required(errs, in.FSSAICertificateURL, "fssaiCertificateUrl", "FSSAI certificate is required")
	errs = required(errs, in.BusinessRegistrationProofURL, "businessRegistrationProofUrl", "Business registration proof is required")
	errs = required(errs, in.PANCardURL, "panCardUrl", "PAN card is required")
	errs = required(errs, in.BankAccountProofURL, "bankAccountProofUrl", "Bank account proof is required")

	if !in.DetailsAccuracyConfirmed {
		errs = append(errs, apperrors.FieldError{
			Field:   "detailsAccuracyConfirmed",
			Code:    "NOT_ACCEPTED",
			Message: "Please confirm accuracy",
		})
	}
	if !in.VerificationConsent {
		errs = append(errs, apperrors.FieldError{
			Field:   "verificationConsent",
			Code:    "NOT_ACCEPTED",
			Message: "Please provide consent",
		})
	}

	return errs
}

// ValidateFranchisee checks a franchisee operator's onboarding form.
func ValidateFranchisee(in models.FranchiseeDraft) apperrors.ValidationErrors {
	var errs apperrors.ValidationErrors

	errs = minLength(errs, in.PhoneNumber, "phoneNumber", 10, "Phone number is required")
	errs = required(errs, in.FranchiseeBusinessName, "franchiseeBusinessName", "Business name is required")
	errs = required(errs, in.RegisteredCompanyName, "registeredCompanyName", "Registered company name is required")
	errs = required(errs, in.POCFullName, "pocFullName", "POC name is required")

	if !emailRegex.MatchString(in.POCEmail) {
		errs = append(errs, apperrors.FieldError{
			Field:   "pocEmail",
			Code:    "INVALID_FORMAT",
			Message: "Valid email is required",
		})
	}

	errs = minLength(errs, in.ContactNumber, "contactNumber", 10, "Contact number is required")
	errs = required(errs, in.BusinessAddress, "businessAddress", "Address is required")
	errs = required(errs, in.City, "city", "City is required")
	errs = required(errs, in.State, "state", "State is required")
	errs = minLength(errs, in.Pincode, "pincode", 6, "Valid pincode is required")

	return errs
}

// ValidateJobPosting checks the post-a-job form on the dashboard.
func ValidateJobPosting(in models.JobPosting) apperrors.ValidationErrors {
	var errs apperrors.ValidationErrors

	errs = required(errs, in.Role, "role", "Role is required")
	errs = required(errs, in.Location, "location", "Location is required")
	errs = minLength(errs, in.Description, "description", 10, "Description must be at least 10 characters")

	if in.SalaryMin <= 0 {
		errs = append(errs, apperrors.FieldError{
			Field:   "salaryMin",
			Code:    "MISSING_REQUIRED",
			Message: "Minimum salary is required",
		})
	}
	if in.SalaryMax <= 0 {
		errs = append(errs, apperrors.FieldError{
			Field:   "salaryMax",
			Code:    "MISSING_REQUIRED",
			Message: "Maximum salary is required",
		})
	}

	errs = required(errs, in.ShiftType, "shiftType", "Shift type is required")

	if in.NumberOfOpenings <= 0 {
		errs = append(errs, apperrors.FieldError{
			Field:   "numberOfOpenings",
			Code:    "MISSING_REQUIRED",
			Message: "Number of openings is required",
		})
	}

	return errs
}
