// internal/employer/validation_test.go
package employer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qsrhire/internal/models"
)

func createValidEmployerDraft() models.EmployerDraft {
	return models.EmployerDraft{
		PhoneNumber:                  "9876543210",
		RestaurantBrandName:          "Cafe Aroma",
		RegisteredBusinessName:       "Aroma Foods Pvt Ltd",
		POCFullName:                  "Meera Shah",
		POCEmail:                     "meera@cafearoma.in",
		ContactNumber:                "9876501234",
		RestaurantAddress:            "12 MG Road",
		City:                         "Bangalore",
		State:                        "Karnataka",
		Pincode:                      "560001",
		RegistrationNumber:           "REG-2201",
		FSSAILicense:                 "12345678901234",
		GSTNumber:                    "29ABCDE1234F1Z5",
		PANNumber:                    "ABCDE1234F",
		GSTCertificateURL:            "uploaded/gst.pdf",
		FSSAICertificateURL:          "uploaded/fssai.pdf",
		BusinessRegistrationProofURL: "uploaded/registration.pdf",
		PANCardURL:                   "uploaded/pan.pdf",
		BankAccountProofURL:          "uploaded/bank.pdf",
		DetailsAccuracyConfirmed:     true,
		VerificationConsent:          true,
	}
}

func createValidFranchiseeDraft() models.FranchiseeDraft {
	return models.FranchiseeDraft{
		PhoneNumber:            "9876543210",
		FranchiseeBusinessName: "Aroma Franchising",
		RegisteredCompanyName:  "Aroma Franchising Pvt Ltd",
		POCFullName:            "Arjun Mehta",
		POCEmail:               "arjun@aromafranchising.in",
		ContactNumber:          "9876501234",
		BusinessAddress:        "4 Residency Road",
		City:                   "Bangalore",
		State:                  "Karnataka",
		Pincode:                "560025",
	}
}

func TestValidateEmployer(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(*models.EmployerDraft)
		wantField   string
		wantMessage string
	}{
		{
			name:   "valid input passes",
			modify: func(in *models.EmployerDraft) {},
		},
		{
			name:        "short phone number",
			modify:      func(in *models.EmployerDraft) { in.PhoneNumber = "98765" },
			wantField:   "phoneNumber",
			wantMessage: "Phone number is required",
		},
		{
			name:        "missing brand name",
			modify:      func(in *models.EmployerDraft) { in.RestaurantBrandName = "" },
			wantField:   "restaurantBrandName",
			wantMessage: "Restaurant/Brand name is required",
		},
		{
			name:        "missing poc name",
			modify:      func(in *models.EmployerDraft) { in.POCFullName = "" },
			wantField:   "pocFullName",
			wantMessage: "POC name is required",
		},
		{
			name:        "malformed poc email",
			modify:      func(in *models.EmployerDraft) { in.POCEmail = "meera-at-cafearoma" },
			wantField:   "pocEmail",
			wantMessage: "Valid email is required",
		},
		{
			name:        "short pincode",
			modify:      func(in *models.EmployerDraft) { in.Pincode = "5600" },
			wantField:   "pincode",
			wantMessage: "Valid pincode is required",
		},
		{
			name:        "short fssai license",
			modify:      func(in *models.EmployerDraft) { in.FSSAILicense = "1234567890" },
			wantField:   "fssaiLicense",
			wantMessage: "Valid FSSAI license is required",
		},
		{
			name:        "short gst number",
			modify:      func(in *models.EmployerDraft) { in.GSTNumber = "29ABCDE" },
			wantField:   "gstNumber",
			wantMessage: "Valid GST number is required",
		},
		{
			name:        "short pan",
			modify:      func(in *models.EmployerDraft) { in.PANNumber = "ABCDE" },
			wantField:   "panNumber",
			wantMessage: "Valid PAN is required",
		},
		{
			name:        "missing gst certificate",
			modify:      func(in *models.EmployerDraft) { in.GSTCertificateURL = "" },
			wantField:   "gstCertificateUrl",
			wantMessage: "GST certificate is required",
		},
		{
			name:        "missing bank proof",
			modify:      func(in *models.EmployerDraft) { in.BankAccountProofURL = "" },
			wantField:   "bankAccountProofUrl",
			wantMessage: "Bank account proof is required",
		},
		{
			name:        "accuracy not confirmed",
			modify:      func(in *models.EmployerDraft) { in.DetailsAccuracyConfirmed = false },
			wantField:   "detailsAccuracyConfirmed",
			wantMessage: "Please confirm accuracy",
		},
		{
			name:        "consent not given",
			modify:      func(in *models.EmployerDraft) { in.VerificationConsent = false },
			wantField:   "verificationConsent",
			wantMessage: "Please provide consent",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := createValidEmployerDraft()
			tt.modify(&in)

			errs := ValidateEmployer(in)
			if tt.wantField == "" {
				assert.Empty(t, errs)
				return
			}
			fieldErrs := errs.ForField(tt.wantField)
			require.NotEmpty(t, fieldErrs, "expected error on %s", tt.wantField)
			assert.Equal(t, tt.wantMessage, fieldErrs[0].Message)
		})
	}
}

func TestValidateFranchisee(t *testing.T) {
	errs := ValidateFranchisee(createValidFranchiseeDraft())
	assert.Empty(t, errs)

	in := createValidFranchiseeDraft()
	in.FranchiseeBusinessName = ""
	errs = ValidateFranchisee(in)
	require.NotEmpty(t, errs.ForField("franchiseeBusinessName"))
	assert.Equal(t, "Business name is required", errs.ForField("franchiseeBusinessName")[0].Message)

	in = createValidFranchiseeDraft()
	in.RegisteredCompanyName = ""
	errs = ValidateFranchisee(in)
	require.NotEmpty(t, errs.ForField("registeredCompanyName"))
	assert.Equal(t, "Registered company name is required", errs.ForField("registeredCompanyName")[0].Message)
}

func TestValidateJobPosting(t *testing.T) {
	valid := models.JobPosting{
		Role:             "Barista",
		Location:         "Indiranagar, Bengaluru",
		SalaryMin:        12000,
		SalaryMax:        16000,
		Urgency:          "high",
		ShiftType:        "Morning",
		NumberOfOpenings: 2,
		Description:      "Prepare espresso drinks and manage the counter",
	}
	assert.Empty(t, ValidateJobPosting(valid))

	tests := []struct {
		name        string
		modify      func(*models.JobPosting)
		wantField   string
		wantMessage string
	}{
		{
			name:        "missing role",
			modify:      func(p *models.JobPosting) { p.Role = "" },
			wantField:   "role",
			wantMessage: "Role is required",
		},
		{
			name:        "missing location",
			modify:      func(p *models.JobPosting) { p.Location = "" },
			wantField:   "location",
			wantMessage: "Location is required",
		},
		{
			name:        "short description",
			modify:      func(p *models.JobPosting) { p.Description = "short" },
			wantField:   "description",
			wantMessage: "Description must be at least 10 characters",
		},
		{
			name:        "missing minimum salary",
			modify:      func(p *models.JobPosting) { p.SalaryMin = 0 },
			wantField:   "salaryMin",
			wantMessage: "Minimum salary is required",
		},
		{
			name:        "missing maximum salary",
			modify:      func(p *models.JobPosting) { p.SalaryMax = 0 },
			wantField:   "salaryMax",
			wantMessage: "Maximum salary is required",
		},
		{
			name:        "missing shift type",
			modify:      func(p *models.JobPosting) { p.ShiftType = "" },
			wantField:   "shiftType",
			wantMessage: "Shift type is required",
		},
		{
			name:        "missing openings",
			modify:      func(p *models.JobPosting) { p.NumberOfOpenings = 0 },
			wantField:   "numberOfOpenings",
			wantMessage: "Number of openings is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.modify(&p)

			errs := ValidateJobPosting(p)
			fieldErrs := errs.ForField(tt.wantField)
			require.NotEmpty(t, fieldErrs)
			assert.Equal(t, tt.wantMessage, fieldErrs[0].Message)
		})
	}
}
