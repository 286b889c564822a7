// internal/models/employer.go
package models

// EmployerDraft holds a QSR outlet's single-step onboarding submission:
// business identity, point of contact, address, compliance identifiers
// and document references.
type EmployerDraft struct {
	PhoneNumber                  string `json:"phoneNumber"`
	RestaurantBrandName          string `json:"restaurantBrandName"`
	RegisteredBusinessName       string `json:"registeredBusinessName,omitempty"`
	POCFullName                  string `json:"pocFullName"`
	POCEmail                     string `json:"pocEmail"`
	ContactNumber                string `json:"contactNumber"`
	RestaurantAddress            string `json:"restaurantAddress"`
	City                         string `json:"city"`
	State                        string `json:"state"`
	Pincode                      string `json:"pincode"`
	RegistrationNumber           string `json:"registrationNumber"`
	FSSAILicense                 string `json:"fssaiLicense"`
	GSTNumber                    string `json:"gstNumber"`
	PANNumber                    string `json:"panNumber"`
	GSTCertificateURL            string `json:"gstCertificateUrl"`
	FSSAICertificateURL          string `json:"fssaiCertificateUrl"`
	BusinessRegistrationProofURL string `json:"businessRegistrationProofUrl"`
	PANCardURL                   string `json:"panCardUrl"`
	BankAccountProofURL          string `json:"bankAccountProofUrl"`
	FireSafetyCertificateURL     string `json:"fireSafetyCertificateUrl,omitempty"`
	MunicipalNOCURL              string `json:"municipalNocUrl,omitempty"`
	ShopExteriorPhotoURL         string `json:"shopExteriorPhotoUrl,omitempty"`
	DetailsAccuracyConfirmed     bool   `json:"detailsAccuracyConfirmed"`
	VerificationConsent          bool   `json:"verificationConsent"`
}

// EmployerRegistration is the immutable persisted employer record.
type EmployerRegistration struct {
	ID string `json:"id"`
	EmployerDraft
	Status RegistrationStatus `json:"status"`
}

// FranchiseeDraft holds a franchisee operator's onboarding submission.
type FranchiseeDraft struct {
	PhoneNumber            string `json:"phoneNumber"`
	FranchiseeBusinessName string `json:"franchiseeBusinessName"`
	RegisteredCompanyName  string `json:"registeredCompanyName"`
	POCFullName            string `json:"pocFullName"`
	POCEmail               string `json:"pocEmail"`
	ContactNumber          string `json:"contactNumber"`
	BusinessAddress        string `json:"businessAddress"`
	City                   string `json:"city"`
	State                  string `json:"state"`
	Pincode                string `json:"pincode"`
}

// FranchiseeRegistration is the immutable persisted franchisee record.
type FranchiseeRegistration struct {
	ID string `json:"id"`
	FranchiseeDraft
	Status RegistrationStatus `json:"status"`
}

// JobPosting is an employer-side vacancy on the dashboard.
type JobPosting struct {
	ID                string `json:"id"`
	Role              string `json:"role"`
	Location          string `json:"location"`
	SalaryMin         int    `json:"salaryMin"`
	SalaryMax         int    `json:"salaryMax"`
	Urgency           string `json:"urgency"` // "high" or "low"
	ShiftType         string `json:"shiftType"`
	NumberOfOpenings  int    `json:"numberOfOpenings"`
	Description       string `json:"description"`
	ApplicationsCount int    `json:"applicationsCount"`
	PostedOn          string `json:"postedOn"`
}

// Applicant is a worker snapshot shown to an employer for a posting.
type Applicant struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Email               string   `json:"email"`
	Phone               string   `json:"phone"`
	Experience          string   `json:"experience"`
	Skills              []string `json:"skills"`
	Location            string   `json:"location"`
	IsVerified          bool     `json:"isVerified"`
	TrainingCompleted   bool     `json:"trainingCompleted"`
	CertificateObtained bool     `json:"certificateObtained"`
}

// EmployeeStatus is the roster state of a hired worker.
type EmployeeStatus string

const (
	EmployeeActive  EmployeeStatus = "active"
	EmployeeOnLeave EmployeeStatus = "on_leave"
)

// Employee is a hired worker on an employer's roster, with attendance
// counters maintained by the dashboard board.
type Employee struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Role           string         `json:"role"`
	Location       string         `json:"location"`
	Email          string         `json:"email"`
	Phone          string         `json:"phone"`
	JoiningDate    string         `json:"joiningDate"`
	Status         EmployeeStatus `json:"status"`
	DaysWorked     int            `json:"daysWorked"`
	DaysAbsent     int            `json:"daysAbsent"`
	AttendanceRate float64        `json:"attendanceRate"`
}

// Feedback is a manager's rating of an employee.
type Feedback struct {
	ID          string `json:"id"`
	Rating      int    `json:"rating"` // 1..5
	Comment     string `json:"comment"`
	Date        string `json:"date"`
	SubmittedBy string `json:"submittedBy"`
}
