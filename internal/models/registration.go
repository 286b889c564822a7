// internal/models/registration.go
package models

// RegistrationStatus is the review state of a persisted registration.
// Transitions out of "pending" are performed by the reviewer system,
// never by this process.
type RegistrationStatus string

const (
	RegistrationPending  RegistrationStatus = "pending"
	RegistrationApproved RegistrationStatus = "approved"
	RegistrationRejected RegistrationStatus = "rejected"
)

// WorkerDraft is the mutable registration data accumulated across the
// three worker signup steps. Optional fields stay empty until their
// step provides them.
type WorkerDraft struct {
	FullName          string   `json:"fullName"`
	Age               int      `json:"age"`
	Gender            string   `json:"gender"`
	PhoneNumber       string   `json:"phoneNumber"`
	Email             string   `json:"email,omitempty"`
	Password          string   `json:"password"`
	LanguagesKnown    []string `json:"languagesKnown"`
	Region            string   `json:"region"`
	Skills            []string `json:"skills"`
	PastWorkDetails   string   `json:"pastWorkDetails,omitempty"`
	WorkProofURL      string   `json:"workProofUrl,omitempty"`
	VideoIntroURL     string   `json:"videoIntroUrl,omitempty"`
	CertificationTags []string `json:"certificationTags,omitempty"`
	AadhaarNumber     string   `json:"aadhaarNumber"`
	PANNumber         string   `json:"panNumber,omitempty"`
	IDProofURL        string   `json:"idProofUrl"`
	TermsAccepted     bool     `json:"termsAccepted"`
}

// WorkerRegistration is the immutable persisted form of a WorkerDraft.
// Created exactly once by the storage gateway.
type WorkerRegistration struct {
	ID string `json:"id"`
	WorkerDraft
	Status RegistrationStatus `json:"status"`
}
