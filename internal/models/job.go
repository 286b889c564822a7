// internal/models/job.go
package models

// ApplicationStatus is the state of a worker's application to a job
// listing. Assigned once at finalize time by an external decision
// source; not transitioned afterwards in this core.
type ApplicationStatus string

const (
	StatusUnderReview        ApplicationStatus = "under_review"
	StatusRejected           ApplicationStatus = "rejected"
	StatusInterviewScheduled ApplicationStatus = "interview_scheduled"
	StatusSelected           ApplicationStatus = "selected"
)

// ApplicationStatuses lists every legal status value.
var ApplicationStatuses = []ApplicationStatus{
	StatusUnderReview,
	StatusRejected,
	StatusInterviewScheduled,
	StatusSelected,
}

// Valid reports whether s is one of the enumerated statuses.
func (s ApplicationStatus) Valid() bool {
	for _, known := range ApplicationStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// JobListing is an immutable entry from the job catalog.
type JobListing struct {
	ID             string `json:"id"`
	RestaurantName string `json:"restaurantName"`
	Role           string `json:"role"`
	PayRate        string `json:"payRate"`
	ShiftTiming    string `json:"shiftTiming"`
	Location       string `json:"location"`
	Logo           string `json:"logo,omitempty"`
}

// AppliedJob is a JobListing snapshot plus the application outcome.
// InterviewDate is set only when Status is interview_scheduled.
type AppliedJob struct {
	JobListing
	Status        ApplicationStatus `json:"status"`
	InterviewDate string            `json:"interviewDate,omitempty"`
}
