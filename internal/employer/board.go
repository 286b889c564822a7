// internal/employer/board.go
package employer

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	apperrors "qsrhire/internal/common/errors"
	"qsrhire/internal/common/logger"
	"qsrhire/internal/models"
)

// Board is the employer dashboard state: open postings, their
// applicants, the hired roster and per-employee feedback. One Board per
// employer account; safe for concurrent request handling.
type Board struct {
	mu         sync.RWMutex
	log        logger.Logger
	postings   []models.JobPosting
	applicants map[string][]models.Applicant
	employees  []models.Employee
	feedback   map[string][]models.Feedback
}

func NewBoard(log logger.Logger) *Board {
	return &Board{
		log:        log.WithFields(map[string]interface{}{"component": "employer_board"}),
		applicants: make(map[string][]models.Applicant),
		feedback:   make(map[string][]models.Feedback),
	}
}

// PostJob validates and publishes a vacancy, most recent first.
func (b *Board) PostJob(posting models.JobPosting) (*models.JobPosting, error) {
	if errs := ValidateJobPosting(posting); len(errs) > 0 {
		return nil, errs
	}

	posting.ID = uuid.New().String()
	posting.ApplicationsCount = 0
	if posting.PostedOn == "" {
		posting.PostedOn = time.Now().Format("2006-01-02")
	}

	b.mu.Lock()
	b.postings = append([]models.JobPosting{posting}, b.postings...)
	b.mu.Unlock()

	b.log.Info("job posted", map[string]interface{}{
		"postingId": posting.ID,
		"role":      posting.Role,
	})
	return &posting, nil
}

// Postings returns the published vacancies, most recent first.
func (b *Board) Postings() []models.JobPosting {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]models.JobPosting, len(b.postings))
	copy(out, b.postings)
	return out
}

// ClosePosting removes a vacancy and its applicant list.
func (b *Board) ClosePosting(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, p := range b.postings {
		if p.ID == id {
			b.postings = append(b.postings[:i], b.postings[i+1:]...)
			delete(b.applicants, id)
			return nil
		}
	}
	return apperrors.NewRegistrationNotFoundError(id)
}

// AddApplicant attaches a worker to a posting and bumps its counter.
func (b *Board) AddApplicant(postingID string, applicant models.Applicant) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	idx := -1
	for i, p := range b.postings {
		if p.ID == postingID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return apperrors.NewRegistrationNotFoundError(postingID)
	}

	for _, existing := range b.applicants[postingID] {
		if existing.ID == applicant.ID {
			return apperrors.NewDuplicateApplicationError(postingID)
		}
	}

	b.applicants[postingID] = append(b.applicants[postingID], applicant)
	b.postings[idx].ApplicationsCount++
	return nil
}

// Applicants returns the workers who applied to a posting.
func (b *Board) Applicants(postingID string) []models.Applicant {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]models.Applicant, len(b.applicants[postingID]))
	copy(out, b.applicants[postingID])
	return out
}

// Hire moves an applicant onto the roster for the posting's role.
func (b *Board) Hire(postingID, applicantID string) (*models.Employee, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var posting *models.JobPosting
	for i := range b.postings {
		if b.postings[i].ID == postingID {
			posting = &b.postings[i]
			break
		}
	}
	if posting == nil {
		return nil, apperrors.NewRegistrationNotFoundError(postingID)
	}

	for _, applicant := range b.applicants[postingID] {
		if applicant.ID != applicantID {
			continue
		}
		employee := models.Employee{
			ID:          uuid.New().String(),
			Name:        applicant.Name,
			Role:        posting.Role,
			Location:    posting.Location,
			Email:       applicant.Email,
			Phone:       applicant.Phone,
			JoiningDate: time.Now().Format("2006-01-02"),
			Status:      models.EmployeeActive,
		}
		b.employees = append(b.employees, employee)
		b.log.Info("applicant hired", map[string]interface{}{
			"postingId":  postingID,
			"employeeId": employee.ID,
		})
		return &employee, nil
	}
	return nil, apperrors.NewRegistrationNotFoundError(applicantID)
}

// Employees returns the hired roster.
func (b *Board) Employees() []models.Employee {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]models.Employee, len(b.employees))
	copy(out, b.employees)
	return out
}

// MarkAttendance records one day for an employee and recomputes the
// attendance rate.
func (b *Board) MarkAttendance(employeeID string, present bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.employees {
		if b.employees[i].ID != employeeID {
			continue
		}
		if present {
			b.employees[i].DaysWorked++
		} else {
			b.employees[i].DaysAbsent++
		}
		total := b.employees[i].DaysWorked + b.employees[i].DaysAbsent
		b.employees[i].AttendanceRate = float64(b.employees[i].DaysWorked) / float64(total) * 100
		return nil
	}
	return apperrors.NewRegistrationNotFoundError(employeeID)
}

// SetEmployeeStatus flips an employee between active and on leave.
func (b *Board) SetEmployeeStatus(employeeID string, status models.EmployeeStatus) error {
	if status != models.EmployeeActive && status != models.EmployeeOnLeave {
		return &apperrors.StandardError{
			Code:      apperrors.ErrCodeInvalidStatus,
			Message:   fmt.Sprintf("unknown employee status %q", status),
			Timestamp: time.Now().UTC(),
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.employees {
		if b.employees[i].ID == employeeID {
			b.employees[i].Status = status
			return nil
		}
	}
	return apperrors.NewRegistrationNotFoundError(employeeID)
}

// AddFeedback records a manager rating for an employee.
func (b *Board) AddFeedback(employeeID string, feedback models.Feedback) error {
	if feedback.Rating < 1 || feedback.Rating > 5 {
		return apperrors.ValidationErrors{{
			Field:   "rating",
			Code:    "OUT_OF_RANGE",
			Message: "Rating must be between 1 and 5",
		}}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	found := false
	for i := range b.employees {
		if b.employees[i].ID == employeeID {
			found = true
			break
		}
	}
	if !found {
		return apperrors.NewRegistrationNotFoundError(employeeID)
	}

	feedback.ID = uuid.New().String()
	if feedback.Date == "" {
		feedback.Date = time.Now().Format("2006-01-02")
	}
	b.feedback[employeeID] = append(b.feedback[employeeID], feedback)
	return nil
}

// Feedback returns the recorded ratings for an employee.
func (b *Board) Feedback(employeeID string) []models.Feedback {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]models.Feedback, len(b.feedback[employeeID]))
	copy(out, b.feedback[employeeID])
	return out
}
