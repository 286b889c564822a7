// test/e2e/e2e_test.go
package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qsrhire/internal/application"
	"qsrhire/internal/common/database"
	"qsrhire/internal/common/logger"
	"qsrhire/internal/employer"
	"qsrhire/internal/jobs"
	"qsrhire/internal/models"
	"qsrhire/internal/notify"
	"qsrhire/internal/otp"
	"qsrhire/internal/registration"
	"qsrhire/internal/storage"
	"qsrhire/internal/uploads"
)

// captureSender records delivered verification codes.
type captureSender struct {
	lastCode string
}

func (s *captureSender) SendCode(_ context.Context, _, code string) error {
	s.lastCode = code
	return nil
}

// TestWorkerJourney walks the whole worker side: phone verification,
// three-step registration with an async id-proof upload, browsing and
// filtering the catalog, then applying to a job.
func TestWorkerJourney(t *testing.T) {
	ctx := context.Background()
	log := logger.NewTestLogger(t)
	gateway := storage.NewMemory()

	// Phone verification first.
	mr := miniredis.RunT(t)
	redisClient := &database.RedisClient{
		Client: goredis.NewClient(&goredis.Options{Addr: mr.Addr()}),
	}
	sender := &captureSender{}
	otpService := otp.NewService(redisClient, sender, 5*time.Minute, 6, log)

	require.NoError(t, otpService.Issue(ctx, "9876543210"))
	require.NoError(t, otpService.Verify(ctx, "9876543210", sender.lastCode))

	// Three-step registration with an upload that finishes mid-flow.
	wf := registration.NewWorkflow(gateway, log, registration.WithMailer(notify.NopMailer{}))

	require.NoError(t, wf.Next(registration.BasicInfo{
		FullName:        "Rajesh Kumar",
		Age:             24,
		Gender:          "Male",
		PhoneNumber:     "9876543210",
		Email:           "rajesh@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		LanguagesKnown:  []string{"Hindi", "English", "Marathi"},
		Region:          "Mumbai",
	}))

	require.NoError(t, wf.Next(registration.WorkDetails{
		Skills:          []string{"Barista", "Waiter"},
		PastWorkDetails: "Worked at Cafe Coffee Day for 2 years as a Barista",
	}))

	uploader := &uploads.Uploader{Delay: 5 * time.Millisecond}
	idProof := uploader.Start("id-proof.jpg")
	wf.RequireUpload(registration.StepVerification, "idProofUrl", idProof)
	require.Eventually(t, idProof.Ready, time.Second, time.Millisecond)

	record, err := wf.Submit(ctx, registration.Verification{
		AadhaarNumber: registration.FormatAadhaar("123456789012"),
		PANNumber:     "abcde1234f",
		TermsAccepted: true,
	})
	require.NoError(t, err)
	assert.Equal(t, models.RegistrationPending, record.Status)
	assert.Equal(t, "1234-5678-9012", record.AadhaarNumber)
	assert.Equal(t, "ABCDE1234F", record.PANNumber)
	assert.Equal(t, "uploaded/id-proof.jpg", record.IDProofURL)

	stored, err := gateway.GetWorkerRegistration(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, record.ID, stored.ID)

	// Browse, filter and apply.
	view := jobs.NewView(jobs.Default())
	baristaJobs := view.Apply(jobs.Criteria{Roles: []string{"Barista"}})
	require.Len(t, baristaJobs, 2)

	engine := application.NewEngine(application.NewRandomSource(7), log)
	var applied []models.AppliedJob

	job := baristaJobs[0]
	require.NoError(t, engine.Apply(job, applied))
	appliedJob, err := engine.Finalize(job)
	require.NoError(t, err)
	applied = application.Prepend(applied, appliedJob)

	require.Len(t, applied, 1)
	assert.True(t, applied[0].Status.Valid())
	assert.Error(t, engine.Apply(job, applied), "second application to the same job must fail")

	view.Clear()
	assert.Len(t, view.Jobs(), len(jobs.Default()))
}

// TestEmployerJourney covers outlet onboarding and the dashboard:
// posting a vacancy, reviewing applicants, hiring and attendance.
func TestEmployerJourney(t *testing.T) {
	ctx := context.Background()
	log := logger.NewTestLogger(t)
	gateway := storage.NewMemory()

	onboarding := employer.NewOnboarding(gateway, log)
	record, err := onboarding.SubmitEmployer(ctx, models.EmployerDraft{
		PhoneNumber:                  "9876543210",
		RestaurantBrandName:          "Cafe Aroma",
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
	})
	require.NoError(t, err)
	assert.Equal(t, models.RegistrationPending, record.Status)

	board := employer.NewBoard(log)
	posting, err := board.PostJob(models.JobPosting{
		Role:             "Barista",
		Location:         "Indiranagar, Bengaluru",
		SalaryMin:        12000,
		SalaryMax:        16000,
		Urgency:          "high",
		ShiftType:        "Morning",
		NumberOfOpenings: 2,
		Description:      "Prepare espresso drinks and manage the counter",
	})
	require.NoError(t, err)

	require.NoError(t, board.AddApplicant(posting.ID, models.Applicant{
		ID:     "worker-1",
		Name:   "Rajesh Kumar",
		Phone:  "9876543210",
		Skills: []string{"Barista", "Waiter"},
	}))

	employee, err := board.Hire(posting.ID, "worker-1")
	require.NoError(t, err)
	assert.Equal(t, "Barista", employee.Role)

	require.NoError(t, board.MarkAttendance(employee.ID, true))
	require.NoError(t, board.AddFeedback(employee.ID, models.Feedback{
		Rating:      5,
		Comment:     "Great first week",
		SubmittedBy: "Meera Shah",
	}))

	roster := board.Employees()
	require.Len(t, roster, 1)
	assert.Equal(t, 1, roster[0].DaysWorked)
	assert.InDelta(t, 100.0, roster[0].AttendanceRate, 0.01)
}
