// internal/storage/postgres_test.go
package storage

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "qsrhire/internal/common/errors"
	"qsrhire/internal/common/logger"
	"qsrhire/internal/models"
)

func newMockGateway(t *testing.T) (*Postgres, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgres(db, logger.NewNoOpLogger()), mock
}

func TestPostgresCreateWorkerRegistration(t *testing.T) {
	gw, mock := newMockGateway(t)

	mock.ExpectExec("INSERT INTO employee_registrations").
		WillReturnResult(sqlmock.NewResult(1, 1))

	record, err := gw.CreateWorkerRegistration(context.Background(), createValidWorkerDraft())
	require.NoError(t, err)
	assert.NotEmpty(t, record.ID)
	assert.Equal(t, models.RegistrationPending, record.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCreateWorkerRegistration_InsertFailure(t *testing.T) {
	gw, mock := newMockGateway(t)

	mock.ExpectExec("INSERT INTO employee_registrations").
		WillReturnError(errors.New("connection refused"))

	_, err := gw.CreateWorkerRegistration(context.Background(), createValidWorkerDraft())
	require.Error(t, err)

	var stdErr *apperrors.StandardError
	require.True(t, errors.As(err, &stdErr))
	assert.Equal(t, apperrors.ErrCodeDatabaseInsertFailed, stdErr.Code)
	assert.True(t, stdErr.Retryable)
}

func TestPostgresGetWorkerRegistration(t *testing.T) {
	gw, mock := newMockGateway(t)

	columns := []string{
		"id", "full_name", "age", "gender", "phone_number", "email", "password",
		"languages_known", "region", "skills", "past_work_details",
		"work_proof_url", "video_intro_url", "certification_tags",
		"aadhaar_number", "pan_number", "id_proof_url", "terms_accepted", "status",
	}
	mock.ExpectQuery("SELECT (.+) FROM employee_registrations").
		WithArgs("reg-1").
		WillReturnRows(sqlmock.NewRows(columns).AddRow(
			"reg-1", "Ravi Kumar", 24, "Male", "9876543210", "ravi@example.com", "secret1",
			"{Hindi,English}", "Bangalore", "{Barista}", nil,
			nil, nil, "{}",
			"1234-5678-9012", nil, "uploaded/id-proof.jpg", true, "pending",
		))

	record, err := gw.GetWorkerRegistration(context.Background(), "reg-1")
	require.NoError(t, err)
	assert.Equal(t, "Ravi Kumar", record.FullName)
	assert.Equal(t, []string{"Hindi", "English"}, record.LanguagesKnown)
	assert.Equal(t, models.RegistrationPending, record.Status)
	assert.Empty(t, record.PastWorkDetails)
}

func TestPostgresGetWorkerRegistration_NotFound(t *testing.T) {
	gw, mock := newMockGateway(t)

	mock.ExpectQuery("SELECT (.+) FROM employee_registrations").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := gw.GetWorkerRegistration(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestPostgresCreateEmployerRegistration(t *testing.T) {
	gw, mock := newMockGateway(t)

	mock.ExpectExec("INSERT INTO qsr_registrations").
		WillReturnResult(sqlmock.NewResult(1, 1))

	record, err := gw.CreateEmployerRegistration(context.Background(), models.EmployerDraft{
		PhoneNumber:         "9876543210",
		RestaurantBrandName: "Cafe Aroma",
		POCFullName:         "Meera Shah",
		POCEmail:            "meera@cafearoma.in",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RegistrationPending, record.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCreateFranchiseeRegistration(t *testing.T) {
	gw, mock := newMockGateway(t)

	mock.ExpectExec("INSERT INTO franchisee_registrations").
		WillReturnResult(sqlmock.NewResult(1, 1))

	record, err := gw.CreateFranchiseeRegistration(context.Background(), models.FranchiseeDraft{
		PhoneNumber:            "9876501234",
		FranchiseeBusinessName: "Aroma Franchising",
		RegisteredCompanyName:  "Aroma Franchising Pvt Ltd",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, record.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
