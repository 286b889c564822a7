// internal/storage/postgres.go
package storage

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	apperrors "qsrhire/internal/common/errors"
	"qsrhire/internal/common/logger"
	"qsrhire/internal/models"
)

// Postgres is the database-backed Gateway implementation. Tables mirror
// the flat record layout: required text/integer columns plus nullable
// optional columns, with array-valued fields stored as text arrays.
type Postgres struct {
	db  *sql.DB
	log logger.Logger
}

func NewPostgres(db *sql.DB, log logger.Logger) *Postgres {
	return &Postgres{db: db, log: log}
}

func (p *Postgres) CreateWorkerRegistration(ctx context.Context, draft models.WorkerDraft) (*models.WorkerRegistration, error) {
	defer observe("create_worker", time.Now())

	record := models.WorkerRegistration{
		ID:          uuid.New().String(),
		WorkerDraft: draft,
		Status:      models.RegistrationPending,
	}

	query := `
		INSERT INTO employee_registrations (
			id, full_name, age, gender, phone_number, email, password,
			languages_known, region, skills, past_work_details,
			work_proof_url, video_intro_url, certification_tags,
			aadhaar_number, pan_number, id_proof_url, terms_accepted,
			status, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, NOW()
		)`

	_, err := p.db.ExecContext(ctx, query,
		record.ID,
		record.FullName,
		record.Age,
		record.Gender,
		record.PhoneNumber,
		nullable(record.Email),
		record.Password,
		pq.Array(record.LanguagesKnown),
		record.Region,
		pq.Array(record.Skills),
		nullable(record.PastWorkDetails),
		nullable(record.WorkProofURL),
		nullable(record.VideoIntroURL),
		pq.Array(record.CertificationTags),
		record.AadhaarNumber,
		nullable(record.PANNumber),
		record.IDProofURL,
		record.TermsAccepted,
		string(record.Status),
	)
	if err != nil {
		p.log.Error("Failed to insert worker registration", map[string]interface{}{
			"registrationId": record.ID,
			"error":          err.Error(),
		})
		return nil, apperrors.NewDatabaseInsertFailedError(err)
	}

	p.log.Info("Worker registration persisted", map[string]interface{}{
		"registrationId": record.ID,
		"region":         record.Region,
	})
	return &record, nil
}

func (p *Postgres) GetWorkerRegistration(ctx context.Context, id string) (*models.WorkerRegistration, error) {
	defer observe("get_worker", time.Now())

	query := `
		SELECT id, full_name, age, gender, phone_number, email, password,
		       languages_known, region, skills, past_work_details,
		       work_proof_url, video_intro_url, certification_tags,
		       aadhaar_number, pan_number, id_proof_url, terms_accepted, status
		FROM employee_registrations
		WHERE id = $1`

	var (
		record                                            models.WorkerRegistration
		email, pastWork, workProof, videoIntro, panNumber sql.NullString
		status                                            string
	)
	err := p.db.QueryRowContext(ctx, query, id).Scan(
		&record.ID,
		&record.FullName,
		&record.Age,
		&record.Gender,
		&record.PhoneNumber,
		&email,
		&record.Password,
		pq.Array(&record.LanguagesKnown),
		&record.Region,
		pq.Array(&record.Skills),
		&pastWork,
		&workProof,
		&videoIntro,
		pq.Array(&record.CertificationTags),
		&record.AadhaarNumber,
		&panNumber,
		&record.IDProofURL,
		&record.TermsAccepted,
		&status,
	)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewRegistrationNotFoundError(id)
	}
	if err != nil {
		return nil, apperrors.NewDatabaseConnectionFailedError(err)
	}

	record.Email = email.String
	record.PastWorkDetails = pastWork.String
	record.WorkProofURL = workProof.String
	record.VideoIntroURL = videoIntro.String
	record.PANNumber = panNumber.String
	record.Status = models.RegistrationStatus(status)
	return &record, nil
}

func (p *Postgres) CreateEmployerRegistration(ctx context.Context, draft models.EmployerDraft) (*models.EmployerRegistration, error) {
	defer observe("create_employer", time.Now())

	record := models.EmployerRegistration{
		ID:            uuid.New().String(),
		EmployerDraft: draft,
		Status:        models.RegistrationPending,
	}

	query := `
		INSERT INTO qsr_registrations (
			id, phone_number, restaurant_brand_name, registered_business_name,
			poc_full_name, poc_email, contact_number, restaurant_address,
			city, state, pincode, registration_number, fssai_license,
			gst_number, pan_number, gst_certificate_url, fssai_certificate_url,
			business_registration_proof_url, pan_card_url, bank_account_proof_url,
			fire_safety_certificate_url, municipal_noc_url, shop_exterior_photo_url,
			details_accuracy_confirmed, verification_consent, status, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
			$21, $22, $23, $24, $25, $26, NOW()
		)`

	_, err := p.db.ExecContext(ctx, query,
		record.ID,
		record.PhoneNumber,
		record.RestaurantBrandName,
		nullable(record.RegisteredBusinessName),
		record.POCFullName,
		record.POCEmail,
		record.ContactNumber,
		record.RestaurantAddress,
		record.City,
		record.State,
		record.Pincode,
		record.RegistrationNumber,
		record.FSSAILicense,
		record.GSTNumber,
		record.PANNumber,
		record.GSTCertificateURL,
		record.FSSAICertificateURL,
		record.BusinessRegistrationProofURL,
		record.PANCardURL,
		record.BankAccountProofURL,
		nullable(record.FireSafetyCertificateURL),
		nullable(record.MunicipalNOCURL),
		nullable(record.ShopExteriorPhotoURL),
		record.DetailsAccuracyConfirmed,
		record.VerificationConsent,
		string(record.Status),
	)
	if err != nil {
		p.log.Error("Failed to insert employer registration", map[string]interface{}{
			"registrationId": record.ID,
			"error":          err.Error(),
		})
		return nil, apperrors.NewDatabaseInsertFailedError(err)
	}

	p.log.Info("Employer registration persisted", map[string]interface{}{
		"registrationId": record.ID,
		"brand":          record.RestaurantBrandName,
	})
	return &record, nil
}

func (p *Postgres) GetEmployerRegistration(ctx context.Context, id string) (*models.EmployerRegistration, error) {
	defer observe("get_employer", time.Now())

	query := `
		SELECT id, phone_number, restaurant_brand_name, registered_business_name,
		       poc_full_name, poc_email, contact_number, restaurant_address,
		       city, state, pincode, registration_number, fssai_license,
		       gst_number, pan_number, gst_certificate_url, fssai_certificate_url,
		       business_registration_proof_url, pan_card_url, bank_account_proof_url,
		       fire_safety_certificate_url, municipal_noc_url, shop_exterior_photo_url,
		       details_accuracy_confirmed, verification_consent, status
		FROM qsr_registrations
		WHERE id = $1`

	var (
		record                             models.EmployerRegistration
		businessName, fireCert, noc, photo sql.NullString
		status                             string
	)
	err := p.db.QueryRowContext(ctx, query, id).Scan(
		&record.ID,
		&record.PhoneNumber,
		&record.RestaurantBrandName,
		&businessName,
		&record.POCFullName,
		&record.POCEmail,
		&record.ContactNumber,
		&record.RestaurantAddress,
		&record.City,
		&record.State,
		&record.Pincode,
		&record.RegistrationNumber,
		&record.FSSAILicense,
		&record.GSTNumber,
		&record.PANNumber,
		&record.GSTCertificateURL,
		&record.FSSAICertificateURL,
		&record.BusinessRegistrationProofURL,
		&record.PANCardURL,
		&record.BankAccountProofURL,
		&fireCert,
		&noc,
		&photo,
		&record.DetailsAccuracyConfirmed,
		&record.VerificationConsent,
		&status,
	)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewRegistrationNotFoundError(id)
	}
	if err != nil {
		return nil, apperrors.NewDatabaseConnectionFailedError(err)
	}

	record.RegisteredBusinessName = businessName.String
	record.FireSafetyCertificateURL = fireCert.String
	record.MunicipalNOCURL = noc.String
	record.ShopExteriorPhotoURL = photo.String
	record.Status = models.RegistrationStatus(status)
	return &record, nil
}

func (p *Postgres) CreateFranchiseeRegistration(ctx context.Context, draft models.FranchiseeDraft) (*models.FranchiseeRegistration, error) {
	defer observe("create_franchisee", time.Now())

	record := models.FranchiseeRegistration{
		ID:              uuid.New().String(),
		FranchiseeDraft: draft,
		Status:          models.RegistrationPending,
	}

	query := `
		INSERT INTO franchisee_registrations (
			id, phone_number, franchisee_business_name, registered_company_name,
			poc_full_name, poc_email, contact_number, business_address,
			city, state, pincode, status, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW()
		)`

	_, err := p.db.ExecContext(ctx, query,
		record.ID,
		record.PhoneNumber,
		record.FranchiseeBusinessName,
		record.RegisteredCompanyName,
		record.POCFullName,
		record.POCEmail,
		record.ContactNumber,
		record.BusinessAddress,
		record.City,
		record.State,
		record.Pincode,
		string(record.Status),
	)
	if err != nil {
		p.log.Error("Failed to insert franchisee registration", map[string]interface{}{
			"registrationId": record.ID,
			"error":          err.Error(),
		})
		return nil, apperrors.NewDatabaseInsertFailedError(err)
	}

	p.log.Info("Franchisee registration persisted", map[string]interface{}{
		"registrationId": record.ID,
		"business":       record.FranchiseeBusinessName,
	})
	return &record, nil
}

func (p *Postgres) GetFranchiseeRegistration(ctx context.Context, id string) (*models.FranchiseeRegistration, error) {
	defer observe("get_franchisee", time.Now())

	query := `
		SELECT id, phone_number, franchisee_business_name, registered_company_name,
		       poc_full_name, poc_email, contact_number, business_address,
		       city, state, pincode, status
		FROM franchisee_registrations
		WHERE id = $1`

	var (
		record models.FranchiseeRegistration
		status string
	)
	err := p.db.QueryRowContext(ctx, query, id).Scan(
		&record.ID,
		&record.PhoneNumber,
		&record.FranchiseeBusinessName,
		&record.RegisteredCompanyName,
		&record.POCFullName,
		&record.POCEmail,
		&record.ContactNumber,
		&record.BusinessAddress,
		&record.City,
		&record.State,
		&record.Pincode,
		&status,
	)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewRegistrationNotFoundError(id)
	}
	if err != nil {
		return nil, apperrors.NewDatabaseConnectionFailedError(err)
	}

	record.Status = models.RegistrationStatus(status)
	return &record, nil
}

// nullable maps an empty string to SQL NULL.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
