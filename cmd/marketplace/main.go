// cmd/marketplace/main.go
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"qsrhire/internal/application"
	"qsrhire/internal/common/aws"
	"qsrhire/internal/common/config"
	"qsrhire/internal/common/database"
	apperrors "qsrhire/internal/common/errors"
	"qsrhire/internal/common/logger"
	"qsrhire/internal/employer"
	"qsrhire/internal/jobs"
	"qsrhire/internal/models"
	"qsrhire/internal/notify"
	"qsrhire/internal/otp"
	"qsrhire/internal/registration"
	"qsrhire/internal/storage"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

// workerRegistrationRequest carries all three signup steps in one call
// for clients that collect the full form before submitting.
type workerRegistrationRequest struct {
	BasicInfo struct {
		FullName        string   `json:"fullName"`
		Age             int      `json:"age"`
		Gender          string   `json:"gender"`
		PhoneNumber     string   `json:"phoneNumber"`
		Email           string   `json:"email"`
		Password        string   `json:"password"`
		ConfirmPassword string   `json:"confirmPassword"`
		LanguagesKnown  []string `json:"languagesKnown"`
		Region          string   `json:"region"`
	} `json:"basicInfo"`
	WorkDetails struct {
		Skills            []string `json:"skills"`
		PastWorkDetails   string   `json:"pastWorkDetails"`
		WorkProofURL      string   `json:"workProofUrl"`
		VideoIntroURL     string   `json:"videoIntroUrl"`
		CertificationTags []string `json:"certificationTags"`
	} `json:"workDetails"`
	Verification struct {
		AadhaarNumber string `json:"aadhaarNumber"`
		PANNumber     string `json:"panNumber"`
		IDProofURL    string `json:"idProofUrl"`
		TermsAccepted bool   `json:"termsAccepted"`
	} `json:"verification"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	var validationErrs apperrors.ValidationErrors
	if errors.As(err, &validationErrs) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"code":   apperrors.ErrCodeValidationFailed,
			"errors": validationErrs,
		})
		return
	}

	var stdErr *apperrors.StandardError
	if errors.As(err, &stdErr) {
		status := http.StatusInternalServerError
		switch stdErr.Code {
		case apperrors.ErrCodeRegistrationNotFound:
			status = http.StatusNotFound
		case apperrors.ErrCodeDuplicateApplication:
			status = http.StatusConflict
		case apperrors.ErrCodeOTPInvalid, apperrors.ErrCodeOTPExpired:
			status = http.StatusBadRequest
		}
		writeJSON(w, status, stdErr)
		return
	}

	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func requirePost(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return false
	}
	return true
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting marketplace service...",
		zap.String("environment", cfg.App.Environment),
		zap.String("storageBackend", cfg.Storage.Backend),
	)

	ctx := context.Background()

	// --- Storage Gateway ---
	var gateway storage.Gateway
	switch cfg.Storage.Backend {
	case "postgres":
		var pgClient *database.PostgresClient
		err = retryWithBackoff(func() error {
			var err error
			pgClient, err = database.NewPostgres(cfg.Database.Postgres)
			if err != nil {
				return err
			}
			pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			return pgClient.Ping(pingCtx)
		}, 10, 2*time.Second, zapLog, "PostgreSQL connection")
		if err != nil {
			zapLog.Fatal("postgres init failed", zap.Error(err))
		}
		defer pgClient.Close()
		gateway = storage.NewPostgres(pgClient.DB, log)
	default:
		gateway = storage.NewMemory()
	}

	// --- Job Catalog ---
	catalog, err := jobs.LoadOrDefault(cfg.Catalog.Path, log)
	if err != nil {
		zapLog.Fatal("job catalog load failed", zap.Error(err))
	}
	zapLog.Info("Job catalog ready", zap.Int("listings", len(catalog)))

	// --- Notifications ---
	var codeSender otp.Sender = otp.NopSender{}
	var mailer notify.Mailer = notify.NopMailer{}
	if cfg.Notifications.Enabled {
		snsClient, err := aws.NewSNSClient(ctx, cfg.Notifications.AWSRegion)
		if err != nil {
			zapLog.Fatal("SNS client init failed", zap.Error(err))
		}
		codeSender = otp.NewSNSSender(snsClient, cfg.Notifications.SMSSenderID)

		sesClient, err := aws.NewSESClient(ctx, cfg.Notifications.AWSRegion)
		if err != nil {
			zapLog.Fatal("SES client init failed", zap.Error(err))
		}
		mailer = notify.NewSESMailer(sesClient, cfg.Notifications.SenderEmail, log)
	}

	// --- Phone Verification ---
	var otpService *otp.Service
	if cfg.Database.Redis.Address != "" {
		var redisClient *database.RedisClient
		err = retryWithBackoff(func() error {
			var err error
			redisClient, err = database.NewRedis(cfg.Database.Redis)
			if err != nil {
				return err
			}
			pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			return redisClient.Ping(pingCtx)
		}, 10, 2*time.Second, zapLog, "Redis connection")
		if err != nil {
			zapLog.Warn("redis unavailable, phone verification disabled", zap.Error(err))
		} else {
			defer redisClient.Close()
			otpService = otp.NewService(
				redisClient,
				codeSender,
				time.Duration(cfg.OTP.TTLSeconds)*time.Second,
				cfg.OTP.Digits,
				log,
			)
			zapLog.Info("Phone verification ready",
				zap.Int("ttlSeconds", cfg.OTP.TTLSeconds),
				zap.Int("digits", cfg.OTP.Digits),
			)
		}
	}

	applicationEngine := application.NewEngine(application.NewRandomSource(time.Now().UnixNano()), log)

	// --- HTTP Surface ---
	http.HandleFunc("/api/jobs", func(w http.ResponseWriter, r *http.Request) {
		view := jobs.NewView(catalog)
		criteria := jobs.Criteria{
			Roles:  r.URL.Query()["role"],
			Shifts: r.URL.Query()["shift"],
		}
		if criteria.IsZero() {
			writeJSON(w, http.StatusOK, view.Jobs())
			return
		}
		writeJSON(w, http.StatusOK, view.Apply(criteria))
	})

	http.HandleFunc("/api/workers/register", func(w http.ResponseWriter, r *http.Request) {
		if !requirePost(w, r) {
			return
		}
		var req workerRegistrationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}

		wf := registration.NewWorkflow(gateway, log, registration.WithMailer(mailer))
		if err := wf.Next(registration.BasicInfo(req.BasicInfo)); err != nil {
			writeError(w, err)
			return
		}
		if err := wf.Next(registration.WorkDetails(req.WorkDetails)); err != nil {
			writeError(w, err)
			return
		}
		record, err := wf.Submit(r.Context(), registration.Verification(req.Verification))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, record)
	})

	http.HandleFunc("/api/employers/register", func(w http.ResponseWriter, r *http.Request) {
		if !requirePost(w, r) {
			return
		}
		var draft models.EmployerDraft
		if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}
		record, err := employer.NewOnboarding(gateway, log).SubmitEmployer(r.Context(), draft)
		if err != nil {
			writeError(w, err)
			return
		}
		if err := mailer.SendRegistrationReceived(r.Context(), record.POCEmail, record.POCFullName); err != nil {
			log.Warn("employer confirmation email failed", map[string]interface{}{
				"registrationId": record.ID,
				"error":          err.Error(),
			})
		}
		writeJSON(w, http.StatusCreated, record)
	})

	http.HandleFunc("/api/franchisees/register", func(w http.ResponseWriter, r *http.Request) {
		if !requirePost(w, r) {
			return
		}
		var draft models.FranchiseeDraft
		if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}
		record, err := employer.NewOnboarding(gateway, log).SubmitFranchisee(r.Context(), draft)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, record)
	})

	http.HandleFunc("/api/applications/finalize", func(w http.ResponseWriter, r *http.Request) {
		if !requirePost(w, r) {
			return
		}
		var req struct {
			Job      models.JobListing   `json:"job"`
			Existing []models.AppliedJob `json:"existing"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}
		if err := applicationEngine.Apply(req.Job, req.Existing); err != nil {
			writeError(w, err)
			return
		}
		applied, err := applicationEngine.Finalize(req.Job)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, application.Prepend(req.Existing, applied))
	})

	http.HandleFunc("/api/otp/issue", func(w http.ResponseWriter, r *http.Request) {
		if !requirePost(w, r) {
			return
		}
		if otpService == nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "phone verification disabled"})
			return
		}
		var req struct {
			Phone string `json:"phone"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}
		if err := otpService.Issue(r.Context(), req.Phone); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusAccepted, map[string]string{"status": "sent"})
	})

	http.HandleFunc("/api/otp/verify", func(w http.ResponseWriter, r *http.Request) {
		if !requirePost(w, r) {
			return
		}
		if otpService == nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "phone verification disabled"})
			return
		}
		var req struct {
			Phone string `json:"phone"`
			Code  string `json:"code"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}
		if err := otpService.Verify(r.Context(), req.Phone, req.Code); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "verified"})
	})

	// --- Health & Metrics Server ---
	go func() {
		http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{
				"status": "healthy",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{
				"status": "ready",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.Handle("/metrics", promhttp.Handler())
		zapLog.Info("HTTP server listening", zap.String("address", cfg.Metrics.Address))
		if err := http.ListenAndServe(cfg.Metrics.Address, nil); err != nil {
			zapLog.Error("HTTP server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping...")
	zapLog.Info("Marketplace service stopped gracefully")
}
