// internal/otp/service.go
package otp

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	snstypes "github.com/aws/aws-sdk-go-v2/service/sns/types"
	goredis "github.com/redis/go-redis/v9"

	"qsrhire/internal/common/database"
	apperrors "qsrhire/internal/common/errors"
	"qsrhire/internal/common/logger"
	"qsrhire/internal/common/metrics"
)

const keyPrefix = "otp:"

// Sender delivers a verification code to a phone number.
type Sender interface {
	SendCode(ctx context.Context, phone, code string) error
}

// SNSAPI is the slice of the SNS client the sender needs.
type SNSAPI interface {
	Publish(ctx context.Context, input *sns.PublishInput) (*sns.PublishOutput, error)
}

// SNSSender delivers codes as SMS through Amazon SNS.
type SNSSender struct {
	client   SNSAPI
	senderID string
}

func NewSNSSender(client SNSAPI, senderID string) *SNSSender {
	return &SNSSender{client: client, senderID: senderID}
}

func (s *SNSSender) SendCode(ctx context.Context, phone, code string) error {
	message := fmt.Sprintf("%s is your verification code. It expires shortly.", code)
	input := &sns.PublishInput{
		PhoneNumber: awssdk.String("+91" + phone),
		Message:     awssdk.String(message),
	}
	if s.senderID != "" {
		input.MessageAttributes = map[string]snstypes.MessageAttributeValue{
			"AWS.SNS.SMS.SenderID": {
				DataType:    awssdk.String("String"),
				StringValue: awssdk.String(s.senderID),
			},
		}
	}
	if _, err := s.client.Publish(ctx, input); err != nil {
		return &apperrors.StandardError{
			Code:      apperrors.ErrCodeOTPDeliveryFailed,
			Message:   "Verification code delivery failed",
			Details:   err.Error(),
			Retryable: true,
			Timestamp: time.Now().UTC(),
		}
	}
	return nil
}

// NopSender swallows codes. Used when SMS delivery is disabled.
type NopSender struct{}

func (NopSender) SendCode(context.Context, string, string) error { return nil }

// Service issues and checks short-lived phone verification codes. Codes
// live in Redis under a TTL; a successful verification consumes the
// code.
type Service struct {
	redis  *database.RedisClient
	sender Sender
	ttl    time.Duration
	digits int
	log    logger.Logger
}

func NewService(redis *database.RedisClient, sender Sender, ttl time.Duration, digits int, log logger.Logger) *Service {
	return &Service{
		redis:  redis,
		sender: sender,
		ttl:    ttl,
		digits: digits,
		log:    log.WithFields(map[string]interface{}{"component": "otp"}),
	}
}

// Issue generates a fresh code for the phone, stores it under the TTL
// and hands it to the sender. A delivery failure discards the code.
func (s *Service) Issue(ctx context.Context, phone string) error {
	code, err := generateCode(s.digits)
	if err != nil {
		return err
	}

	key := keyPrefix + phone
	if err := s.redis.Set(ctx, key, code, s.ttl); err != nil {
		return apperrors.NewDatabaseConnectionFailedError(err)
	}

	if err := s.sender.SendCode(ctx, phone, code); err != nil {
		_ = s.redis.Del(ctx, key)
		s.log.Error("code delivery failed", map[string]interface{}{
			"phone": phone,
			"error": err.Error(),
		})
		return err
	}

	metrics.OTPIssued.Inc()
	s.log.Info("verification code issued", map[string]interface{}{
		"phone": phone,
		"ttl":   s.ttl.String(),
	})
	return nil
}

// Resend issues a fresh code, replacing any outstanding one and
// resetting the TTL.
func (s *Service) Resend(ctx context.Context, phone string) error {
	return s.Issue(ctx, phone)
}

// Verify checks the submitted code. A match consumes the stored code;
// an expired or never-issued code and a mismatch are distinct errors.
func (s *Service) Verify(ctx context.Context, phone, code string) error {
	key := keyPrefix + phone
	stored, err := s.redis.Get(ctx, key)
	if err == goredis.Nil {
		return apperrors.NewOTPExpiredError(phone)
	}
	if err != nil {
		return apperrors.NewDatabaseConnectionFailedError(err)
	}

	if stored != code {
		return apperrors.NewOTPInvalidError(phone)
	}

	if err := s.redis.Del(ctx, key); err != nil {
		return apperrors.NewDatabaseConnectionFailedError(err)
	}

	s.log.Info("phone verified", map[string]interface{}{"phone": phone})
	return nil
}

// generateCode returns a zero-padded numeric code of the given width
// from a cryptographic source.
func generateCode(digits int) (string, error) {
	max := big.NewInt(1)
	for i := 0; i < digits; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to generate code: %w", err)
	}
	return fmt.Sprintf("%0*d", digits, n), nil
}
