// internal/notify/notifier.go
package notify

import (
	"context"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	apperrors "qsrhire/internal/common/errors"
	"qsrhire/internal/common/logger"
)

// SESAPI is the slice of the SES client the mailer needs.
type SESAPI interface {
	SendEmail(ctx context.Context, input *ses.SendEmailInput) (*ses.SendEmailOutput, error)
}

// Mailer sends transactional email to applicants. Delivery is best
// effort: callers log failures and continue, a submission never fails
// because a confirmation could not be sent.
type Mailer interface {
	SendRegistrationReceived(ctx context.Context, to, name string) error
}

// SESMailer delivers via Amazon SES.
type SESMailer struct {
	client SESAPI
	sender string
	log    logger.Logger
}

func NewSESMailer(client SESAPI, sender string, log logger.Logger) *SESMailer {
	return &SESMailer{client: client, sender: sender, log: log}
}

func (m *SESMailer) SendRegistrationReceived(ctx context.Context, to, name string) error {
	subject := "We received your registration"
	body := fmt.Sprintf(
		"Hi %s,\n\nYour registration has been received and is pending review. "+
			"We will reach out once a reviewer has looked at it.\n",
		name,
	)

	input := &ses.SendEmailInput{
		Source: awssdk.String(m.sender),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: awssdk.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: awssdk.String(body)},
			},
		},
	}

	if _, err := m.client.SendEmail(ctx, input); err != nil {
		m.log.Warn("Registration confirmation email failed", map[string]interface{}{
			"to":    to,
			"error": err.Error(),
		})
		return apperrors.NewNotificationSendFailedError("email", err)
	}

	m.log.Info("Registration confirmation email sent", map[string]interface{}{
		"to": to,
	})
	return nil
}

// NopMailer discards all mail. Used when notifications are disabled.
type NopMailer struct{}

func (NopMailer) SendRegistrationReceived(context.Context, string, string) error {
	return nil
}
