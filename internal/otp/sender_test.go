// internal/otp/sender_test.go
package otp

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "qsrhire/internal/common/errors"
)

type fakeSNS struct {
	lastInput *sns.PublishInput
	fail      bool
}

func (f *fakeSNS) Publish(_ context.Context, input *sns.PublishInput) (*sns.PublishOutput, error) {
	if f.fail {
		return nil, errors.New("sns unavailable")
	}
	f.lastInput = input
	return &sns.PublishOutput{}, nil
}

func TestSNSSenderSendCode(t *testing.T) {
	fake := &fakeSNS{}
	sender := NewSNSSender(fake, "QSRHIRE")

	require.NoError(t, sender.SendCode(context.Background(), "9876543210", "123456"))
	require.NotNil(t, fake.lastInput)
	assert.Equal(t, "+919876543210", *fake.lastInput.PhoneNumber)
	assert.Contains(t, *fake.lastInput.Message, "123456")
}

func TestSNSSenderSendCode_Failure(t *testing.T) {
	sender := NewSNSSender(&fakeSNS{fail: true}, "QSRHIRE")

	err := sender.SendCode(context.Background(), "9876543210", "123456")
	require.Error(t, err)

	var stdErr *apperrors.StandardError
	require.True(t, errors.As(err, &stdErr))
	assert.Equal(t, apperrors.ErrCodeOTPDeliveryFailed, stdErr.Code)
	assert.True(t, stdErr.Retryable)
}
