// Package otp adapts SMS one-time-code providers to the two-factor enrollment flow.
package otp

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/twilio/twilio-go"
	"github.com/twilio/twilio-go/client"
	verify "github.com/twilio/twilio-go/rest/verify/v2"

	"github.com/benx421/easydinar/internal/config"
)

// ErrNotConfigured is returned when the provider credentials are missing
var ErrNotConfigured = errors.New("twilio verify is not configured")

const (
	statusApproved = "approved"
	channelSMS     = "sms"
)

// verifyAPI is the part of the Twilio Verify v2 service this adapter calls
type verifyAPI interface {
	CreateVerification(serviceSid string, params *verify.CreateVerificationParams) (*verify.VerifyV2Verification, error)
	CreateVerificationCheck(serviceSid string, params *verify.CreateVerificationCheckParams) (*verify.VerifyV2VerificationCheck, error)
}

// TwilioVerify sends and checks codes with Twilio Verify
type TwilioVerify struct {
	api        verifyAPI
	serviceSID string
	configured bool
}

// NewTwilioVerify creates a Verify client. A nil httpClient uses http.DefaultClient.
func NewTwilioVerify(cfg config.TwoFactorConfig, httpClient *http.Client) *TwilioVerify {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	base := &client.Client{
		Credentials: client.NewCredentials(cfg.TwilioAccountSID, cfg.TwilioAuthToken),
		HTTPClient:  httpClient,
	}
	base.SetAccountSid(cfg.TwilioAccountSID)

	rest := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.TwilioAccountSID,
		Password: cfg.TwilioAuthToken,
		Client:   base,
	})

	return &TwilioVerify{
		api:        rest.VerifyV2,
		serviceSID: cfg.TwilioServiceSID,
		configured: cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" && cfg.TwilioServiceSID != "",
	}
}

// StartVerification sends an SMS code to phone and returns the verification sid
func (t *TwilioVerify) StartVerification(ctx context.Context, phone string) (string, error) {
	if !t.configured {
		return "", ErrNotConfigured
	}

	params := &verify.CreateVerificationParams{}
	params.SetTo(phone)
	params.SetChannel(channelSMS)

	resp, err := call(ctx, func() (*verify.VerifyV2Verification, error) {
		return t.api.CreateVerification(t.serviceSID, params)
	})
	if err != nil {
		return "", fmt.Errorf("start verification: %w", err)
	}
	if resp == nil || resp.Sid == nil {
		return "", errors.New("start verification: response carries no sid")
	}
	return *resp.Sid, nil
}

// CheckCode reports whether code is the approved code for phone.
// An expired or unknown verification is a rejected code, not an error.
func (t *TwilioVerify) CheckCode(ctx context.Context, phone, code string) (bool, error) {
	if !t.configured {
		return false, ErrNotConfigured
	}

	params := &verify.CreateVerificationCheckParams{}
	params.SetTo(phone)
	params.SetCode(code)

	resp, err := call(ctx, func() (*verify.VerifyV2VerificationCheck, error) {
		return t.api.CreateVerificationCheck(t.serviceSID, params)
	})
	if err != nil {
		var restErr *client.TwilioRestError
		if errors.As(err, &restErr) && restErr.Status == http.StatusNotFound {
			return false, nil
		}
		return false, fmt.Errorf("check verification: %w", err)
	}
	return resp != nil && resp.Status != nil && *resp.Status == statusApproved, nil
}

type result[T any] struct {
	value T
	err   error
}

// call runs fn and gives up when ctx is done. The SDK takes no context, so an
// abandoned request is bounded by the HTTP client's own timeout.
func call[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	done := make(chan result[T], 1)
	go func() {
		v, err := fn()
		done <- result[T]{value: v, err: err}
	}()

	select {
	case r := <-done:
		return r.value, r.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
