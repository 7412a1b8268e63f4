package otp

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	verify "github.com/twilio/twilio-go/rest/verify/v2"

	"github.com/benx421/easydinar/internal/config"
)

// redirect sends every request to target, keeping path and query
type redirect struct {
	target *url.URL
	next   http.RoundTripper
}

func (r redirect) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.URL.Scheme = r.target.Scheme
	req.URL.Host = r.target.Host
	req.Host = r.target.Host
	return r.next.RoundTrip(req)
}

func newTestVerify(t *testing.T, handler http.HandlerFunc) *TwilioVerify {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	target, err := url.Parse(server.URL)
	require.NoError(t, err)

	return NewTwilioVerify(config.TwoFactorConfig{
		TwilioAccountSID: "AC123",
		TwilioAuthToken:  "secret",
		TwilioServiceSID: "VA456",
	}, &http.Client{Transport: redirect{target: target, next: http.DefaultTransport}})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestStartVerification(t *testing.T) {
	tv := newTestVerify(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/Services/VA456/Verifications", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "AC123", user)
		assert.Equal(t, "secret", pass)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "+21698765432", r.PostForm.Get("To"))
		assert.Equal(t, "sms", r.PostForm.Get("Channel"))

		writeJSON(w, http.StatusCreated, map[string]string{"sid": "VEabc", "status": "pending"})
	})

	sid, err := tv.StartVerification(context.Background(), "+21698765432")

	require.NoError(t, err)
	assert.Equal(t, "VEabc", sid)
}

func TestStartVerification_ProviderError(t *testing.T) {
	tv := newTestVerify(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]any{"code": 60200, "message": "Invalid parameter: To", "status": 400})
	})

	_, err := tv.StartVerification(context.Background(), "+1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid parameter")
}

func TestCheckCode(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    any
		want    bool
		wantErr bool
	}{
		{name: "approved", status: http.StatusOK, body: map[string]string{"sid": "VE1", "status": "approved"}, want: true},
		{name: "wrong code stays pending", status: http.StatusOK, body: map[string]string{"sid": "VE1", "status": "pending"}, want: false},
		{name: "expired verification", status: http.StatusNotFound, body: map[string]any{"code": 20404, "message": "not found", "status": 404}, want: false},
		{name: "provider outage", status: http.StatusServiceUnavailable, body: map[string]any{"code": 20500, "message": "unavailable", "status": 503}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tv := newTestVerify(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v2/Services/VA456/VerificationCheck", r.URL.Path)
				require.NoError(t, r.ParseForm())
				assert.Equal(t, "+21698765432", r.PostForm.Get("To"))
				assert.Equal(t, "123456", r.PostForm.Get("Code"))

				writeJSON(w, tt.status, tt.body)
			})

			got, err := tv.CheckCode(context.Background(), "+21698765432", "123456")

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTwilioVerify_NotConfigured(t *testing.T) {
	tv := NewTwilioVerify(config.TwoFactorConfig{}, nil)

	_, err := tv.StartVerification(context.Background(), "+21698765432")
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = tv.CheckCode(context.Background(), "+21698765432", "1234")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

// blockingAPI never answers until released
type blockingAPI struct {
	release chan struct{}
}

func (b blockingAPI) CreateVerification(string, *verify.CreateVerificationParams) (*verify.VerifyV2Verification, error) {
	<-b.release
	return nil, errors.New("released")
}

func (b blockingAPI) CreateVerificationCheck(string, *verify.CreateVerificationCheckParams) (*verify.VerifyV2VerificationCheck, error) {
	<-b.release
	return nil, errors.New("released")
}

func TestTwilioVerify_HonoursContext(t *testing.T) {
	api := blockingAPI{release: make(chan struct{})}
	defer close(api.release)
	tv := &TwilioVerify{api: api, serviceSID: "VA456", configured: true}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := tv.StartVerification(ctx, "+21698765432")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	_, err = tv.CheckCode(ctx, "+21698765432", "123456")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
