// Package captcha implements the outbound Turnstile verification client.
package captcha

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/commentbox/comment-system/internal/api/metrics"
)

// DefaultVerifyURL is Cloudflare's siteverify endpoint.
const DefaultVerifyURL = "https://challenges.cloudflare.com/turnstile/v0/siteverify"

const defaultTimeout = 10 * time.Second

// TurnstileVerifier implements ports.CaptchaVerifier against the
// Cloudflare Turnstile siteverify API. It sits on the critical path of
// every unauthenticated write and fails closed: any transport error,
// non-2xx status, or undecodable body reports the token as invalid.
// There is no retry — a verifier outage blocks public writes.
type TurnstileVerifier struct {
	secret    string
	verifyURL string
	client    *http.Client
	log       zerolog.Logger
}

// NewTurnstileVerifier builds a verifier. verifyURL falls back to
// DefaultVerifyURL when empty; the HTTP client carries its own timeout
// so a hung upstream call stalls only the one request awaiting it.
func NewTurnstileVerifier(secret, verifyURL string, log zerolog.Logger) *TurnstileVerifier {
	if verifyURL == "" {
		verifyURL = DefaultVerifyURL
	}
	return &TurnstileVerifier{
		secret:    secret,
		verifyURL: verifyURL,
		client:    &http.Client{Timeout: defaultTimeout},
		log:       log,
	}
}

type verifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

// Verify posts the token, the server secret, and optionally the client
// IP to the siteverify endpoint and returns the upstream success flag.
func (v *TurnstileVerifier) Verify(ctx context.Context, token, remoteIP string) bool {
	form := url.Values{}
	form.Set("secret", v.secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		v.log.Error().Err(err).Msg("turnstile request build failed")
		metrics.CaptchaVerificationsTotal.WithLabelValues("error").Inc()
		return false
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		v.log.Warn().Err(err).Msg("turnstile verification transport failure")
		metrics.CaptchaVerificationsTotal.WithLabelValues("error").Inc()
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		v.log.Warn().Int("status", resp.StatusCode).Msg("turnstile verification unexpected status")
		metrics.CaptchaVerificationsTotal.WithLabelValues("error").Inc()
		return false
	}

	var out verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		v.log.Warn().Err(err).Msg("turnstile verification malformed response")
		metrics.CaptchaVerificationsTotal.WithLabelValues("error").Inc()
		return false
	}

	if !out.Success {
		v.log.Debug().Strs("error_codes", out.ErrorCodes).Msg("turnstile token rejected")
		metrics.CaptchaVerificationsTotal.WithLabelValues("fail").Inc()
		return false
	}

	metrics.CaptchaVerificationsTotal.WithLabelValues("pass").Inc()
	return true
}
