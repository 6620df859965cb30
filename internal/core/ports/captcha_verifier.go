package ports

import "context"

// CaptchaVerifier checks a client-solved CAPTCHA token against the
// upstream verification service. Implementations fail closed: transport
// errors and malformed responses report false, never a distinct
// retryable state.
type CaptchaVerifier interface {
	Verify(ctx context.Context, token, remoteIP string) bool
}
