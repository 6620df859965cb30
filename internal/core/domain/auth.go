package domain

import "errors"

var ErrInvalidPassword = errors.New("invalid admin password")
var ErrUnauthorized = errors.New("missing or invalid session token")
var ErrCaptchaFailed = errors.New("captcha verification failed")
var ErrMissingParams = errors.New("missing required parameters")

// SessionValid is the value stored against a session token in the
// credential store. Presence of the key with this value, before TTL
// expiry, is the whole of session validity — there is no logout.
const SessionValid = "valid"
