package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/commentbox/comment-system/internal/api/metrics"
	"github.com/commentbox/comment-system/internal/core/domain"
	"github.com/commentbox/comment-system/internal/core/ports"
)

const (
	sessionTokenBytes = 32
	defaultSessionTTL = 30 * 24 * time.Hour
)

// AuthService authenticates the single shared admin credential and issues
// opaque session tokens into the credential store.
type AuthService struct {
	sessions   ports.SessionStore
	credential string
	sessionTTL time.Duration
	log        zerolog.Logger
}

// NewAuthService builds an AuthService. credential is either a bcrypt
// hash or the plaintext admin password; sessionTTL defaults to 30 days
// when non-positive.
func NewAuthService(sessions ports.SessionStore, credential string, sessionTTL time.Duration, log zerolog.Logger) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = defaultSessionTTL
	}
	return &AuthService{sessions: sessions, credential: credential, sessionTTL: sessionTTL, log: log}
}

// Login verifies the admin password and issues a fresh session token:
// 32 random bytes, hex encoded, stored as valid for the session TTL.
func (s *AuthService) Login(ctx context.Context, password string) (string, error) {
	if password == "" || !s.passwordMatches(password) {
		s.log.Warn().Msg("admin login rejected")
		return "", domain.ErrInvalidPassword
	}

	token, err := generateSessionToken()
	if err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}

	if err := s.sessions.Put(ctx, token, domain.SessionValid, s.sessionTTL); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}

	metrics.SessionsIssuedTotal.Inc()
	s.log.Info().Msg("admin session issued")
	return token, nil
}

// Validate reports whether token refers to a live, unexpired session.
// Store failures count as invalid — an unreadable credential store must
// not grant admin access.
func (s *AuthService) Validate(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}
	value, err := s.sessions.Get(ctx, token)
	if err != nil {
		s.log.Error().Err(err).Msg("session lookup failed")
		return false
	}
	return value == domain.SessionValid
}

// passwordMatches supports two credential forms: a bcrypt hash (the
// recommended deployment) or a plaintext password compared in constant
// time.
func (s *AuthService) passwordMatches(password string) bool {
	if strings.HasPrefix(s.credential, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(s.credential), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(s.credential), []byte(password)) == 1
}

func generateSessionToken() (string, error) {
	b := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
