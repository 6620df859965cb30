package ports

import "context"

// AuthService authenticates the shared admin credential and validates
// issued session tokens.
type AuthService interface {
	// Login checks the password and, on success, issues a new session
	// token. Returns domain.ErrInvalidPassword on mismatch.
	Login(ctx context.Context, password string) (string, error)

	// Validate reports whether token refers to a live session.
	Validate(ctx context.Context, token string) bool
}
