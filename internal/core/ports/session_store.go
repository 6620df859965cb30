package ports

import (
	"context"
	"time"
)

// SessionStore is an opaque key-value store with per-key expiry, used to
// hold admin session tokens. Implementations must expire keys after ttl;
// there is no delete — sessions are never explicitly revoked.
type SessionStore interface {
	// Put stores value under key for ttl.
	Put(ctx context.Context, key, value string, ttl time.Duration) error

	// Get returns the value stored under key, or "" when the key is
	// absent or has expired. Absence is not an error.
	Get(ctx context.Context, key string) (string, error)
}
