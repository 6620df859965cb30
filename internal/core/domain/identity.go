package domain

import (
	"crypto/sha256"
	"encoding/hex"
)

// UnknownIPFallback is hashed in place of the client address when the
// transport could not determine one.
const UnknownIPFallback = "unknown"

// DeriveUserID computes the stable pseudonymous handle for a submitter:
// the first 8 hex characters of SHA-256 over the client IP (or the
// fallback marker). The handle is deliberately global — the same visitor
// gets the same id on every site — and deliberately short: it is a
// display identity, not a security identifier, so 32 bits of collision
// resistance is enough and no raw IP is ever stored.
func DeriveUserID(clientIP string) string {
	if clientIP == "" {
		clientIP = UnknownIPFallback
	}
	sum := sha256.Sum256([]byte(clientIP))
	return hex.EncodeToString(sum[:])[:8]
}
