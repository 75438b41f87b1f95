package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// VerificationTTL is how long an emailed verification link stays valid.
const VerificationTTL = 24 * time.Hour

// NewVerificationToken returns a fresh one-time verification token and its
// expiry. 16 random bytes (128 bits) from crypto/rand, hex-encoded, so the
// token is not guessable.
func NewVerificationToken() (string, time.Time, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate verification token: %w", err)
	}
	return hex.EncodeToString(buf), time.Now().Add(VerificationTTL), nil
}
