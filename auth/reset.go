package auth

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// ResetTokenTTL is the single window used both when stamping a token's
// expiry and when judging it at consumption. Keeping one constant is what
// makes the window symmetric.
const ResetTokenTTL = time.Hour

// NewResetToken returns a 20-byte cryptographically random token, hex
// encoded.
func NewResetToken() (string, error) {
	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
