package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// TokenBytes is the entropy drawn per session token. 256 bits keeps the
// collision probability negligible without any coordination between
// concurrent registrations.
const TokenBytes = 32

// NewSessionToken returns an opaque, URL-safe session credential.
func NewSessionToken() (string, error) {
	buf := make([]byte, TokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating session token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
