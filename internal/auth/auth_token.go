package auth

import (
	"crypto/rand"
	"encoding/base64"
)

const (
	SessionTokenBytes = 24
)

// NewToken returns n crypto-random bytes encoded as unpadded base64url.
func NewToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
