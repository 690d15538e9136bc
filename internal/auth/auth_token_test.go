package auth_test

import (
	"encoding/base64"
	"testing"

	"go-smbops/internal/auth"

	"github.com/stretchr/testify/assert"
)

func TestNewToken(t *testing.T) {
	a, err := auth.NewToken(auth.SessionTokenBytes)
	assert.NoError(t, err)

	b, err := auth.NewToken(auth.SessionTokenBytes)
	assert.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.Len(t, a, 32)

	raw, err := base64.RawURLEncoding.DecodeString(a)
	assert.NoError(t, err)
	assert.Len(t, raw, auth.SessionTokenBytes)
}
