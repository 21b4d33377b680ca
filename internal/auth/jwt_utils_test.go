package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndResolve(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")

	token, err := issuer.Issue("user-42")
	require.NoError(t, err)

	userID, err := issuer.Resolve(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", userID)
}

func TestResolveTamperedSignature(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")

	token, err := issuer.Issue("user-42")
	require.NoError(t, err)

	// Flip the last character of the signature segment.
	tampered := token[:len(token)-1]
	if token[len(token)-1] == 'A' {
		tampered += "B"
	} else {
		tampered += "A"
	}

	_, err = issuer.Resolve(tampered)
	assert.Error(t, err)
}

func TestResolveWrongKey(t *testing.T) {
	token, err := NewTokenIssuer("key-one").Issue("user-42")
	require.NoError(t, err)

	_, err = NewTokenIssuer("key-two").Resolve(token)
	assert.Error(t, err)
}

func TestResolveExpiredToken(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")

	// Sign an already-expired token with the issuer's own key.
	claims := &Claims{
		UserID: "user-42",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = issuer.Resolve(expired)
	assert.Error(t, err)
}

func TestResolveGarbage(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")

	for _, token := range []string{"", "not.a.jwt", "aaaa"} {
		_, err := issuer.Resolve(token)
		assert.Error(t, err, "token %q should not resolve", token)
	}
}
