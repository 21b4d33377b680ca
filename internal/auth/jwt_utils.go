package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Tokens last one week.
const tokenLifetime = 7 * 24 * time.Hour

// Claims defines what is inside the token. Only the user ID is embedded;
// the role is looked up from the database on every request so role changes
// take effect without re-login.
type Claims struct {
	UserID string `json:"sub"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies bearer tokens with a process-wide key.
type TokenIssuer struct {
	key []byte
}

func NewTokenIssuer(secret string) *TokenIssuer {
	return &TokenIssuer{key: []byte(secret)}
}

// Issue creates a signed JWT bound to the given user ID.
func (t *TokenIssuer) Issue(userID string) (string, error) {
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.key)
}

// Resolve checks the signature and expiry and returns the embedded user ID.
// Tampered, malformed, or expired tokens all come back as an error.
func (t *TokenIssuer) Resolve(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return t.key, nil
	})
	if err != nil {
		return "", err
	}

	if !token.Valid || claims.UserID == "" {
		return "", errors.New("invalid token")
	}

	return claims.UserID, nil
}
