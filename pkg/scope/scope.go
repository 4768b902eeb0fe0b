package scope

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Scope is the authenticated request scope extracted from a verified token.
type Scope struct {
	UserID string
	Email  string
}

// Manager verifies bearer tokens for the authenticated API surface.
// Token issuance is handled by the identity service, not this backend.
type Manager interface {
	Verify(token string) (Scope, error)
}

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")
)

type claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

type jwtManager struct {
	secret []byte
}

// NewJWTManager creates an HMAC-signed JWT verifier.
func NewJWTManager(secret string) Manager {
	return &jwtManager{secret: []byte(secret)}
}

func (m *jwtManager) Verify(token string) (Scope, error) {
	var cl claims
	parsed, err := jwt.ParseWithClaims(token, &cl, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Scope{}, ErrExpiredToken
		}
		return Scope{}, ErrInvalidToken
	}
	if !parsed.Valid || cl.Subject == "" {
		return Scope{}, ErrInvalidToken
	}
	if cl.ExpiresAt != nil && cl.ExpiresAt.Before(time.Now()) {
		return Scope{}, ErrExpiredToken
	}

	return Scope{UserID: cl.Subject, Email: cl.Email}, nil
}
