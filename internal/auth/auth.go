package auth

import (
	"fmt"
	"time"

	"autobid-server/internal/aucterrors"
	model "autobid-server/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// SessionTTL is the lifetime of an issued session token
const SessionTTL = 72 * time.Hour

// SessionManager signs and verifies HS256 session tokens carrying the
// principal's identity claims.
type SessionManager struct {
	secret []byte
}

// NewSessionManager creates a SessionManager over the given signing secret
func NewSessionManager(secret string) *SessionManager {
	return &SessionManager{secret: []byte(secret)}
}

type sessionClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Photo string `json:"photo"`
	jwt.RegisteredClaims
}

// Issue signs a session token for p
func (m *SessionManager) Issue(p model.Principal) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Email: p.Email,
		Name:  p.Name,
		Photo: p.Photo,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("auth: sign session token: %w", err)
	}
	return token, nil
}

// Verify parses and validates a session token and returns the principal it
// asserts. Every failure mode (missing, malformed, expired, bad signature)
// collapses into ErrUnauthenticated so callers cannot distinguish them.
func (m *SessionManager) Verify(tokenString string) (model.Principal, error) {
	if tokenString == "" {
		return model.Principal{}, aucterrors.ErrUnauthenticated
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return model.Principal{}, aucterrors.ErrUnauthenticated
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || claims.Email == "" {
		return model.Principal{}, aucterrors.ErrUnauthenticated
	}

	return model.Principal{Email: claims.Email, Name: claims.Name, Photo: claims.Photo}, nil
}
