// Package token issues and verifies the signed session tokens used by the
// HTTP layer. Logout works by revoking a token's unique id; the revocation
// set is in-memory only, like every other session-scoped piece of state.
package token

import (
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid or expired token")

type Claims struct {
	Email string
	ID    string
}

type Manager struct {
	secret []byte
	ttl    time.Duration

	mu      sync.Mutex
	revoked map[string]struct{}
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{
		secret:  []byte(secret),
		ttl:     ttl,
		revoked: make(map[string]struct{}),
	}
}

// Issue signs an HS256 access token for the account.
func (m *Manager) Issue(email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": email,
		"jti": uuid.NewString(),
		"iat": now.Unix(),
		"exp": now.Add(m.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify parses the token, checks the signature and expiry, and rejects
// revoked sessions.
func (m *Manager) Verify(raw string) (*Claims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	sub, _ := claims["sub"].(string)
	jti, _ := claims["jti"].(string)
	if sub == "" || jti == "" {
		return nil, ErrInvalidToken
	}

	m.mu.Lock()
	_, gone := m.revoked[jti]
	m.mu.Unlock()
	if gone {
		return nil, ErrInvalidToken
	}
	return &Claims{Email: sub, ID: jti}, nil
}

// Revoke invalidates a single session. Accounts and histories are untouched.
func (m *Manager) Revoke(id string) {
	m.mu.Lock()
	m.revoked[id] = struct{}{}
	m.mu.Unlock()
}
