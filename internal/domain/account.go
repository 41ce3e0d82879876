package domain

import (
	"strings"
	"time"
)

// Account is a registered identity keyed by email. Only the bcrypt hash of
// the password is ever stored.
type Account struct {
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NormalizeEmail canonicalizes an email for use as the account key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
