// Package users holds the demo server's user accounts. It backs the SPI
// implementations in the transport layer; a real deployment would replace it
// with its identity store.
package users

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrNotFound reports that no user matched the lookup.
var ErrNotFound = errors.New("users: not found")

// User is one demo account. PasswordHash is a bcrypt hash produced by
// HashPassword. Claims is keyed by claim name, optionally language-tagged
// ("name#ja"); values are whatever should appear in tokens and userinfo
// responses.
type User struct {
	Subject         string
	Username        string
	PasswordHash    string
	AuthenticatedAt int64
	Acr             string
	Claims          map[string]any
}

// HashPassword creates the bcrypt hash a Store keeps in place of the
// plaintext password.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("users: could not hash password: %w", err)
	}
	return string(hashed), nil
}

// Store is interface-driven to keep the transport glue testable and to allow
// swapping in a real identity backend without rewiring the handlers.
type Store interface {
	FindBySubject(ctx context.Context, subject string) (User, error)
	FindByCredentials(ctx context.Context, username, password string) (User, error)
}
