package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestFindBySubject(t *testing.T) {
	store := NewInMemoryStore()
	store.Save(context.Background(), User{Subject: "1001", Username: "john"})

	user, err := store.FindBySubject(context.Background(), "1001")
	require.NoError(t, err)
	assert.Equal(t, "john", user.Username)

	_, err = store.FindBySubject(context.Background(), "9999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindByCredentials(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)

	store := NewInMemoryStore()
	store.Save(context.Background(), User{Subject: "1001", Username: "john", PasswordHash: hash})

	user, err := store.FindByCredentials(context.Background(), "john", "secret")
	require.NoError(t, err)
	assert.Equal(t, "1001", user.Subject)

	_, err = store.FindByCredentials(context.Background(), "john", "wrong")
	assert.ErrorIs(t, err, ErrNotFound)

	// The stored hash must not itself work as a password.
	_, err = store.FindByCredentials(context.Background(), "john", hash)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPasswordsStoredHashed(t *testing.T) {
	store := NewDemoStore()

	user, err := store.FindBySubject(context.Background(), "1001")
	require.NoError(t, err)
	assert.NotEqual(t, "john", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("john")))
}

func TestDemoStoreSeeded(t *testing.T) {
	store := NewDemoStore()

	user, err := store.FindByCredentials(context.Background(), "john", "john")
	require.NoError(t, err)
	assert.Equal(t, "1001", user.Subject)
	assert.Equal(t, "John Smith", user.Claims["name"])
	assert.NotZero(t, user.AuthenticatedAt)
}
