package users

import (
	"context"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// InMemoryStore keeps the demo accounts in a map. It intentionally favors
// clarity over performance.
type InMemoryStore struct {
	mu    sync.RWMutex
	users map[string]User
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{users: make(map[string]User)}
}

// Save inserts or replaces a user keyed by subject.
func (s *InMemoryStore) Save(_ context.Context, user User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.Subject] = user
}

func (s *InMemoryStore) FindBySubject(_ context.Context, subject string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if user, ok := s.users[subject]; ok {
		return user, nil
	}
	return User{}, ErrNotFound
}

func (s *InMemoryStore) FindByCredentials(_ context.Context, username, password string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Username != username {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil {
			return user, nil
		}
	}
	return User{}, ErrNotFound
}

// mustHash hashes a seed password. Seed passwords are well under bcrypt's
// length limit, so hashing cannot fail.
func mustHash(password string) string {
	hash, err := HashPassword(password)
	if err != nil {
		panic(err)
	}
	return hash
}

// NewDemoStore returns a store seeded with the accounts the demo flows use.
func NewDemoStore() *InMemoryStore {
	store := NewInMemoryStore()
	store.Save(context.Background(), User{
		Subject:         "1001",
		Username:        "john",
		PasswordHash:    mustHash("john"),
		AuthenticatedAt: time.Now().Unix(),
		Claims: map[string]any{
			"name":        "John Smith",
			"name#ja":     "ジョン・スミス",
			"email":       "john@example.com",
			"given_name":  "John",
			"family_name": "Smith",
		},
	})
	store.Save(context.Background(), User{
		Subject:         "1002",
		Username:        "jane",
		PasswordHash:    mustHash("jane"),
		AuthenticatedAt: time.Now().Unix(),
		Claims: map[string]any{
			"name":  "Jane Smith",
			"email": "jane@example.com",
		},
	})
	return store
}
