package auth

import (
	"context"
	"errors"
	"sync"
)

// Sentinel errors returned by CredentialStore implementations. The Manager
// translates them into client-facing error codes.
var (
	// ErrDuplicateUser is returned when a registration targets an existing username.
	ErrDuplicateUser = errors.New("username already exists")

	// ErrUserNotFound is returned when the username has no stored credentials.
	ErrUserNotFound = errors.New("user not found")
)

// CredentialStore maps usernames to password digests. Usernames are unique and
// case-sensitive; Create never overwrites an existing entry.
type CredentialStore interface {
	// Create inserts (username, passwordHash). It fails with ErrDuplicateUser
	// if the username is already taken; concurrent Create calls for the same
	// username must admit at most one winner.
	Create(ctx context.Context, username string, passwordHash string) error

	// GetHash returns the stored digest for username, or ErrUserNotFound.
	GetHash(ctx context.Context, username string) (string, error)
}

// MemoryStore is the process-lifetime in-memory CredentialStore. It holds
// registered users only for as long as the process runs and serializes all
// mutations behind a mutex so duplicate registrations cannot race each other in.
type MemoryStore struct {
	mu    sync.Mutex
	users map[string]string
}

// NewMemoryStore returns an empty MemoryStore. The bootstrap account is seeded
// explicitly by the caller (see cmd/main.go), keeping the store itself free of
// configuration knowledge.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users: make(map[string]string),
	}
}

// Create inserts the credential pair unless the username is already present.
func (s *MemoryStore) Create(_ context.Context, username string, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[username]; exists {
		return ErrDuplicateUser
	}

	s.users[username] = passwordHash
	return nil
}

// GetHash returns the stored digest for the username.
func (s *MemoryStore) GetHash(_ context.Context, username string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	hash, exists := s.users[username]
	if !exists {
		return "", ErrUserNotFound
	}

	return hash, nil
}
