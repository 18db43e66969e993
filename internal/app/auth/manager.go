package auth

import (
	"context"
	"errors"
	"regexp"
	"unicode/utf8"

	"carai/internal/pkg/errs"
	"carai/internal/pkg/logx"
)

var usernameRegex = regexp.MustCompile(`^[a-z0-9_]{4,20}$`)

const (
	// MinPasswordRunes is the minimum accepted password length, in runes.
	MinPasswordRunes = 6

	// MaxPasswordRunes is the maximum accepted password length, in runes.
	MaxPasswordRunes = 50
)

// Manager orchestrates registration and login against a CredentialStore.
type Manager struct {
	store  CredentialStore
	hasher Hasher
}

// NewManager builds a Manager over the given store and hashing scheme.
func NewManager(store CredentialStore, hasher Hasher) *Manager {
	return &Manager{
		store:  store,
		hasher: hasher,
	}
}

// Register validates the credential shape, hashes the password, and inserts
// the new account. A taken username is reported as ErrUserAlreadyExists and
// leaves the stored credentials untouched.
func (m *Manager) Register(ctx context.Context, username string, password string) *errs.CustomError {
	if !usernameRegex.MatchString(username) {
		return errs.NewError(errs.ErrInvalidUsername)
	}

	passwordLen := utf8.RuneCountInString(password)
	if passwordLen < MinPasswordRunes || passwordLen > MaxPasswordRunes {
		return errs.NewError(errs.ErrInvalidPassword)
	}

	passwordHash, err := m.hasher.Hash(password)
	if err != nil {
		logx.Error(err, "failed to hash password during registration")
		return errs.NewError(errs.ErrUnknown)
	}

	if err := m.store.Create(ctx, username, passwordHash); err != nil {
		if errors.Is(err, ErrDuplicateUser) {
			logx.Warn("registration conflict: username already exists", "username", username)
			return errs.NewError(errs.ErrUserAlreadyExists)
		}

		logx.Error(err, "failed to create user in credential store")
		return errs.NewError(errs.ErrUnknown)
	}

	return nil
}

// Authenticate reports whether the username exists and the password matches
// its stored digest. The unknown-user and wrong-password cases are
// indistinguishable to the caller so that account existence never leaks.
func (m *Manager) Authenticate(ctx context.Context, username string, password string) bool {
	storedHash, err := m.store.GetHash(ctx, username)
	if err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			logx.Error(err, "credential store lookup failed", "username", username)
		}
		return false
	}

	return m.hasher.Verify(storedHash, password)
}
