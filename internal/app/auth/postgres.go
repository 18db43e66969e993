package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"carai/internal/app/db"
)

// PostgresStore is the durable CredentialStore backed by the users table.
// Uniqueness is enforced by the database constraint, so concurrent
// registrations of the same username resolve to exactly one winner.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore wraps an initialized connection pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Create inserts the credential pair, mapping the unique-constraint violation
// to ErrDuplicateUser.
func (s *PostgresStore) Create(ctx context.Context, username string, passwordHash string) error {
	query := `INSERT INTO users (username, password_hash) VALUES ($1, $2)`

	_, err := s.pool.Exec(ctx, query, username, passwordHash)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return ErrDuplicateUser
		}
		return fmt.Errorf("error inserting user: %w", err)
	}

	return nil
}

// GetHash returns the stored digest for the username.
func (s *PostgresStore) GetHash(ctx context.Context, username string) (string, error) {
	query := `SELECT password_hash FROM users WHERE username = $1`

	var hash string
	err := s.pool.QueryRow(ctx, query, username).Scan(&hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("error fetching user: %w", err)
	}

	return hash, nil
}
