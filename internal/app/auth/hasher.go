/*
Package auth implements credential storage and verification for the CarAI server.

It defines the CredentialStore abstraction with in-memory and PostgreSQL
implementations, the password Hasher seam, and the Manager that orchestrates
registration and login on top of them.
*/
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// Hasher converts a plaintext password into a stored digest and verifies
// candidates against it. Keeping this behind an interface lets the digest
// scheme be swapped without touching the Manager's contract.
type Hasher interface {
	// Hash produces the stored digest for a plaintext password.
	Hash(password string) (string, error)

	// Verify reports whether the candidate password matches the stored digest.
	Verify(storedHash string, password string) bool
}

// DigestHasher hashes passwords with plain unsalted SHA-256.
// The digest is deterministic: the same input always yields the same output.
// This scheme is a known hardening gap kept for behavioral parity with the
// original application; production deployments use BcryptHasher instead.
type DigestHasher struct{}

// Hash returns the hex-encoded SHA-256 digest of the password. It never fails.
func (DigestHasher) Hash(password string) (string, error) {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:]), nil
}

// Verify compares in constant time to avoid leaking digest prefixes.
func (DigestHasher) Verify(storedHash string, password string) bool {
	sum := sha256.Sum256([]byte(password))
	candidate := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(storedHash), []byte(candidate)) == 1
}

// BcryptHasher hashes passwords with bcrypt at the default cost. Used with the
// durable PostgreSQL store, where salted digests are the expected scheme.
type BcryptHasher struct{}

// Hash produces a salted bcrypt digest of the password.
func (BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether the candidate password matches the bcrypt digest.
func (BcryptHasher) Verify(storedHash string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)) == nil
}
