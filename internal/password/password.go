// Package password stores and checks user credentials as salted bcrypt
// digests. Plaintext passwords never leave this package's call frames.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrNoPassword means the account has no stored digest at all, as
	// opposed to a digest the submitted password failed to match.
	ErrNoPassword = errors.New("no password set")

	// ErrMismatch means the submitted password does not reproduce the
	// stored digest (or the digest is malformed).
	ErrMismatch = errors.New("password mismatch")
)

// Hash produces a salted bcrypt digest of plaintext. Each call salts
// freshly, so hashing the same input twice yields different digests.
func Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext reproduces the stored digest. A nil or
// empty digest yields ErrNoPassword; any other failure, including a
// malformed digest, yields ErrMismatch.
func Verify(digest *string, plaintext string) error {
	if digest == nil || *digest == "" {
		return ErrNoPassword
	}
	if bcrypt.CompareHashAndPassword([]byte(*digest), []byte(plaintext)) != nil {
		return ErrMismatch
	}
	return nil
}
