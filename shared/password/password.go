// Package password hashes the admin secret saved from the settings page.
package password

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const Cost = bcrypt.DefaultCost

var (
	ErrEmptyPassword   = errors.New("password cannot be empty")
	ErrInvalidPassword = errors.New("invalid password")
	ErrHashingPassword = errors.New("error hashing password")
	ErrMalformedHash   = errors.New("stored password hash is malformed")
)

func Hash(secret string) (string, error) {
	if secret == "" {
		return "", ErrEmptyPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), Cost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}

	return string(hashed), nil
}

// Verify checks secret against a bcrypt hash.
func Verify(secret, hash string) error {
	if secret == "" || hash == "" {
		return ErrInvalidPassword
	}

	switch err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)); {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrInvalidPassword
	default:
		return fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}
}

// IsHash reports whether value is a bcrypt hash rather than a plain secret.
func IsHash(value string) bool {
	_, err := bcrypt.Cost([]byte(value))
	return err == nil
}

// Matches compares secret with a stored value that is either a bcrypt hash or,
// for credentials imported from the browser dashboard, the plain secret.
func Matches(secret, stored string) bool {
	if secret == "" || stored == "" {
		return false
	}

	if IsHash(stored) {
		return Verify(secret, stored) == nil
	}

	return subtle.ConstantTimeCompare([]byte(secret), []byte(stored)) == 1
}
