package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a bcrypt hash from the given plaintext password.
// bcrypt generates a fresh salt on every call, so equal passwords produce
// different hashes and the plaintext is never stored anywhere.
//
// Returns a non-nil error if the password exceeds bcrypt's length limit or
// hashing fails.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword compares a stored bcrypt hash against a candidate plaintext
// password. Returns true only if the hash was derived from the candidate.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
