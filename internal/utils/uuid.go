package utils

import "github.com/google/uuid"

type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// IsValidID reports whether s is a well-formed UUID. Malformed resource
// identities are treated by callers as not-found, never as a distinct
// parse-error class.
func IsValidID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
