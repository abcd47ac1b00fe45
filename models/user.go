package models

import "time"

// User represents an account entity used for authentication and resource
// ownership. Sensitive fields must never be exposed outside trusted
// boundaries.
type User struct {
	// UserID is the opaque unique identifier of the user (UUID string).
	// Exposed via JSON as "_id" to match the public API representation.
	UserID string `json:"_id"`

	// Name is the display name of the user. Trimmed and non-empty.
	Name string `json:"name"`

	// Email is the unique, trimmed, RFC-parseable address the user
	// authenticates with.
	Email string `json:"email"`

	// Password carries the plaintext password on inbound signup/login
	// requests only. It is never populated on outbound responses; use
	// PublicView to build an external representation.
	Password string `json:"password,omitempty"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// Never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// PublicView returns the external representation of the user: identity,
// name, and email only. Password material never leaves the server.
func (u User) PublicView() User {
	return User{
		UserID: u.UserID,
		Name:   u.Name,
		Email:  u.Email,
	}
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
