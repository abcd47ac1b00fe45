package models

import "time"

// List represents a shopping list owned by exactly one user. All reads and
// mutations are filtered by both ListID and CreatorID so that one user's
// lists are never visible to another.
type List struct {
	// ListID is the opaque unique identifier of the list (UUID string).
	ListID string `json:"_id"`

	// Name is the display name of the list. Trimmed and non-empty.
	Name string `json:"name"`

	// CreatorID references the owning user. Required; set from the
	// authenticated identity at creation time and never changed afterwards.
	CreatorID string `json:"_creator"`

	// CreatedAt is the timestamp when the list was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the List model.
func (l List) TableName() string {
	return "lists"
}
