// Package store implements the PostgreSQL persistence layer. The external
// document database is the sole source of truth and sole synchronization
// point; this package performs no additional locking and relies on the
// database's own per-row atomicity guarantees.
package store

import (
	"context"

	"github.com/jvreeken/boodschapp/models"
)

// UserRepository persists user accounts and their active token collections.
type UserRepository interface {
	// CreateUser inserts a new user record. Returns ErrEmailAlreadyExists
	// when the email unique constraint is violated.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks up a user by email. Returns ErrNoUserWasFound
	// when no such user exists.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByToken looks up a user whose id matches userID and whose
	// persisted token collection still contains the exact token string with
	// the given scope. Returns ErrNoUserWasFound when no such pair exists,
	// which covers both revoked tokens and deleted users.
	FindUserByToken(ctx context.Context, userID, token, scope string) (models.User, error)

	// AddToken appends a token to the user's persisted token collection.
	AddToken(ctx context.Context, userID, scope, token string) error

	// RemoveToken removes the exact token string from the user's persisted
	// token collection. Removing an absent token is not an error.
	RemoveToken(ctx context.Context, userID, token string) error
}

// ListRepository persists shopping lists. Every read and mutation is
// owner-scoped: filtered by both list id and creator id.
type ListRepository interface {
	CreateList(ctx context.Context, list models.List) (models.List, error)

	// FindListsByOwner returns all lists owned by creatorID in store-native
	// order.
	FindListsByOwner(ctx context.Context, creatorID string) ([]models.List, error)

	// FindListByID returns the list with the given id owned by creatorID.
	// Returns ErrListNotFound when no such list exists or it is owned by a
	// different user; the two cases are indistinguishable to the caller.
	FindListByID(ctx context.Context, creatorID, listID string) (models.List, error)

	// UpdateListName renames the list and returns the post-update record.
	// ErrListNotFound semantics match FindListByID.
	UpdateListName(ctx context.Context, creatorID, listID, name string) (models.List, error)

	// DeleteList removes the list and returns its final state.
	// ErrListNotFound semantics match FindListByID.
	DeleteList(ctx context.Context, creatorID, listID string) (models.List, error)
}
