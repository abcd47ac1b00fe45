package service

import (
	"context"

	"github.com/jvreeken/boodschapp/models"
)

// AuthService covers the full account and token lifecycle: registration,
// credential verification, token issuance, resolution, and revocation.
type AuthService interface {
	// SignUp validates and registers a new account. The returned user never
	// carries password material.
	SignUp(ctx context.Context, user models.User) (models.User, error)

	// Login verifies credentials and returns the matched user for token
	// issuance by the caller. A missing account and a wrong password are
	// deliberately indistinguishable.
	Login(ctx context.Context, email, password string) (models.User, error)

	// IssueToken signs a JWT for the user and appends it to the user's
	// persisted token collection. The save completes before the token is
	// returned; no partial-issue state is observable.
	IssueToken(ctx context.Context, user models.User) (models.Token, error)

	// Authenticate resolves a raw token string to its user: signature and
	// claim verification first, then a store lookup confirming the token is
	// still present in the user's collection. A cryptographically valid but
	// revoked token fails here.
	Authenticate(ctx context.Context, tokenString string) (models.User, error)

	// RevokeToken removes the exact token string from the user's persisted
	// collection, invalidating it immediately.
	RevokeToken(ctx context.Context, userID, token string) error
}

// ListService implements owner-scoped shopping-list operations. Every method
// takes the authenticated owner's id; cross-user access surfaces as
// not-found.
type ListService interface {
	CreateList(ctx context.Context, creatorID, name string) (models.List, error)
	Lists(ctx context.Context, creatorID string) ([]models.List, error)
	ListByID(ctx context.Context, creatorID, listID string) (models.List, error)
	UpdateListName(ctx context.Context, creatorID, listID, name string) (models.List, error)
	DeleteList(ctx context.Context, creatorID, listID string) (models.List, error)
}
