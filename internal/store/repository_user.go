package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jvreeken/boodschapp/internal/logger"
	"github.com/jvreeken/boodschapp/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, credential lookup, and the user's active-token
// collection against the "users" and "user_tokens" tables.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (CreatedAt).
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.UserID, user.Name, user.Email, user.PasswordHash)

	var created models.User
	if err := row.Scan(&created.UserID, &created.Name, &created.Email, &created.PasswordHash, &created.CreatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("email", user.Email).Msg("error creating user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindUserByEmail retrieves the user record whose email matches the given
// address.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByEmail, email)

	if err := row.Scan(&foundUser.UserID, &foundUser.Name, &foundUser.Email, &foundUser.PasswordHash, &foundUser.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error finding user by email")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}

// FindUserByToken retrieves the user whose id matches userID and whose
// persisted token collection still contains the exact token string with the
// given scope.
//
// A cryptographically valid token whose row has been removed (logout) no
// longer matches, which is what makes revocation effective immediately.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByToken(ctx context.Context, userID, token, scope string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByToken, userID, token, scope)

	if err := row.Scan(&foundUser.UserID, &foundUser.Name, &foundUser.Email, &foundUser.PasswordHash, &foundUser.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByToken").Str("user_id", userID).Msg("error finding user by token")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}

// AddToken appends a token to the user's persisted token collection.
// Adding a token that is already present is not an error; the row is kept
// and the token stays live.
func (r *userRepository) AddToken(ctx context.Context, userID, scope, token string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, addToken, userID, scope, token); err != nil {
		log.Err(err).Str("func", "*userRepository.AddToken").Str("user_id", userID).Msg("error adding token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// RemoveToken removes the exact token string from the user's persisted token
// collection. Removing a token that is already absent is not an error.
func (r *userRepository) RemoveToken(ctx context.Context, userID, token string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, removeToken, userID, token); err != nil {
		log.Err(err).Str("func", "*userRepository.RemoveToken").Str("user_id", userID).Msg("error removing token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
