package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/jvreeken/boodschapp/internal/config"
	"github.com/jvreeken/boodschapp/internal/logger"
	"github.com/jvreeken/boodschapp/internal/store"
	"github.com/jvreeken/boodschapp/internal/utils"
	"github.com/jvreeken/boodschapp/models"
)

const minPasswordLength = 6

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and the JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up
	// users and their token collections.
	userRepository store.UserRepository

	// ids generates opaque unique identifiers for new accounts.
	ids *utils.UUIDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		ids:            utils.NewUUIDGenerator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// SignUp creates a new user account.
//
// Name and email are trimmed before validation. All violated constraints are
// collected into a single [ValidationError]: empty name, missing or
// unparseable email, password shorter than six characters. The password is
// bcrypt-hashed with a fresh salt and never persisted or returned in
// plaintext.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - A *ValidationError if any field constraint fails.
//   - [store.ErrEmailAlreadyExists] if the email is taken.
//   - A wrapped storage error if the repository call fails.
func (a *authService) SignUp(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.Name = strings.TrimSpace(user.Name)
	user.Email = strings.TrimSpace(user.Email)

	var violations []string
	if user.Name == "" {
		violations = append(violations, "name must not be empty")
	}
	if user.Email == "" {
		violations = append(violations, "email must not be empty")
	} else if _, err := mail.ParseAddress(user.Email); err != nil {
		violations = append(violations, fmt.Sprintf("%s is not a valid email", user.Email))
	}
	if len(user.Password) < minPasswordLength {
		violations = append(violations, "password must be at least 6 characters")
	}

	if len(violations) > 0 {
		log.Error().Strs("violations", violations).Msg("invalid user data provided")
		return models.User{}, &ValidationError{Violations: violations}
	}

	hash, err := utils.HashPassword(user.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user.UserID = a.ids.Generate()
	user.Password = ""
	user.PasswordHash = hash

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It looks up the account by email and compares the stored bcrypt hash
// against the supplied password. Unknown email and wrong password both
// surface as ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return models.User{}, ErrInvalidCredentials
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Str("email", email).Msg("login attempt for unknown email")
			return models.User{}, ErrInvalidCredentials
		}

		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.CheckPassword(foundUser.PasswordHash, password) {
		log.Debug().
			Str("id", foundUser.UserID).
			Str("email", foundUser.Email).
			Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// IssueToken issues a signed JWT for the given user and appends it to the
// user's persisted token collection.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim and the fixed "auth" scope, and
// expires after tokenDuration. The store write completes before the token is
// returned, so a token the caller ever sees is always revocable.
func (a *authService) IssueToken(ctx context.Context, user models.User) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	if err := a.userRepository.AddToken(ctx, user.UserID, token.Scope, token.SignedString); err != nil {
		log.Err(err).Str("id", user.UserID).Msg("persisting issued token failed")
		return models.Token{}, fmt.Errorf("persisting issued token failed: %w", err)
	}

	return token, nil
}

// Authenticate resolves a raw JWT string to its user.
//
// Verification is two-step: the signature, issuer, expiry, and scope claims
// are checked first, then the store is consulted for a user whose id matches
// the subject claim and whose token collection still contains this exact
// string. The second step is what makes logout effective immediately — a
// cryptographically valid but revoked token no longer resolves.
//
// Any failure is normalised to ErrTokenIsExpiredOrInvalid so that callers do
// not learn why a token was rejected.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}

	user, err := a.userRepository.FindUserByToken(ctx, token.UserID, tokenString, models.TokenScopeAuth)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Str("id", token.UserID).Msg("valid token is not in the user's collection")
			return models.User{}, ErrTokenIsExpiredOrInvalid
		}

		log.Err(err).Str("id", token.UserID).Msg("user search by token failed")
		return models.User{}, fmt.Errorf("user search by token failed: %w", err)
	}

	return user, nil
}

// RevokeToken removes the exact token string from the user's persisted
// collection and persists the change. The token's cryptographic validity is
// irrelevant afterwards.
func (a *authService) RevokeToken(ctx context.Context, userID, token string) error {
	log := logger.FromContext(ctx)

	if err := a.userRepository.RemoveToken(ctx, userID, token); err != nil {
		log.Err(err).Str("id", userID).Msg("token revocation failed")
		return fmt.Errorf("token revocation failed: %w", err)
	}

	return nil
}
