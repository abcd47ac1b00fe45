package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenScopeAuth is the only token scope issued by the service. It
// distinguishes the single supported token purpose from any future kind.
const TokenScopeAuth = "auth"

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.),
// extended with the custom "scope" claim carried by every issued token.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in the x-auth header.
//
// UserID is a cached copy of the "sub" (subject) claim. It is populated
// during token construction or after a successful parse.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// Scope is the token purpose label. Always TokenScopeAuth for tokens
	// issued by this service; tokens carrying any other value are rejected.
	Scope string `json:"scope"`

	// SignedString is the compact JWS representation of the token.
	// Excluded from JSON serialization; use [Token.String] to retrieve it.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	// Excluded from JSON serialization; it is an internal server-side cache.
	UserID string `json:"-"`
}

// GetUserID extracts the user identifier from the token's "sub" (subject)
// claim. Returns an error if the subject claim is missing or empty.
func (t *Token) GetUserID() (string, error) {
	userID, err := t.GetSubject()
	if err != nil {
		return "", err
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token
// (the signed, base64url-encoded header.payload.signature string).
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
