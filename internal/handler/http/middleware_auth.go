package http

import (
	"context"
	"net/http"

	"github.com/jvreeken/boodschapp/internal/logger"
	"github.com/jvreeken/boodschapp/internal/service"
	"github.com/jvreeken/boodschapp/internal/utils"
)

// authHeader is the header that carries the raw signed token, on both
// requests and token-issuing responses. No scheme prefix is used.
const authHeader = "x-auth"

// auth is an HTTP middleware that enforces token-based authentication.
//
// It reads the raw token from the "x-auth" header, resolves it to a user via
// [service.AuthService.Authenticate], and — on success — stores the
// authenticated user under [utils.UserCtxKey] and the raw token string under
// [utils.TokenCtxKey] in the request context before delegating to the next
// handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the
// following cases:
//   - The "x-auth" header is absent or empty ([ErrEmptyAuthHeader]).
//   - The token fails signature, issuer, expiry, or scope checks.
//   - The token is no longer present in the user's persisted token
//     collection (revoked, or the account is gone).
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString := r.Header.Get(authHeader)
		if tokenString == "" {
			log.Err(ErrEmptyAuthHeader).Send()
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.Authenticate(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("token rejected")
			http.Error(w, service.ErrTokenIsExpiredOrInvalid.Error(), http.StatusUnauthorized)
			return
		}

		// Store the resolved user and the raw token in the context so that
		// downstream handlers can use them without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserCtxKey, user)
		ctx = context.WithValue(ctx, utils.TokenCtxKey, tokenString)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
