package middleware

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"pocket-crm/internal/sessionstore"
	"pocket-crm/internal/utils"
)

// Auth returns the bearer-token middleware. Tokens must be valid JWTs whose
// jti is still live in the session store, so logout revokes access before the
// token expiry. When auth is disabled (no owner password configured) every
// request passes through.
func Auth(sessions sessionstore.SessionStore, enabled bool) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !enabled {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.RespondError(w, http.StatusUnauthorized, "Authorization header required")
				return
			}

			tokenString := strings.Replace(authHeader, "Bearer ", "", 1)
			if tokenString == authHeader { // "Bearer " prefix not found
				utils.RespondError(w, http.StatusUnauthorized, "Bearer token required")
				return
			}

			tokenID, err := utils.ParseJWT(tokenString)
			if err != nil {
				utils.RespondError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			live, err := sessions.SessionExists(tokenID)
			if err != nil {
				utils.RespondError(w, http.StatusInternalServerError, "Session lookup failed")
				return
			}
			if !live {
				utils.RespondError(w, http.StatusUnauthorized, "Token has been revoked")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
