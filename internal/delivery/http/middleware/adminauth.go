package middleware

import (
	"net/http"

	"github.com/wheatandcat/KAWKAW/internal/auth"
	"github.com/wheatandcat/KAWKAW/internal/delivery/http/response"
)

// AdminAuth returns a middleware that gates admin endpoints on a valid
// session cookie. The token is checked against the digest recomputed from
// the currently configured secret on every request.
func AdminAuth(sessions *auth.SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !sessions.Validate(auth.TokenFromRequest(r)) {
				response.Message(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
