package middleware

import (
	"net/http"
	"strings"

	"srms/internal/domain/auth"
	"srms/internal/transport/http/api"
)

// SessionGate is the slice of the auth gate the middleware needs.
type SessionGate interface {
	IsAuthenticated() bool
}

// Session guards the console routes. A request passes when it carries a valid
// bearer token and the persisted authenticated flag is still set; logging out
// from any tab clears the flag and cuts every outstanding token off at once.
func Session(secret string, gate SessionGate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", GetRequestID(r.Context()))
				return
			}
			if _, err := auth.ParseToken(secret, parts[1]); err != nil {
				api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", GetRequestID(r.Context()))
				return
			}
			if !gate.IsAuthenticated() {
				api.Fail(w, http.StatusUnauthorized, "unauthorized", "session ended", GetRequestID(r.Context()))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
