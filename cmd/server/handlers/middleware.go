// Package handlers provides request identity middleware.
package handlers

import (
	"context"
	"net/http"
)

// UserIDHeader carries the owner identifier resolved by the upstream
// authentication layer. The core never resolves identity itself.
const UserIDHeader = "X-User-ID"

type contextKey string

const userIDKey contextKey = "userID"

// RequireUser rejects requests without a resolved user and stores the
// user id in the request context for downstream handlers.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(UserIDHeader)
		if userID == "" {
			writeErrorMessage(w, http.StatusUnauthorized, "missing "+UserIDHeader+" header")
			return
		}
		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID returns the resolved user id stored by RequireUser.
func UserID(r *http.Request) string {
	userID, _ := r.Context().Value(userIDKey).(string)
	return userID
}
