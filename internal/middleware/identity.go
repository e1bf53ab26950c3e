package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/SergeyBogomolovv/pod-fulfillment-service/pkg/utils"
)

// UserIDHeader carries the caller id set by the upstream auth proxy.
const UserIDHeader = "X-User-ID"

type userIDKey struct{}

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserID returns the authenticated caller id, or "" outside an Identity-wrapped route.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey{}).(string)
	return id
}

// Identity rejects requests without a caller id.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(r.Header.Get(UserIDHeader))
		if userID == "" {
			utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}
