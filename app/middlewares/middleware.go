package middlewares

import (
	"context"
	"net/http"

	"github.com/hqvu/furnistore/app/helpers"
	"github.com/hqvu/furnistore/app/models"
	"github.com/hqvu/furnistore/app/utils/sessions"
	"github.com/hqvu/furnistore/app/utils/token"
)

// OwnerContextMiddleware resolves the request's owner: a user id from a
// valid auth_token cookie, else the guest session id (when one exists).
// Handlers never read cookies themselves; they take the owner from the
// context.
func OwnerContextMiddleware(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if cookie, err := r.Cookie(token.CookieName); err == nil && cookie.Value != "" {
				if claims, err := token.Parse(jwtSecret, cookie.Value); err == nil {
					ctx = context.WithValue(ctx, helpers.ContextKeyUserID, claims.UserID)
					ctx = context.WithValue(ctx, helpers.ContextKeyRole, claims.Role)
					ctx = context.WithValue(ctx, helpers.ContextKeyOwner, models.OwnerUser(claims.UserID))
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}
			}

			if sessionID := sessions.GetSessionID(r); sessionID != "" {
				ctx = context.WithValue(ctx, helpers.ContextKeyOwner, models.OwnerGuest(sessionID))
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OwnerFromContext returns the resolved owner, which may be empty for a
// first-time visitor with no session cookie yet.
func OwnerFromContext(ctx context.Context) models.OwnerContext {
	if owner, ok := ctx.Value(helpers.ContextKeyOwner).(models.OwnerContext); ok {
		return owner
	}
	return models.OwnerContext{}
}

func UserIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(helpers.ContextKeyUserID).(string); ok {
		return id
	}
	return ""
}
