package middlewares

import (
	"net/http"

	"github.com/hqvu/furnistore/app/helpers"
	"github.com/hqvu/furnistore/app/models"
	"github.com/unrolled/render"
)

// AdminMiddleware rejects requests whose resolved user does not carry
// the admin role. Runs after OwnerContextMiddleware.
func AdminMiddleware(rnd *render.Render) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, _ := r.Context().Value(helpers.ContextKeyRole).(string)
			if UserIDFromContext(r.Context()) == "" || role != models.RoleAdmin {
				_ = rnd.JSON(w, http.StatusUnauthorized, map[string]interface{}{"message": "Unauthorized"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
