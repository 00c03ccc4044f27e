package middlewarectx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/kruglovmaksim/jobmatch/internal/http/response"
)

// RequireRole создает middleware, пропускающий только пользователей
// с указанной ролью. Ставится после SessionMiddleware.
func RequireRole(log *slog.Logger, role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			current, err := RoleFromContext(r.Context())
			if err != nil {
				log.Error("user identification missing")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("not logged in"))
				return
			}

			if current != role {
				log.Info("access denied", slog.String("required_role", role), slog.String("role", current))
				w.WriteHeader(http.StatusForbidden)
				render.JSON(w, r, response.Error("access denied"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
