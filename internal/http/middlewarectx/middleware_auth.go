// Package middlewarectx содержит HTTP middleware для проверки сессионного
// токена из cookie.
//
// SessionMiddleware — единая точка авторизации для всех защищенных
// маршрутов: извлекает токен из cookie, проверяет его и кладет в контекст
// идентификатор и роль пользователя. Отсутствие cookie и невалидный токен
// различаются сообщением, но оба дают HTTP 401; текст ошибки верификатора
// клиенту не отдается.
package middlewarectx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	libjwt "github.com/kruglovmaksim/jobmatch/internal/lib/jwt"
	"github.com/kruglovmaksim/jobmatch/internal/http/response"
	"github.com/kruglovmaksim/jobmatch/internal/lib/sl"
)

// SessionCookieName — имя cookie с сессионным токеном.
const SessionCookieName = "session_token"

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// UserID — ключ для идентификатора пользователя в контексте
	UserID Key = "userId"
	// Role — ключ для роли пользователя в контексте
	Role Key = "role"
)

// TokenParser описывает проверку сессионного токена.
type TokenParser interface {
	ParseToken(tokenStr string) (*libjwt.CustomClaims, error)
}

// SessionMiddleware возвращает HTTP middleware, который проверяет сессионный
// токен из cookie.
//
// Если токен валиден, добавляет идентификатор и роль пользователя в контекст
// запроса, иначе возвращает ошибку с HTTP статусом 401 Unauthorized.
func SessionMiddleware(parser TokenParser, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.SessionMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				log.Info("session cookie is missing")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("not logged in"))
				return
			}

			claims, err := parser.ParseToken(cookie.Value)
			if err != nil {
				log.Error("invalid or expired session token", sl.Err(err))
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid session"))
				return
			}

			ctx := context.WithValue(r.Context(), UserID, claims.UserID)
			ctx = context.WithValue(ctx, Role, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ErrNoPrincipal возвращается, когда в контексте нет данных пользователя.
var ErrNoPrincipal = errors.New("no authenticated user in context")

// UserIDFromContext извлекает идентификатор пользователя из контекста запроса.
func UserIDFromContext(ctx context.Context) (int64, error) {
	id, ok := ctx.Value(UserID).(int64)
	if !ok {
		return 0, ErrNoPrincipal
	}
	return id, nil
}

// RoleFromContext извлекает роль пользователя из контекста запроса.
func RoleFromContext(ctx context.Context) (string, error) {
	role, ok := ctx.Value(Role).(string)
	if !ok || role == "" {
		return "", ErrNoPrincipal
	}
	return role, nil
}
