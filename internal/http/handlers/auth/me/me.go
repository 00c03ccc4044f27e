// Package me реализует HTTP-обработчик запроса данных текущего пользователя.
//
// Идентификатор берется из проверенного сессионного токена (контекст
// запроса). Наружу отдаются только id, email и роль пользователя плюс
// его профиль; профиль может быть null.
package me

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/kruglovmaksim/jobmatch/internal/http/middlewarectx"
	"github.com/kruglovmaksim/jobmatch/internal/http/response"
	"github.com/kruglovmaksim/jobmatch/internal/lib/sl"
	"github.com/kruglovmaksim/jobmatch/internal/models"
	"github.com/kruglovmaksim/jobmatch/internal/storage/repository"
)

// Service описывает бизнес-логику получения текущего пользователя.
type Service interface {
	Me(ctx context.Context, userID int64) (*models.User, *models.Profile, error)
}

// Handler обрабатывает запросы на получение данных текущего пользователя.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Текущий пользователь
// @Description Возвращает данные и профиль пользователя из сессионного токена.
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]any "Пользователь и профиль"
// @Failure 401 {object} response.ErrorResponse "Нет сессии"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /auth/me [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.me"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID, err := middlewarectx.UserIDFromContext(r.Context())
	if err != nil {
		log.Error("user identification missing")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("not logged in"))
		return
	}

	user, profile, err := h.service.Me(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Info("user not found", slog.Int64("user_id", userID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("user not found"))
			return
		}
		log.Error("failed to load user", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal server error"))
		return
	}

	log.Info("current user loaded", slog.Int64("user_id", user.ID))
	render.JSON(w, r, map[string]any{
		"user":    user.Info(),
		"profile": profile,
	})
}
