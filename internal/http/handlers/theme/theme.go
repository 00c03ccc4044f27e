// Package theme реализует HTTP-обработчик получения темы оформления.
//
// Ответ всегда успешный: при любой ошибке чтения настроек резолвер
// возвращает тему по умолчанию.
package theme

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/kruglovmaksim/jobmatch/internal/models"
)

// Service описывает резолвер темы оформления.
type Service interface {
	Resolve(ctx context.Context) models.Theme
}

// Handler обрабатывает запросы темы оформления.
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
// @Summary Тема оформления
// @Tags Settings
// @Produce json
// @Success 200 {object} models.Theme "Полный объект темы"
// @Router /theme [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.theme"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	theme := h.service.Resolve(r.Context())

	log.Info("theme resolved", slog.Int("keys", len(theme)))
	render.JSON(w, r, theme)
}
