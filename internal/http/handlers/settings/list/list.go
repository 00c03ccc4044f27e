// Package list реализует HTTP-обработчик просмотра всех настроек
// в административном редакторе.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/kruglovmaksim/jobmatch/internal/http/response"
	"github.com/kruglovmaksim/jobmatch/internal/lib/sl"
	"github.com/kruglovmaksim/jobmatch/internal/models"
)

// Service описывает бизнес-логику чтения настроек.
type Service interface {
	ListSettings(ctx context.Context) ([]models.Setting, error)
}

// Handler обрабатывает запросы списка настроек.
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
// @Summary Список настроек
// @Description Возвращает все настройки. Только для роли admin.
// @Tags Settings
// @Produce json
// @Success 200 {object} map[string]any "Все настройки"
// @Failure 401 {object} response.ErrorResponse "Нет сессии"
// @Failure 403 {object} response.ErrorResponse "Роль не admin"
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Router /admin/settings [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.settings.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	settings, err := h.service.ListSettings(r.Context())
	if err != nil {
		log.Error("failed to list settings", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list settings"))
		return
	}
	if settings == nil {
		settings = []models.Setting{}
	}

	log.Info("settings listed", slog.Int("count", len(settings)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"settings": settings,
	}))
}
