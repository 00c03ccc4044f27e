// Package update реализует HTTP-обработчик административного редактора
// настроек: сохранение пары ключ/значение.
package update

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/kruglovmaksim/jobmatch/internal/http/response"
	"github.com/kruglovmaksim/jobmatch/internal/lib/sl"
	"github.com/kruglovmaksim/jobmatch/internal/models"
)

// Request — входные данные редактора настроек.
type Request struct {
	Key   string `json:"setting_key" validate:"required,min=1,max=100"`
	Value string `json:"setting_value" validate:"required"`
}

// Service описывает бизнес-логику сохранения настройки.
type Service interface {
	UpdateSetting(ctx context.Context, setting models.Setting) error
}

// Handler обрабатывает запросы на сохранение настройки.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Сохранение настройки
// @Description Создает или обновляет настройку. Только для роли admin.
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body Request true "Пара ключ/значение"
// @Success 200 {object} map[string]any "Настройка сохранена"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Нет сессии"
// @Failure 403 {object} response.ErrorResponse "Роль не admin"
// @Failure 422 {object} response.Response "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /admin/settings [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.settings.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	setting := models.Setting{Key: req.Key, Value: req.Value}
	if err := h.service.UpdateSetting(r.Context(), setting); err != nil {
		log.Error("failed to save setting", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to save setting"))
		return
	}

	log.Info("setting saved", slog.String("key", req.Key))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"setting_key": req.Key,
	}))
}
