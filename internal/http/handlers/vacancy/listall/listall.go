// Package listall реализует HTTP-обработчик публичной выдачи вакансий.
//
// Выдача доступна любому аутентифицированному пользователю независимо
// от роли: только активные вакансии, свежие первыми, не больше
// пятидесяти строк, с присоединенными полями профиля работодателя.
package listall

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

// Service описывает бизнес-логику выдачи активных вакансий.
type Service interface {
	ListActive(ctx context.Context) ([]*models.VacancyListItem, error)
}

// Handler обрабатывает запросы списка активных вакансий.
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
// @Summary Список активных вакансий
// @Tags Vacancies
// @Produce json
// @Success 200 {object} map[string]any "До 50 активных вакансий, свежие первыми"
// @Failure 401 {object} response.ErrorResponse "Нет сессии"
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Router /vacancies/all [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.vacancy.listall"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	res, err := h.service.ListActive(r.Context())
	if err != nil {
		log.Error("failed to list vacancies", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list vacancies"))
		return
	}
	if res == nil {
		res = []*models.VacancyListItem{}
	}

	log.Info("vacancies listed", slog.Int("count", len(res)))
	render.JSON(w, r, map[string]any{
		"vacancies": res,
	})
}
