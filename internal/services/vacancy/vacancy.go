// Package services содержит бизнес-логику работы с вакансиями:
// публичную выдачу с кешированием и создание с отправкой уведомления.
package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kruglovmaksim/jobmatch/internal/lib/sl"
	"github.com/kruglovmaksim/jobmatch/internal/models"
)

// activeListCacheKey — ключ кеша публичной выдачи. Выдача одна на всех,
// поэтому ключ без параметров.
const activeListCacheKey = "vacancies:active"

// activeListCacheTTL ограничивает время жизни кеша выдачи.
const activeListCacheTTL = time.Hour

// VacancyRepository определяет методы для работы с вакансиями в хранилище.
type VacancyRepository interface {
	// CreateVacancy добавляет новую вакансию и возвращает её ID.
	CreateVacancy(ctx context.Context, vacancy models.Vacancy) (int64, error)
	// ListActiveVacancies возвращает активные вакансии с данными работодателя.
	ListActiveVacancies(ctx context.Context) ([]*models.VacancyListItem, error)
	// GetUser возвращает пользователя по ID (для email работодателя в событии).
	GetUser(ctx context.Context, userID int64) (*models.User, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// EventPublisher отправляет событие о публикации вакансии в очередь уведомлений.
type EventPublisher interface {
	PublishVacancyEvent(event models.VacancyEvent) error
}

// VacancyService реализует бизнес-логику работы с вакансиями.
type VacancyService struct {
	repo      VacancyRepository
	cache     Cache
	publisher EventPublisher
	log       *slog.Logger
}

// NewVacancyService создает новый экземпляр VacancyService.
func NewVacancyService(repo VacancyRepository, cache Cache, publisher EventPublisher, log *slog.Logger) *VacancyService {
	return &VacancyService{
		repo:      repo,
		cache:     cache,
		publisher: publisher,
		log:       log,
	}
}

// Create создает активную вакансию для работодателя, инвалидирует кеш выдачи
// и публикует событие для notification-sender. Сбой публикации события не
// отменяет уже созданную вакансию.
func (s *VacancyService) Create(ctx context.Context, employerID int64, req models.DummyVacancy) (int64, error) {
	vacancy := models.Vacancy{
		EmployerID:  employerID,
		Title:       req.Title,
		Description: req.Description,
		Status:      models.VacancyStatusActive,
	}
	if req.Salary != "" {
		vacancy.Salary = &req.Salary
	}
	if req.Location != "" {
		vacancy.Location = &req.Location
	}

	id, err := s.repo.CreateVacancy(ctx, vacancy)
	if err != nil {
		return 0, err
	}
	s.log.Info("created new vacancy", slog.Int64("id", id))

	if err := s.cache.Invalidate(activeListCacheKey); err != nil {
		s.log.Warn("failed to invalidate vacancies cache", slog.String("key", activeListCacheKey), sl.Err(err))
	}

	employer, err := s.repo.GetUser(ctx, employerID)
	if err != nil {
		s.log.Warn("failed to load employer for event", slog.Int64("employer_id", employerID), sl.Err(err))
		return id, nil
	}
	event := models.VacancyEvent{
		EventID:       uuid.New().String(),
		VacancyID:     id,
		Title:         vacancy.Title,
		EmployerEmail: employer.Email,
	}
	if err := s.publisher.PublishVacancyEvent(event); err != nil {
		s.log.Warn("failed to publish vacancy event", slog.String("event_id", event.EventID), sl.Err(err))
	}
	return id, nil
}

// ListActive возвращает активные вакансии, используя кеш или хранилище.
func (s *VacancyService) ListActive(ctx context.Context) ([]*models.VacancyListItem, error) {
	var result []*models.VacancyListItem
	found, err := s.cache.Get(activeListCacheKey, &result)
	if err != nil {
		s.log.Warn("failed to read vacancies cache", slog.String("key", activeListCacheKey), sl.Err(err))
	}
	if found {
		return result, nil
	}

	result, err = s.repo.ListActiveVacancies(ctx)
	if err != nil {
		return nil, err
	}

	if result != nil {
		if err := s.cache.Set(activeListCacheKey, result, activeListCacheTTL); err != nil {
			s.log.Warn("failed to cache vacancies", slog.String("key", activeListCacheKey), sl.Err(err))
		}
	}
	return result, nil
}
