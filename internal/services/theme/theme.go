// Package services реализует резолвер темы оформления и работу
// с таблицей настроек.
package services

import (
	"context"
	"log/slog"

	"github.com/kruglovmaksim/jobmatch/internal/lib/sl"
	"github.com/kruglovmaksim/jobmatch/internal/models"
)

// SettingsRepository определяет методы для работы с настройками в хранилище.
type SettingsRepository interface {
	// ListThemeSettings возвращает строки с ключами theme_* и color_*.
	ListThemeSettings(ctx context.Context) ([]models.Setting, error)
	// ListSettings возвращает все строки настроек.
	ListSettings(ctx context.Context) ([]models.Setting, error)
	// UpsertSetting сохраняет настройку, заменяя существующее значение.
	UpsertSetting(ctx context.Context, setting models.Setting) error
}

// ThemeService резолвит тему оформления и обслуживает административный
// редактор настроек.
type ThemeService struct {
	repo SettingsRepository
	log  *slog.Logger
}

// NewThemeService создает новый экземпляр ThemeService.
func NewThemeService(repo SettingsRepository, log *slog.Logger) *ThemeService {
	return &ThemeService{
		repo: repo,
		log:  log,
	}
}

// DefaultTheme возвращает тему по умолчанию: пять обязательных ключей.
func DefaultTheme() models.Theme {
	return models.Theme{
		"primaryColor":    "#2563eb",
		"secondaryColor":  "#64748b",
		"backgroundColor": "#ffffff",
		"textColor":       "#0f172a",
		"accentColor":     "#f59e0b",
	}
}

// Resolve всегда возвращает полный объект темы и никогда не отдает ошибку
// вызывающему. Строки настроек накладываются на значения по умолчанию
// буквально по своему ключу: строка theme_primaryColor становится ключом
// theme_primaryColor, а не заменяет primaryColor. Кеша нет: каждый вызов
// заново читает таблицу настроек.
func (s *ThemeService) Resolve(ctx context.Context) models.Theme {
	theme := DefaultTheme()

	settings, err := s.repo.ListThemeSettings(ctx)
	if err != nil {
		s.log.Error("failed to load theme settings, using defaults", sl.Err(err))
		return theme
	}

	for _, setting := range settings {
		theme[setting.Key] = setting.Value
	}
	return theme
}

// ListSettings возвращает все настройки для административного редактора.
func (s *ThemeService) ListSettings(ctx context.Context) ([]models.Setting, error) {
	return s.repo.ListSettings(ctx)
}

// UpdateSetting сохраняет настройку из административного редактора.
func (s *ThemeService) UpdateSetting(ctx context.Context, setting models.Setting) error {
	if err := s.repo.UpsertSetting(ctx, setting); err != nil {
		return err
	}
	s.log.Info("setting updated", slog.String("key", setting.Key))
	return nil
}
