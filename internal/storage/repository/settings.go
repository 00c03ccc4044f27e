package repository

import (
	"context"
	"fmt"

	"github.com/kruglovmaksim/jobmatch/internal/models"
)

// ListThemeSettings возвращает строки настроек, относящиеся к оформлению:
// ключи с префиксами theme_ и color_ (сравнение чувствительно к регистру).
func (s *Storage) ListThemeSettings(ctx context.Context) ([]models.Setting, error) {
	const op = "storage.ListThemeSettings"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT setting_key, setting_value
			  FROM settings
			  WHERE setting_key LIKE 'theme_%' OR setting_key LIKE 'color_%';`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []models.Setting
	for rows.Next() {
		var setting models.Setting
		if err = rows.Scan(&setting.Key, &setting.Value); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, setting)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListSettings возвращает все строки настроек для административного редактора.
func (s *Storage) ListSettings(ctx context.Context) ([]models.Setting, error) {
	const op = "storage.ListSettings"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT setting_key, setting_value
			  FROM settings
			  ORDER BY setting_key;`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []models.Setting
	for rows.Next() {
		var setting models.Setting
		if err = rows.Scan(&setting.Key, &setting.Value); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, setting)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpsertSetting сохраняет настройку, заменяя существующее значение ключа.
func (s *Storage) UpsertSetting(ctx context.Context, setting models.Setting) error {
	const op = "storage.UpsertSetting"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO settings (setting_key, setting_value)
			  VALUES ($1, $2)
			  ON CONFLICT (setting_key) DO UPDATE SET setting_value = EXCLUDED.setting_value;`
	if _, err := s.DB.ExecContext(ctx, query, setting.Key, setting.Value); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
