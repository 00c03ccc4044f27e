package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kruglovmaksim/jobmatch/internal/models"
)

// activeVacanciesLimit — жесткий потолок публичной выдачи, пагинации нет.
const activeVacanciesLimit = 50

// CreateVacancy сохраняет новую вакансию и возвращает её ID.
func (s *Storage) CreateVacancy(ctx context.Context, vacancy models.Vacancy) (int64, error) {
	const op = "storage.CreateVacancy"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID int64
	query := `INSERT INTO vacancies (employer_id, title, description, salary, location, status)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id;`
	if err := s.DB.QueryRowContext(ctx, query,
		vacancy.EmployerID, vacancy.Title, vacancy.Description,
		vacancy.Salary, vacancy.Location, vacancy.Status).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListActiveVacancies возвращает активные вакансии вместе с данными профиля
// работодателя: свежие первыми, не больше пятидесяти строк. Профиль
// работодателя может отсутствовать — тогда присоединенные поля null.
func (s *Storage) ListActiveVacancies(ctx context.Context) ([]*models.VacancyListItem, error) {
	const op = "storage.ListActiveVacancies"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT v.id, v.employer_id, v.title, v.description, v.salary,
			      v.location, v.status, v.created_at,
			      p.company_name, p.location
			  FROM vacancies v
			  LEFT JOIN profiles p ON p.user_id = v.employer_id
			  WHERE v.status = 'active'
			  ORDER BY v.created_at DESC
			  LIMIT 50;`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.VacancyListItem
	for rows.Next() {
		var item models.VacancyListItem
		var salary, location, companyName, companyLocation sql.NullString
		if err = rows.Scan(&item.ID, &item.EmployerID, &item.Title, &item.Description,
			&salary, &location, &item.Status, &item.CreatedAt,
			&companyName, &companyLocation,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		if salary.Valid {
			item.Salary = &salary.String
		}
		if location.Valid {
			item.Location = &location.String
		}
		if companyName.Valid {
			item.CompanyName = &companyName.String
		}
		if companyLocation.Valid {
			item.CompanyLocation = &companyLocation.String
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
