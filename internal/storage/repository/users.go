package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kruglovmaksim/jobmatch/internal/models"
)

// RegisterUser сохраняет нового пользователя в базу данных и возвращает его ID.
func (s *Storage) RegisterUser(ctx context.Context, user models.User) (int64, error) {
	const op = "storage.RegisterUser"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID int64
	query := `INSERT INTO users (email, password_hash, role)
			  VALUES ($1, $2, $3)
			  RETURNING id;`
	if err := s.DB.QueryRowContext(ctx, query,
		user.Email, user.PasswordHash, user.Role).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// GetUserByEmail возвращает пользователя по его email.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.GetUserByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, email, password_hash, role, created_at
			  FROM users
			  WHERE email = $1`
	u := &models.User{}
	row := s.DB.QueryRowContext(ctx, query, email)
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// GetUser возвращает пользователя по его ID.
func (s *Storage) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	const op = "storage.GetUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, email, password_hash, role, created_at
			  FROM users
			  WHERE id = $1`
	u := &models.User{}
	row := s.DB.QueryRowContext(ctx, query, userID)
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// CreateProfile создает пустой профиль для нового пользователя.
func (s *Storage) CreateProfile(ctx context.Context, userID int64) error {
	const op = "storage.CreateProfile"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO profiles (user_id)
			  VALUES ($1)
			  ON CONFLICT (user_id) DO NOTHING;`
	if _, err := s.DB.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GetProfile возвращает профиль пользователя по его ID.
// Отсутствующий профиль — не ошибка: возвращается nil, nil.
func (s *Storage) GetProfile(ctx context.Context, userID int64) (*models.Profile, error) {
	const op = "storage.GetProfile"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT user_id, full_name, company_name, location, about
			  FROM profiles
			  WHERE user_id = $1`
	p := &models.Profile{}
	row := s.DB.QueryRowContext(ctx, query, userID)

	var fullName, companyName, location, about sql.NullString
	if err := row.Scan(&p.UserID, &fullName, &companyName, &location, &about); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if fullName.Valid {
		p.FullName = &fullName.String
	}
	if companyName.Valid {
		p.CompanyName = &companyName.String
	}
	if location.Valid {
		p.Location = &location.String
	}
	if about.Valid {
		p.About = &about.String
	}
	return p, nil
}
