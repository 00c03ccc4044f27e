// Package services содержит логику бизнес-уровня для работы с пользователями и аутентификацией.
package services

import (
	"context"
	"errors"

	"github.com/kruglovmaksim/jobmatch/internal/lib/jwt"
	"github.com/kruglovmaksim/jobmatch/internal/lib/password"
	"github.com/kruglovmaksim/jobmatch/internal/models"
)

// ErrInvalidCredentials возвращается при несовпадении пары email/пароль.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя и возвращает его ID.
	RegisterUser(ctx context.Context, user models.User) (int64, error)

	// GetUserByEmail возвращает пользователя по email или ошибку, если не найден.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUser возвращает пользователя по его ID.
	GetUser(ctx context.Context, userID int64) (*models.User, error)

	// CreateProfile создает пустой профиль для нового пользователя.
	CreateProfile(ctx context.Context, userID int64) error

	// GetProfile возвращает профиль пользователя, nil если профиля нет.
	GetProfile(ctx context.Context, userID int64) (*models.Profile, error)
}

// AuthService отвечает за регистрацию, авторизацию и данные текущего пользователя.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя с хэшированием пароля и пустым профилем.
// Роль admin через регистрацию не выдается.
func (s *AuthService) Register(ctx context.Context, email, rawPassword, role string) (int64, error) {
	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return 0, err
	}
	user := models.User{
		Email:        email,
		PasswordHash: hashed,
		Role:         role,
	}
	id, err := s.users.RegisterUser(ctx, user)
	if err != nil {
		return 0, err
	}
	if err := s.users.CreateProfile(ctx, id); err != nil {
		return 0, err
	}
	return id, nil
}

// Login проверяет пароль пользователя и генерирует сессионный токен.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (token, role string, err error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return "", "", err
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", "", ErrInvalidCredentials
	}
	token, err = s.jwtMaker.GenerateToken(user.ID, user.Role)
	if err != nil {
		return "", "", err
	}
	return token, user.Role, nil
}

// Me возвращает пользователя и его профиль по идентификатору из токена.
// Профиль может быть nil.
func (s *AuthService) Me(ctx context.Context, userID int64) (*models.User, *models.Profile, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	profile, err := s.users.GetProfile(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return user, profile, nil
}
