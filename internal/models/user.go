// Package models содержит доменные структуры сервиса подбора вакансий:
// пользователей, профили, вакансии и настройки оформления.
package models

import "time"

// Роли пользователей системы.
const (
	RoleEmployer = "employer"
	RoleSeeker   = "seeker"
	RoleAdmin    = "admin"
)

// User представляет зарегистрированного пользователя системы.
// PasswordHash никогда не попадает в HTTP-ответы: наружу отдается UserInfo.
type User struct {
	ID           int64     // Уникальный идентификатор пользователя
	Email        string    // Электронная почта (уникальная)
	PasswordHash string    // Хэш пароля пользователя
	Role         string    // Роль: employer, seeker или admin
	CreatedAt    time.Time // Дата регистрации
}

// UserInfo — публичное представление пользователя, отдаваемое клиенту.
// Содержит только id, email и роль.
type UserInfo struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Info возвращает публичное представление пользователя.
func (u *User) Info() UserInfo {
	return UserInfo{
		ID:    u.ID,
		Email: u.Email,
		Role:  u.Role,
	}
}

// Profile хранит анкетные данные пользователя. Связь с User —
// один к одному, профиль может отсутствовать.
type Profile struct {
	UserID      int64   `json:"user_id"`
	FullName    *string `json:"full_name"`
	CompanyName *string `json:"company_name"`
	Location    *string `json:"location"`
	About       *string `json:"about"`
}
