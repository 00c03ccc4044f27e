// Package jwt реализует генерацию и проверку сессионных JWT токенов.
//
// Токен — единственное подтверждение аутентификации: серверная таблица
// сессий не ведётся. В claims хранится целочисленный идентификатор
// пользователя и его роль.
package jwt

import (
	"time"
)

// Maker описывает интерфейс для генерации и парсинга сессионных токенов.
type Maker interface {
	// GenerateToken создает токен для пользователя с указанной ролью.
	GenerateToken(userID int64, role string) (string, error)
	// ParseToken проверяет подпись и срок действия токена и возвращает claims.
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и времени жизни токена (TTL).
type MakerImpl struct {
	secretKey string
	tokenTTL  time.Duration
}

// NewMaker создаёт новый экземпляр MakerImpl на основе секретного ключа и TTL.
func NewMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
