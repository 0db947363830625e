// Package jwt реализует выпуск и проверку JWT токенов сессии.
//
// Maker описывает интерфейс выпуска и проверки токена, MakerImpl — реализацию
// на HS256 с секретным ключом и временем жизни токена.
package jwt

import (
	"errors"
	"time"
)

// Ошибки проверки токена. Наружу обработчики отдают единый 401,
// но внутри виды ошибок различаются и покрываются тестами.
var (
	// ErrMissingSecret — секретный ключ не задан в конфигурации.
	// Это ошибка деплоя, а не токена: обработчики отвечают на неё 500.
	ErrMissingSecret = errors.New("jwt secret key is not configured")
	// ErrTokenMalformed — строка не разбирается как JWT.
	ErrTokenMalformed = errors.New("token is malformed")
	// ErrSignatureInvalid — подпись не совпадает с секретным ключом.
	ErrSignatureInvalid = errors.New("token signature is invalid")
	// ErrTokenExpired — срок действия токена истёк.
	ErrTokenExpired = errors.New("token has expired")
)

// Maker описывает интерфейс для выпуска и проверки JWT токенов.
type Maker interface {
	// GenerateToken выпускает подписанный токен для пользователя.
	GenerateToken(userID int64, username string) (string, error)
	// ParseToken проверяет подпись и срок действия, возвращает claims.
	ParseToken(tokenStr string) (*Claims, error)
}

// MakerImpl реализует Maker на секретном ключе и TTL.
type MakerImpl struct {
	secretKey string        // Секретный ключ для подписи токенов
	tokenTTL  time.Duration // Время жизни токена
}

// NewMaker создаёт новый экземпляр MakerImpl.
//
// Ключ передаётся из конфигурации один раз при старте процесса;
// сам Maker его никогда не генерирует и не сохраняет вовне.
func NewMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
