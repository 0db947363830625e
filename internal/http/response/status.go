package response

import (
	"errors"
	"net/http"

	jwtlib "github.com/weespies87/gymapp/internal/lib/jwt"
	"github.com/weespies87/gymapp/internal/services/auth"
	"github.com/weespies87/gymapp/internal/services/training"
)

// StatusFor возвращает HTTP-статус для ошибки бизнес-логики.
//
// Единая таблица соответствия ошибка -> статус, общая для всех обработчиков,
// вместо повторного вывода статусов в каждом endpoint-е.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, auth.ErrUserExists):
		return http.StatusBadRequest
	case errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, auth.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, training.ErrNoEntries):
		return http.StatusNotFound
	case errors.Is(err, jwtlib.ErrMissingSecret):
		return http.StatusInternalServerError
	case errors.Is(err, jwtlib.ErrTokenMalformed),
		errors.Is(err, jwtlib.ErrSignatureInvalid),
		errors.Is(err, jwtlib.ErrTokenExpired):
		return http.StatusUnauthorized
	default:
		// хранилище и прочие неожиданные отказы
		return http.StatusInternalServerError
	}
}
