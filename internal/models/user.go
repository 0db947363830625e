// Package models содержит доменные структуры приложения:
// пользователя, записи тренировок и замеры тела.
package models

import "time"

// User представляет зарегистрированного пользователя системы.
//
// PasswordHash никогда не попадает в ответы API и в логи;
// обработчики отдают наружу только ID, Username и Email.
type User struct {
	ID           int64     // Уникальный идентификатор, выдаётся базой
	Username     string    // Отображаемое имя пользователя
	Email        string    // Электронная почта, ключ входа (уникальна)
	PasswordHash string    // bcrypt-хэш пароля
	CreatedAt    time.Time // Дата создания записи
}
