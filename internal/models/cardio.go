package models

import "time"

// CardioEntry представляет одну запись кардио-тренировки пользователя.
type CardioEntry struct {
	ID         int64     `json:"id"`              // Идентификатор записи
	Username   string    `json:"username"`        // Владелец записи
	Activity   string    `json:"activity"`        // Вид активности
	Distance   float64   `json:"distance"`        // Дистанция, км
	Duration   string    `json:"time"`            // Длительность в исходном виде клиента
	Speed      *float64  `json:"speed,omitempty"` // Средняя скорость, если известна
	LoggedDate time.Time `json:"logged_date"`     // Дата выполнения
}

// DummyCardioEntry используется для приёма данных из JSON-запроса.
type DummyCardioEntry struct {
	Activity string  `json:"activity" validate:"required,max=255"` // Вид активности
	Duration string  `json:"time" validate:"required,max=255"`     // Длительность
	Distance float64 `json:"distance" validate:"required,gt=0"`    // Дистанция (>0)
}
