package models

import "time"

// WorkoutEntry представляет одну запись силовой тренировки пользователя.
type WorkoutEntry struct {
	ID         int64     `json:"id"`          // Идентификатор записи
	Username   string    `json:"username"`    // Владелец записи
	Activity   string    `json:"activity"`    // Название упражнения
	Sets       int       `json:"sets"`        // Количество подходов
	Reps       int       `json:"reps"`        // Количество повторений
	Weight     int       `json:"weight"`      // Рабочий вес
	LoggedDate time.Time `json:"logged_date"` // Дата выполнения
}

// DummyWorkoutEntry используется для приёма данных из JSON-запроса.
// Имя пользователя сюда не входит: оно берётся из проверенных claims токена.
type DummyWorkoutEntry struct {
	Activity string `json:"activity" validate:"required,max=255"` // Название упражнения
	Sets     int    `json:"sets" validate:"required,gt=0"`        // Подходы (>0)
	Reps     int    `json:"reps" validate:"required,gt=0"`        // Повторения (>0)
	Weight   int    `json:"weight" validate:"gte=0"`              // Вес (>=0, 0 — свой вес)
}
