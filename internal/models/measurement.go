package models

import "time"

// Measurement представляет один набор замеров тела пользователя.
type Measurement struct {
	ID         int64     `json:"id"`          // Идентификатор записи
	Username   string    `json:"username"`    // Владелец записи
	Height     float64   `json:"height"`      // Рост
	Weight     float64   `json:"weight"`      // Текущий вес
	WeightGoal float64   `json:"weight_goal"` // Целевой вес
	Arms       float64   `json:"arms"`        // Обхват рук
	Thighs     float64   `json:"thighs"`      // Обхват бёдер
	Waist      float64   `json:"waist"`       // Обхват талии
	Hips       float64   `json:"hips"`        // Обхват таза
	CreatedAt  time.Time `json:"created_at"`  // Дата замера
}

// DummyMeasurement используется для приёма данных из JSON-запроса.
type DummyMeasurement struct {
	Height     float64 `json:"height" validate:"required,gt=0"`     // Рост (>0)
	Weight     float64 `json:"weight" validate:"required,gt=0"`     // Вес (>0)
	WeightGoal float64 `json:"weightgoal" validate:"required,gt=0"` // Целевой вес (>0)
	Arms       float64 `json:"arms" validate:"required,gt=0"`       // Обхват рук (>0)
	Thighs     float64 `json:"thighs" validate:"required,gt=0"`     // Обхват бёдер (>0)
	Waist      float64 `json:"waist" validate:"required,gt=0"`      // Обхват талии (>0)
	Hips       float64 `json:"hips" validate:"required,gt=0"`       // Обхват таза (>0)
}
