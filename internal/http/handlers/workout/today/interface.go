package today

import (
	"context"
	"time"

	"github.com/weespies87/gymapp/internal/models"
)

// Service определяет методы для получения силовых записей за сегодня.
type Service interface {
	TodayWorkouts(ctx context.Context, username string) ([]*models.WorkoutEntry, time.Time, error)
}
