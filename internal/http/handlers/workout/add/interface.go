package add

import (
	"context"

	"github.com/weespies87/gymapp/internal/models"
)

// Service определяет методы для добавления силовой записи.
type Service interface {
	AddWorkout(ctx context.Context, username string, req models.DummyWorkoutEntry) (int64, string, error)
}
