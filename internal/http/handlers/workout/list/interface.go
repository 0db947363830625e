package list

import (
	"context"

	"github.com/weespies87/gymapp/internal/models"
)

// Service определяет методы для получения всех силовых записей.
type Service interface {
	ListWorkouts(ctx context.Context, username string) ([]*models.WorkoutEntry, error)
}
