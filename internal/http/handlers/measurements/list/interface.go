package list

import (
	"context"

	"github.com/weespies87/gymapp/internal/models"
)

// Service определяет методы для получения истории замеров.
type Service interface {
	ListMeasurements(ctx context.Context, username string) ([]*models.Measurement, error)
}
