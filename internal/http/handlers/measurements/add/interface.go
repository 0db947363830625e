package add

import (
	"context"

	"github.com/weespies87/gymapp/internal/models"
)

// Service определяет методы для добавления набора замеров.
type Service interface {
	AddMeasurement(ctx context.Context, username string, req models.DummyMeasurement) (int64, error)
}
