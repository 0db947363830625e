package add

import (
	"context"

	"github.com/weespies87/gymapp/internal/models"
)

// Service определяет методы для добавления кардио-записи.
type Service interface {
	AddCardio(ctx context.Context, username string, req models.DummyCardioEntry) (int64, error)
}
