package today

import (
	"context"
	"time"

	"github.com/weespies87/gymapp/internal/models"
)

// Service определяет методы для получения кардио-записей за сегодня.
type Service interface {
	TodayCardio(ctx context.Context, username string) ([]*models.CardioEntry, time.Time, error)
}
