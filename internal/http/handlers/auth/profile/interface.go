package profile

import (
	"context"

	"github.com/weespies87/gymapp/internal/models"
)

// Service описывает интерфейс бизнес-логики выдачи профиля.
type Service interface {
	Profile(ctx context.Context, userID int64) (*models.User, error)
}
