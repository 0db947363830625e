package register

import (
	"context"

	"github.com/weespies87/gymapp/internal/models"
)

// Service описывает интерфейс бизнес-логики регистрации.
type Service interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
}
