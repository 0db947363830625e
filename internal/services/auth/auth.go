// Package auth содержит бизнес-логику регистрации, входа и получения профиля.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/weespies87/gymapp/internal/lib/jwt"
	"github.com/weespies87/gymapp/internal/lib/password"
	"github.com/weespies87/gymapp/internal/models"
	"github.com/weespies87/gymapp/internal/storage"
)

// Ошибки бизнес-логики аутентификации.
var (
	// ErrUserExists — пользователь с таким email уже зарегистрирован.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials — неверные учётные данные. Один и тот же
	// сигнал и для неизвестного email, и для неверного пароля, чтобы
	// по ответу нельзя было перечислять зарегистрированные адреса.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserNotFound — токен валиден, но учётной записи больше нет.
	ErrUserNotFound = errors.New("user not found")
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя и возвращает его ID.
	RegisterUser(ctx context.Context, user models.User) (int64, error)

	// GetUserByEmail возвращает пользователя по email или storage.ErrNotFound.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID возвращает пользователя по ID или storage.ErrNotFound.
	GetUserByID(ctx context.Context, id int64) (*models.User, error)

	// ExistsByEmail проверяет наличие пользователя с данным email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// AuthService отвечает за регистрацию, вход и выдачу профиля.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя с хэшированием пароля.
//
// ExistsByEmail — быстрая проверка для дружелюбного ответа; гонку двух
// одновременных регистраций закрывает ограничение уникальности в базе,
// которое хранилище транслирует в storage.ErrDuplicateEmail.
func (s *AuthService) Register(ctx context.Context, username, email, rawPassword string) (*models.User, error) {
	const op = "auth.Register"

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if exists {
		return nil, ErrUserExists
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
	}
	id, err := s.users.RegisterUser(ctx, user)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	user.ID = id
	return &user, nil
}

// Login проверяет учётные данные и выпускает токен сессии.
//
// Неизвестный email и неверный пароль неразличимы снаружи:
// оба пути возвращают ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (string, *models.User, error) {
	const op = "auth.Login"

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.jwtMaker.GenerateToken(user.ID, user.Username)
	if err != nil {
		// сюда попадает и jwt.ErrMissingSecret — ошибка деплоя, не клиента
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}
	return token, user, nil
}

// Profile возвращает пользователя по ID из проверенных claims токена.
func (s *AuthService) Profile(ctx context.Context, userID int64) (*models.User, error) {
	const op = "auth.Profile"

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return user, nil
}
