// Package training содержит бизнес-логику журнала тренировок:
// силовые записи, кардио и замеры тела, с кешированием дневных списков
// и запросом тренировочной подсказки после добавления силовой записи.
package training

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/weespies87/gymapp/internal/lib/sl"
	"github.com/weespies87/gymapp/internal/models"
)

// ErrNoEntries — у пользователя нет записей по запрошенному срезу.
var ErrNoEntries = errors.New("no entries found")

// TrainingRepository определяет методы для работы с записями в хранилище.
type TrainingRepository interface {
	// CreateWorkoutEntry добавляет запись тренировки и возвращает её ID.
	CreateWorkoutEntry(ctx context.Context, entry models.WorkoutEntry) (int64, error)
	// ListWorkoutEntries возвращает все записи тренировок пользователя.
	ListWorkoutEntries(ctx context.Context, username string) ([]*models.WorkoutEntry, error)
	// ListWorkoutEntriesByDate возвращает записи тренировок за день.
	ListWorkoutEntriesByDate(ctx context.Context, username string, day time.Time) ([]*models.WorkoutEntry, error)
	// CreateCardioEntry добавляет запись кардио и возвращает её ID.
	CreateCardioEntry(ctx context.Context, entry models.CardioEntry) (int64, error)
	// ListCardioEntriesByDate возвращает записи кардио за день.
	ListCardioEntriesByDate(ctx context.Context, username string, day time.Time) ([]*models.CardioEntry, error)
	// CreateMeasurement добавляет набор замеров и возвращает его ID.
	CreateMeasurement(ctx context.Context, m models.Measurement) (int64, error)
	// ListMeasurements возвращает историю замеров пользователя.
	ListMeasurements(ctx context.Context, username string) ([]*models.Measurement, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// SuggestionClient описывает клиент генерации тренировочной подсказки.
type SuggestionClient interface {
	Suggest(ctx context.Context, activity string, sets, reps, weight int) (string, error)
}

// TrainingService реализует бизнес-логику журнала тренировок.
type TrainingService struct {
	repo  TrainingRepository
	cache Cache
	coach SuggestionClient
	log   *slog.Logger
}

// NewTrainingService создает новый экземпляр TrainingService.
func NewTrainingService(repo TrainingRepository, cache Cache, coach SuggestionClient, log *slog.Logger) *TrainingService {
	return &TrainingService{
		repo:  repo,
		cache: cache,
		coach: coach,
		log:   log,
	}
}

func workoutsTodayKey(username string, day time.Time) string {
	return fmt.Sprintf("workouts:today:%s:%s", username, day.Format("2006-01-02"))
}

func cardioTodayKey(username string, day time.Time) string {
	return fmt.Sprintf("cardio:today:%s:%s", username, day.Format("2006-01-02"))
}

// AddWorkout сохраняет запись тренировки и возвращает её ID вместе с
// тренировочной подсказкой. Запись фиксируется до обращения к генерации:
// отказ внешнего API не должен терять уже выполненную тренировку,
// подсказка в этом случае просто пустая.
func (s *TrainingService) AddWorkout(ctx context.Context, username string, req models.DummyWorkoutEntry) (int64, string, error) {
	entry := models.WorkoutEntry{
		Username: username,
		Activity: req.Activity,
		Sets:     req.Sets,
		Reps:     req.Reps,
		Weight:   req.Weight,
	}

	id, err := s.repo.CreateWorkoutEntry(ctx, entry)
	if err != nil {
		return 0, "", err
	}
	s.log.Info("created new workout entry", slog.Int64("id", id))

	cacheKey := workoutsTodayKey(username, time.Now())
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate cache", slog.String("key", cacheKey), sl.Err(err))
	}

	suggestion, err := s.coach.Suggest(ctx, req.Activity, req.Sets, req.Reps, req.Weight)
	if err != nil {
		s.log.Warn("failed to get coach suggestion", sl.Err(err))
		suggestion = ""
	}

	return id, suggestion, nil
}

// ListWorkouts возвращает все записи тренировок пользователя.
func (s *TrainingService) ListWorkouts(ctx context.Context, username string) ([]*models.WorkoutEntry, error) {
	entries, err := s.repo.ListWorkoutEntries(ctx, username)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}
	return entries, nil
}

// TodayWorkouts возвращает записи тренировок за сегодня, используя кеш.
func (s *TrainingService) TodayWorkouts(ctx context.Context, username string) ([]*models.WorkoutEntry, time.Time, error) {
	today := time.Now()
	cacheKey := workoutsTodayKey(username, today)

	var cached []*models.WorkoutEntry
	found, err := s.cache.Get(cacheKey, &cached)
	if err != nil {
		s.log.Warn("failed to read cache", slog.String("key", cacheKey), sl.Err(err))
	}
	if found && len(cached) > 0 {
		return cached, today, nil
	}

	entries, err := s.repo.ListWorkoutEntriesByDate(ctx, username, today)
	if err != nil {
		return nil, today, err
	}
	if len(entries) == 0 {
		return nil, today, ErrNoEntries
	}

	if err := s.cache.Set(cacheKey, entries, time.Hour); err != nil {
		s.log.Warn("failed to cache workouts", slog.String("key", cacheKey), sl.Err(err))
	}
	return entries, today, nil
}

// AddCardio сохраняет запись кардио и возвращает её ID.
func (s *TrainingService) AddCardio(ctx context.Context, username string, req models.DummyCardioEntry) (int64, error) {
	entry := models.CardioEntry{
		Username: username,
		Activity: req.Activity,
		Distance: req.Distance,
		Duration: req.Duration,
	}

	id, err := s.repo.CreateCardioEntry(ctx, entry)
	if err != nil {
		return 0, err
	}
	s.log.Info("created new cardio entry", slog.Int64("id", id))

	cacheKey := cardioTodayKey(username, time.Now())
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate cache", slog.String("key", cacheKey), sl.Err(err))
	}
	return id, nil
}

// TodayCardio возвращает записи кардио за сегодня, используя кеш.
func (s *TrainingService) TodayCardio(ctx context.Context, username string) ([]*models.CardioEntry, time.Time, error) {
	today := time.Now()
	cacheKey := cardioTodayKey(username, today)

	var cached []*models.CardioEntry
	found, err := s.cache.Get(cacheKey, &cached)
	if err != nil {
		s.log.Warn("failed to read cache", slog.String("key", cacheKey), sl.Err(err))
	}
	if found && len(cached) > 0 {
		return cached, today, nil
	}

	entries, err := s.repo.ListCardioEntriesByDate(ctx, username, today)
	if err != nil {
		return nil, today, err
	}
	if len(entries) == 0 {
		return nil, today, ErrNoEntries
	}

	if err := s.cache.Set(cacheKey, entries, time.Hour); err != nil {
		s.log.Warn("failed to cache cardio entries", slog.String("key", cacheKey), sl.Err(err))
	}
	return entries, today, nil
}

// AddMeasurement сохраняет набор замеров и возвращает его ID.
func (s *TrainingService) AddMeasurement(ctx context.Context, username string, req models.DummyMeasurement) (int64, error) {
	m := models.Measurement{
		Username:   username,
		Height:     req.Height,
		Weight:     req.Weight,
		WeightGoal: req.WeightGoal,
		Arms:       req.Arms,
		Thighs:     req.Thighs,
		Waist:      req.Waist,
		Hips:       req.Hips,
	}

	id, err := s.repo.CreateMeasurement(ctx, m)
	if err != nil {
		return 0, err
	}
	s.log.Info("created new measurement", slog.Int64("id", id))
	return id, nil
}

// ListMeasurements возвращает историю замеров пользователя.
func (s *TrainingService) ListMeasurements(ctx context.Context, username string) ([]*models.Measurement, error) {
	measurements, err := s.repo.ListMeasurements(ctx, username)
	if err != nil {
		return nil, err
	}
	if len(measurements) == 0 {
		return nil, ErrNoEntries
	}
	return measurements, nil
}
