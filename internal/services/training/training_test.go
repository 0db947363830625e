package training

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/weespies87/gymapp/internal/models"
)

type RepoMock struct {
	mock.Mock
}

func (m *RepoMock) CreateWorkoutEntry(ctx context.Context, entry models.WorkoutEntry) (int64, error) {
	args := m.Called(ctx, entry)
	return args.Get(0).(int64), args.Error(1)
}

func (m *RepoMock) ListWorkoutEntries(ctx context.Context, username string) ([]*models.WorkoutEntry, error) {
	args := m.Called(ctx, username)
	entries, _ := args.Get(0).([]*models.WorkoutEntry)
	return entries, args.Error(1)
}

func (m *RepoMock) ListWorkoutEntriesByDate(ctx context.Context, username string, day time.Time) ([]*models.WorkoutEntry, error) {
	args := m.Called(ctx, username, day)
	entries, _ := args.Get(0).([]*models.WorkoutEntry)
	return entries, args.Error(1)
}

func (m *RepoMock) CreateCardioEntry(ctx context.Context, entry models.CardioEntry) (int64, error) {
	args := m.Called(ctx, entry)
	return args.Get(0).(int64), args.Error(1)
}

func (m *RepoMock) ListCardioEntriesByDate(ctx context.Context, username string, day time.Time) ([]*models.CardioEntry, error) {
	args := m.Called(ctx, username, day)
	entries, _ := args.Get(0).([]*models.CardioEntry)
	return entries, args.Error(1)
}

func (m *RepoMock) CreateMeasurement(ctx context.Context, ms models.Measurement) (int64, error) {
	args := m.Called(ctx, ms)
	return args.Get(0).(int64), args.Error(1)
}

func (m *RepoMock) ListMeasurements(ctx context.Context, username string) ([]*models.Measurement, error) {
	args := m.Called(ctx, username)
	ms, _ := args.Get(0).([]*models.Measurement)
	return ms, args.Error(1)
}

type CacheMock struct {
	mock.Mock
}

func (m *CacheMock) Get(key string, result any) (bool, error) {
	args := m.Called(key, result)
	return args.Bool(0), args.Error(1)
}

func (m *CacheMock) Set(key string, value any, expiration time.Duration) error {
	args := m.Called(key, value, expiration)
	return args.Error(0)
}

func (m *CacheMock) Invalidate(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

type CoachMock struct {
	mock.Mock
}

func (m *CoachMock) Suggest(ctx context.Context, activity string, sets, reps, weight int) (string, error) {
	args := m.Called(ctx, activity, sets, reps, weight)
	return args.String(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestTrainingService_AddWorkout(t *testing.T) {
	ctx := context.Background()
	req := models.DummyWorkoutEntry{Activity: "bench press", Sets: 3, Reps: 10, Weight: 80}

	t.Run("success with suggestion", func(t *testing.T) {
		repo := new(RepoMock)
		cacheMock := new(CacheMock)
		coachMock := new(CoachMock)

		repo.On("CreateWorkoutEntry", mock.Anything, mock.MatchedBy(func(e models.WorkoutEntry) bool {
			return e.Username == "ana" && e.Activity == "bench press"
		})).Return(int64(7), nil).Once()
		cacheMock.On("Invalidate", mock.Anything).Return(nil).Once()
		coachMock.On("Suggest", mock.Anything, "bench press", 3, 10, 80).
			Return("Try incline press next!", nil).Once()

		svc := NewTrainingService(repo, cacheMock, coachMock, newNoopLogger())
		id, suggestion, err := svc.AddWorkout(ctx, "ana", req)
		require.NoError(t, err)
		assert.Equal(t, int64(7), id)
		assert.Equal(t, "Try incline press next!", suggestion)
		repo.AssertExpectations(t)
	})

	t.Run("coach failure does not lose the workout", func(t *testing.T) {
		repo := new(RepoMock)
		cacheMock := new(CacheMock)
		coachMock := new(CoachMock)

		repo.On("CreateWorkoutEntry", mock.Anything, mock.Anything).Return(int64(7), nil).Once()
		cacheMock.On("Invalidate", mock.Anything).Return(nil).Once()
		coachMock.On("Suggest", mock.Anything, "bench press", 3, 10, 80).
			Return("", errors.New("upstream down")).Once()

		svc := NewTrainingService(repo, cacheMock, coachMock, newNoopLogger())
		id, suggestion, err := svc.AddWorkout(ctx, "ana", req)
		require.NoError(t, err)
		assert.Equal(t, int64(7), id)
		assert.Empty(t, suggestion)
	})

	t.Run("repo failure", func(t *testing.T) {
		repo := new(RepoMock)
		cacheMock := new(CacheMock)
		coachMock := new(CoachMock)

		repo.On("CreateWorkoutEntry", mock.Anything, mock.Anything).
			Return(int64(0), errors.New("db down")).Once()

		svc := NewTrainingService(repo, cacheMock, coachMock, newNoopLogger())
		_, _, err := svc.AddWorkout(ctx, "ana", req)
		require.Error(t, err)
		coachMock.AssertNotCalled(t, "Suggest", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestTrainingService_ListWorkouts(t *testing.T) {
	ctx := context.Background()

	t.Run("entries found", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("ListWorkoutEntries", mock.Anything, "ana").
			Return([]*models.WorkoutEntry{{ID: 1, Activity: "squat"}}, nil).Once()

		svc := NewTrainingService(repo, new(CacheMock), new(CoachMock), newNoopLogger())
		entries, err := svc.ListWorkouts(ctx, "ana")
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("no entries", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("ListWorkoutEntries", mock.Anything, "ana").
			Return([]*models.WorkoutEntry(nil), nil).Once()

		svc := NewTrainingService(repo, new(CacheMock), new(CoachMock), newNoopLogger())
		entries, err := svc.ListWorkouts(ctx, "ana")
		assert.Nil(t, entries)
		assert.ErrorIs(t, err, ErrNoEntries)
	})
}

func TestTrainingService_TodayWorkouts(t *testing.T) {
	ctx := context.Background()

	t.Run("cache miss falls back to repo and caches", func(t *testing.T) {
		repo := new(RepoMock)
		cacheMock := new(CacheMock)

		entries := []*models.WorkoutEntry{{ID: 1, Username: "ana", Activity: "squat"}}
		cacheMock.On("Get", mock.Anything, mock.Anything).Return(false, nil).Once()
		repo.On("ListWorkoutEntriesByDate", mock.Anything, "ana", mock.Anything).
			Return(entries, nil).Once()
		cacheMock.On("Set", mock.Anything, entries, time.Hour).Return(nil).Once()

		svc := NewTrainingService(repo, cacheMock, new(CoachMock), newNoopLogger())
		got, day, err := svc.TodayWorkouts(ctx, "ana")
		require.NoError(t, err)
		assert.Equal(t, entries, got)
		assert.WithinDuration(t, time.Now(), day, time.Second)
		cacheMock.AssertExpectations(t)
	})

	t.Run("no entries today", func(t *testing.T) {
		repo := new(RepoMock)
		cacheMock := new(CacheMock)

		cacheMock.On("Get", mock.Anything, mock.Anything).Return(false, nil).Once()
		repo.On("ListWorkoutEntriesByDate", mock.Anything, "ana", mock.Anything).
			Return([]*models.WorkoutEntry(nil), nil).Once()

		svc := NewTrainingService(repo, cacheMock, new(CoachMock), newNoopLogger())
		got, _, err := svc.TodayWorkouts(ctx, "ana")
		assert.Nil(t, got)
		assert.ErrorIs(t, err, ErrNoEntries)
	})
}

func TestTrainingService_AddCardio(t *testing.T) {
	ctx := context.Background()

	repo := new(RepoMock)
	cacheMock := new(CacheMock)

	repo.On("CreateCardioEntry", mock.Anything, mock.MatchedBy(func(e models.CardioEntry) bool {
		return e.Username == "ana" && e.Activity == "run" && e.Distance == 5.2
	})).Return(int64(3), nil).Once()
	cacheMock.On("Invalidate", mock.Anything).Return(nil).Once()

	svc := NewTrainingService(repo, cacheMock, new(CoachMock), newNoopLogger())
	id, err := svc.AddCardio(ctx, "ana", models.DummyCardioEntry{
		Activity: "run", Duration: "00:31:00", Distance: 5.2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
}

func TestTrainingService_Measurements(t *testing.T) {
	ctx := context.Background()

	t.Run("add", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("CreateMeasurement", mock.Anything, mock.MatchedBy(func(m models.Measurement) bool {
			return m.Username == "ana" && m.Height == 170 && m.WeightGoal == 65
		})).Return(int64(11), nil).Once()

		svc := NewTrainingService(repo, new(CacheMock), new(CoachMock), newNoopLogger())
		id, err := svc.AddMeasurement(ctx, "ana", models.DummyMeasurement{
			Height: 170, Weight: 70, WeightGoal: 65, Arms: 30, Thighs: 55, Waist: 75, Hips: 95,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(11), id)
	})

	t.Run("empty history", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("ListMeasurements", mock.Anything, "ana").
			Return([]*models.Measurement(nil), nil).Once()

		svc := NewTrainingService(repo, new(CacheMock), new(CoachMock), newNoopLogger())
		ms, err := svc.ListMeasurements(ctx, "ana")
		assert.Nil(t, ms)
		assert.ErrorIs(t, err, ErrNoEntries)
	})
}
