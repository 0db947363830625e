package today

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/weespies87/gymapp/internal/http/middlewarectx"
	"github.com/weespies87/gymapp/internal/models"
	"github.com/weespies87/gymapp/internal/services/training"
)

type TrainingServiceMock struct {
	mock.Mock
}

func (m *TrainingServiceMock) TodayCardio(ctx context.Context, username string) ([]*models.CardioEntry, time.Time, error) {
	args := m.Called(ctx, username)
	entries, _ := args.Get(0).([]*models.CardioEntry)
	return entries, args.Get(1).(time.Time), args.Error(2)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestTodayCardioHandler_ServeHTTP(t *testing.T) {
	day := time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)

	t.Run("cardio entries found with date", func(t *testing.T) {
		serviceMock := new(TrainingServiceMock)
		serviceMock.On("TodayCardio", mock.Anything, "ana").
			Return([]*models.CardioEntry{
				{ID: 5, Username: "ana", Activity: "running", Distance: 6.2, Duration: "35 min"},
			}, day, nil).Once()

		handler := New(newNoopLogger(), serviceMock)

		req := httptest.NewRequest(http.MethodGet, "/cardio/today", nil)
		ctx := context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123")
		ctx = context.WithValue(ctx, middlewarectx.Username, "ana")
		req = req.WithContext(ctx)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var got map[string]any
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		data, ok := got["data"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "2026-03-14", data["date"])
		entries, ok := data["cardio"].([]any)
		require.True(t, ok)
		assert.Len(t, entries, 1)

		serviceMock.AssertExpectations(t)
	})

	t.Run("empty day", func(t *testing.T) {
		serviceMock := new(TrainingServiceMock)
		serviceMock.On("TodayCardio", mock.Anything, "ana").
			Return(nil, day, training.ErrNoEntries).Once()

		handler := New(newNoopLogger(), serviceMock)

		req := httptest.NewRequest(http.MethodGet, "/cardio/today", nil)
		ctx := context.WithValue(req.Context(), middlewarectx.Username, "ana")
		req = req.WithContext(ctx)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var got map[string]any
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, "no cardio entries found", got["error"])

		serviceMock.AssertExpectations(t)
	})

	t.Run("no username in context", func(t *testing.T) {
		handler := New(newNoopLogger(), new(TrainingServiceMock))

		req := httptest.NewRequest(http.MethodGet, "/cardio/today", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
