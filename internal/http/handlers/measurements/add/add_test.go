package add

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/weespies87/gymapp/internal/http/middlewarectx"
	"github.com/weespies87/gymapp/internal/models"
)

type TrainingServiceMock struct {
	mock.Mock
}

func (m *TrainingServiceMock) AddMeasurement(ctx context.Context, username string, req models.DummyMeasurement) (int64, error) {
	args := m.Called(ctx, username, req)
	return args.Get(0).(int64), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestAddMeasurementHandler_ServeHTTP(t *testing.T) {
	validBody := `{"height":172,"weight":68.5,"weightgoal":64,"arms":31,"thighs":55,"waist":74,"hips":96}`

	tests := []struct {
		name           string
		username       string
		requestBody    string
		mockID         int64
		mockErr        error
		expectCall     bool
		wantStatusCode int
		wantError      string
	}{
		{
			name:           "measurements added",
			username:       "ana",
			requestBody:    validBody,
			mockID:         4,
			expectCall:     true,
			wantStatusCode: http.StatusCreated,
		},
		{
			name:           "no username in context",
			username:       "",
			requestBody:    validBody,
			wantStatusCode: http.StatusUnauthorized,
			wantError:      "unauthorized",
		},
		{
			name:           "invalid json",
			username:       "ana",
			requestBody:    `{"height":`,
			wantStatusCode: http.StatusBadRequest,
			wantError:      "invalid request body",
		},
		{
			name:           "validation failure",
			username:       "ana",
			requestBody:    `{"height":172,"weight":0,"weightgoal":64,"arms":31,"thighs":55,"waist":74,"hips":96}`,
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "store failure",
			username:       "ana",
			requestBody:    validBody,
			mockErr:        errors.New("db down"),
			expectCall:     true,
			wantStatusCode: http.StatusInternalServerError,
			wantError:      "failed to add measurements",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(TrainingServiceMock)
			if tt.expectCall {
				serviceMock.On("AddMeasurement", mock.Anything, tt.username, mock.Anything).
					Return(tt.mockID, tt.mockErr).Once()
			}

			handler := New(newNoopLogger(), serviceMock)

			req := httptest.NewRequest(http.MethodPost, "/measurements",
				bytes.NewBufferString(tt.requestBody))
			ctx := context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123")
			if tt.username != "" {
				ctx = context.WithValue(ctx, middlewarectx.Username, tt.username)
			}
			req = req.WithContext(ctx)

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))

			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, got["error"])
			}

			if tt.wantStatusCode == http.StatusCreated {
				data, ok := got["data"].(map[string]any)
				require.True(t, ok)
				assert.Equal(t, "measurements added", data["message"])
				assert.Equal(t, float64(tt.mockID), data["last_added_id"])
			}

			serviceMock.AssertExpectations(t)
		})
	}
}
