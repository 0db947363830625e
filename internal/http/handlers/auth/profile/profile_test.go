package profile

import (
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
	"github.com/weespies87/gymapp/internal/services/auth"
)

type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) Profile(ctx context.Context, userID int64) (*models.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestProfileHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		ctxUserID      any
		mockUser       *models.User
		mockErr        error
		wantStatusCode int
		wantError      string
	}{
		{
			name:           "profile found",
			ctxUserID:      int64(42),
			mockUser:       &models.User{ID: 42, Username: "ana", Email: "a@x.com", PasswordHash: "digest"},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "no user id in context",
			ctxUserID:      nil,
			wantStatusCode: http.StatusUnauthorized,
			wantError:      "unauthorized",
		},
		{
			name:           "account vanished",
			ctxUserID:      int64(42),
			mockErr:        auth.ErrUserNotFound,
			wantStatusCode: http.StatusNotFound,
			wantError:      "user not found",
		},
		{
			name:           "store failure",
			ctxUserID:      int64(42),
			mockErr:        errors.New("db down"),
			wantStatusCode: http.StatusInternalServerError,
			wantError:      "failed to fetch profile",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(AuthServiceMock)
			if tt.mockUser != nil || tt.mockErr != nil {
				serviceMock.On("Profile", mock.Anything, tt.ctxUserID.(int64)).
					Return(tt.mockUser, tt.mockErr).Once()
			}

			handler := New(newNoopLogger(), serviceMock)

			req := httptest.NewRequest(http.MethodGet, "/auth/profile", nil)
			ctx := context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123")
			if tt.ctxUserID != nil {
				ctx = context.WithValue(ctx, middlewarectx.UserID, tt.ctxUserID)
			}
			req = req.WithContext(ctx)

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))

			if tt.wantError != "" {
				assert.Equal(t, "Error", got["status"])
				assert.Equal(t, tt.wantError, got["error"])
			}

			if tt.mockUser != nil {
				data, ok := got["data"].(map[string]any)
				assert.True(t, ok)
				assert.Equal(t, float64(42), data["id"])
				assert.Equal(t, "ana", data["username"])
				assert.Equal(t, "a@x.com", data["email"])

				// digest stays inside, whatever the stored user carries
				_, hasDigest := data["password_hash"]
				assert.False(t, hasDigest)
			}

			serviceMock.AssertExpectations(t)
		})
	}
}
