// Package profile реализует HTTP-обработчик выдачи профиля пользователя.
//
// Маршрут защищён JWT middleware: идентификатор пользователя берётся
// из проверенных claims токена, не из запроса.
package profile

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/weespies87/gymapp/internal/http/middlewarectx"
	"github.com/weespies87/gymapp/internal/http/response"
	"github.com/weespies87/gymapp/internal/lib/sl"
	"github.com/weespies87/gymapp/internal/services/auth"
)

// Handler обрабатывает HTTP-запросы профиля.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Профиль текущего пользователя
// @Description Возвращает публичные поля пользователя из токена сессии.
// @Tags Auth
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} map[string]any "Профиль пользователя"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Учётная запись не найдена"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /auth/profile [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.profile"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID, ok := r.Context().Value(middlewarectx.UserID).(int64)
	if !ok {
		log.Error("user id not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	user, err := h.service.Profile(r.Context(), userID)
	if err != nil {
		log.Error("failed to fetch profile", sl.Err(err))
		w.WriteHeader(response.StatusFor(err))
		if errors.Is(err, auth.ErrUserNotFound) {
			render.JSON(w, r, response.Error("user not found"))
		} else {
			render.JSON(w, r, response.Error("failed to fetch profile"))
		}
		return
	}

	log.Info("profile fetched", slog.Int64("id", user.ID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
	}))
}
