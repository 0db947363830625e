// Package today реализует HTTP-обработчик силовых записей за текущий день.
package today

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/weespies87/gymapp/internal/http/middlewarectx"
	"github.com/weespies87/gymapp/internal/http/response"
	"github.com/weespies87/gymapp/internal/lib/sl"
	"github.com/weespies87/gymapp/internal/services/training"
)

// Handler обрабатывает HTTP-запросы силовых записей за сегодня.
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
// @Summary Силовые записи за сегодня
// @Description Возвращает силовые записи текущего пользователя за текущий день.
// @Tags Workouts
// @Security BearerAuth
// @Produce  json
// @Success 200 {object} map[string]any "Записи найдены"
// @Failure 401 {object} response.ErrorResponse "Нет авторизации"
// @Failure 404 {object} response.ErrorResponse "Записей нет"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /workouts/today [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.workout.today"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	username, ok := r.Context().Value(middlewarectx.Username).(string)
	if !ok || username == "" {
		log.Error("no username in request context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	entries, day, err := h.service.TodayWorkouts(r.Context(), username)
	if err != nil {
		log.Error("failed to list today workouts", sl.Err(err))
		w.WriteHeader(response.StatusFor(err))
		if errors.Is(err, training.ErrNoEntries) {
			render.JSON(w, r, response.Error("no workouts found"))
		} else {
			render.JSON(w, r, response.Error("failed to find workouts"))
		}
		return
	}

	log.Info("today workouts listed", slog.Int("count", len(entries)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"message":  "workouts found",
		"workouts": entries,
		"date":     day.Format("2006-01-02"),
	}))
}
