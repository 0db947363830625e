// Package list реализует HTTP-обработчик истории замеров тела.
package list

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

// Handler обрабатывает HTTP-запросы истории замеров.
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
// @Summary История замеров пользователя
// @Description Возвращает все сохранённые наборы замеров текущего пользователя.
// @Tags Measurements
// @Security BearerAuth
// @Produce  json
// @Success 200 {object} map[string]any "Замеры найдены"
// @Failure 401 {object} response.ErrorResponse "Нет авторизации"
// @Failure 404 {object} response.ErrorResponse "Замеров нет"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /measurements [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.measurements.list"

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

	measurements, err := h.service.ListMeasurements(r.Context(), username)
	if err != nil {
		log.Error("failed to list measurements", sl.Err(err))
		w.WriteHeader(response.StatusFor(err))
		if errors.Is(err, training.ErrNoEntries) {
			render.JSON(w, r, response.Error("no measurements found"))
		} else {
			render.JSON(w, r, response.Error("failed to find measurements"))
		}
		return
	}

	log.Info("measurements listed", slog.Int("count", len(measurements)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"message":      "measurements found",
		"measurements": measurements,
	}))
}
