// Package add реализует HTTP-обработчик добавления кардио-записи.
package add

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/weespies87/gymapp/internal/http/middlewarectx"
	"github.com/weespies87/gymapp/internal/http/response"
	"github.com/weespies87/gymapp/internal/lib/sl"
	"github.com/weespies87/gymapp/internal/models"
)

// Handler обрабатывает HTTP-запросы добавления кардио-записи.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Добавить кардио-запись
// @Description Сохраняет запись кардио-тренировки и возвращает её ID.
// @Tags Cardio
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param request body models.DummyCardioEntry true "Данные кардио-тренировки"
// @Success 201 {object} map[string]any "Запись создана"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Нет авторизации"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /cardio [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.cardio.add"

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

	var req models.DummyCardioEntry
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.String("activity", req.Activity))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	id, err := h.service.AddCardio(r.Context(), username, req)
	if err != nil {
		log.Error("failed to add cardio entry", sl.Err(err))
		w.WriteHeader(response.StatusFor(err))
		render.JSON(w, r, response.Error("failed to add cardio entry"))
		return
	}

	log.Info("cardio entry added", slog.Int64("id", id))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OKWithData(map[string]any{
		"message":       "cardio added",
		"last_added_id": id,
	}))
}
