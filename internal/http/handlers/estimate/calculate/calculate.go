// Package calculate реализует HTTP-обработчик расчёта оценки по анкете.
//
// Handler принимает JSON-анкету, валидирует её, вызывает сервис оценок
// и возвращает результат в JSON-формате.
package calculate

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"
	"github.com/goccy/go-json"

	"github.com/magabrotheeeer/lifeclock/internal/http/response"
	"github.com/magabrotheeeer/lifeclock/internal/lib/sl"
	"github.com/magabrotheeeer/lifeclock/internal/lib/validate"
	"github.com/magabrotheeeer/lifeclock/internal/models"
	"github.com/magabrotheeeer/lifeclock/internal/services/estimate"
)

// maxBodyBytes ограничивает размер анкеты.
const maxBodyBytes = 1 << 16

// Handler управляет HTTP-запросами на расчёт оценки.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис оценок
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики расчёта оценки.
type Service interface {
	Estimate(ctx context.Context, req models.DummyProfile) (*models.Estimate, error)
}

// New создаёт новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validate.New(),
	}
}

// ServeHTTP godoc
// @Summary Рассчитать оценку
// @Description Считает продолжительность жизни, дату смерти и оставшиеся свободные часы по анкете.
// @Tags Estimates
// @Accept  json
// @Produce  json
// @Param request body models.DummyProfile true "Анкета"
// @Success 200 {object} response.Response{data=models.Estimate} "Оценка"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 429 {object} response.ErrorResponse "Слишком много запросов"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /estimates [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.estimate.calculate"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyProfile
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid request body"))
			return
		}
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(verrs))
		return
	}

	result, err := h.service.Estimate(r.Context(), req)
	if err != nil {
		if inputErr := estimate.InputError(err); inputErr != nil {
			log.Error("rejected profile", sl.Err(err))
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error(inputErr.Error()))
			return
		}
		log.Error("failed to calculate estimate", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not calculate estimate"))
		return
	}

	log.Info("estimate calculated", slog.String("id", result.ID))
	render.JSON(w, r, response.OKWithData(result))
}
