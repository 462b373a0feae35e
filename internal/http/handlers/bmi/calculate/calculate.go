// Package calculate реализует HTTP-обработчик расчёта индекса массы тела.
//
// Маршрут открытый: аутентификация не требуется, результат не сохраняется.
package calculate

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/sabari-m/fitness-tracker/internal/http/response"
	"github.com/sabari-m/fitness-tracker/internal/lib/sl"
	"github.com/sabari-m/fitness-tracker/internal/models"
	bmiservice "github.com/sabari-m/fitness-tracker/internal/services/bmi"
)

// Request — входные данные для расчёта ИМТ.
type Request struct {
	Height float64 `json:"height" validate:"required"`
	Weight float64 `json:"weight" validate:"required"`
}

// Service описывает интерфейс расчёта ИМТ.
type Service interface {
	Classify(heightCm, weightKg float64) (*models.Assessment, error)
}

// Handler обрабатывает запросы расчёта ИМТ.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Расчёт индекса массы тела
// @Description Вычисляет ИМТ по росту и весу, возвращает категорию и рекомендации.
// @Tags BMI
// @Accept  json
// @Produce  json
// @Param request body Request true "Рост в сантиметрах и вес в килограммах"
// @Success 200 {object} response.Response "Результат расчёта"
// @Failure 400 {object} response.ErrorResponse "Некорректные входные данные"
// @Router /bmi [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.bmi.calculate"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	assessment, err := h.service.Classify(req.Height, req.Weight)
	if err != nil {
		if errors.Is(err, bmiservice.ErrMissingValues) ||
			errors.Is(err, bmiservice.ErrInvalidHeight) ||
			errors.Is(err, bmiservice.ErrInvalidWeight) {
			log.Info("bmi request rejected", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}
		log.Error("failed to classify bmi", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal service error"))
		return
	}

	log.Info("bmi calculated", slog.Float64("bmi", assessment.BMI),
		slog.String("category", string(assessment.Category)))
	render.JSON(w, r, response.OKWithData(assessment))
}
