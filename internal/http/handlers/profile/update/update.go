// Package update реализует HTTP-обработчик частичного обновления собственного профиля.
//
// Затрагиваются только поля, присутствующие в теле запроса. Пароль этим
// маршрутом не меняется. Конфликты имени и почты возвращаются с HTTP 409,
// значения вне допустимых диапазонов — с HTTP 400.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/sabari-m/fitness-tracker/internal/http/middlewarectx"
	"github.com/sabari-m/fitness-tracker/internal/http/response"
	"github.com/sabari-m/fitness-tracker/internal/lib/sl"
	"github.com/sabari-m/fitness-tracker/internal/models"
	"github.com/sabari-m/fitness-tracker/internal/storage/repository"
)

// Request — частичное обновление профиля; нулевые поля не затрагиваются.
type Request struct {
	Username *string  `json:"username,omitempty" validate:"omitempty,min=3"`
	Email    *string  `json:"email,omitempty" validate:"omitempty,email"`
	Age      *int     `json:"age,omitempty" validate:"omitempty,gte=1,lte=120"`
	Gender   *string  `json:"gender,omitempty" validate:"omitempty,oneof=male female other prefer-not-to-say"`
	Height   *float64 `json:"height,omitempty" validate:"omitempty,gte=50,lte=250"`
	Weight   *float64 `json:"weight,omitempty" validate:"omitempty,gte=20,lte=300"`
}

// Service описывает интерфейс бизнес-логики обновления профиля.
type Service interface {
	Update(ctx context.Context, userUID string, upd models.UpdateUserRequest) (*models.PublicUser, error)
}

// Handler обрабатывает запросы на обновление собственного профиля.
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
// @Summary Обновление профиля
// @Description Обновляет только переданные поля профиля аутентифицированного пользователя.
// @Tags Profile
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body Request true "Изменяемые поля профиля"
// @Success 200 {object} response.Response "Обновлённый профиль"
// @Failure 400 {object} response.ErrorResponse "Некорректные входные данные"
// @Failure 401 {object} response.ErrorResponse "Не авторизован"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Failure 409 {object} response.ErrorResponse "Имя пользователя или email заняты"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /profile [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.profile.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user identification missing")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("user identification missing"))
		return
	}

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
	log.Info("all fields are validated")

	upd := models.UpdateUserRequest{
		Username: req.Username,
		Email:    req.Email,
		Age:      req.Age,
		Gender:   req.Gender,
		Height:   req.Height,
		Weight:   req.Weight,
	}

	user, err := h.service.Update(r.Context(), userUID, upd)
	if err != nil {
		var validationErr *models.ValidationError
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			log.Info("user not found", slog.String("user_uid", userUID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("user not found"))
		case errors.Is(err, repository.ErrUsernameTaken), errors.Is(err, repository.ErrEmailTaken):
			log.Info("profile update conflict", sl.Err(err))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error(err.Error()))
		case errors.Is(err, repository.ErrOutOfRange):
			log.Info("profile values out of range", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("profile values are out of range"))
		case errors.As(err, &validationErr):
			log.Info("profile update rejected", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(validationErr.Error()))
		default:
			log.Error("failed to update profile", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("internal service error"))
		}
		return
	}

	log.Info("profile updated", slog.String("user_uid", userUID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"message": "profile updated successfully",
		"user":    user,
	}))
}
