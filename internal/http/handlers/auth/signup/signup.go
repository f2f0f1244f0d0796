// Package signup реализует HTTP-обработчик регистрации пользователя.
package signup

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/portfolio-showcase/internal/http/response"
	"github.com/magabrotheeeer/portfolio-showcase/internal/lib/sl"
	"github.com/magabrotheeeer/portfolio-showcase/internal/lib/valid"
	"github.com/magabrotheeeer/portfolio-showcase/internal/models"
	"github.com/magabrotheeeer/portfolio-showcase/internal/services/auth"
)

// Request — входные данные для регистрации
type Request struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// Handler обрабатывает регистрацию.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает регистрацию пользователя.
type Service interface {
	Signup(ctx context.Context, name, email, password string) (models.User, error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: valid.New(),
	}
}

// ServeHTTP godoc
// @Summary Регистрация пользователя
// @Description Создаёт пользователя с ролью USER. Email сравнивается без учёта регистра.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body Request true "Данные пользователя"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Email уже занят"
// @Failure 422 {object} response.ErrorResponse
// @Failure 429 {object} response.ErrorResponse
// @Router /signup [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.signup"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		response.Fail(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if err := h.validate.Struct(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		response.Validation(w, r, err)
		return
	}

	user, err := h.service.Signup(r.Context(), req.Name, req.Email, req.Password)
	if errors.Is(err, auth.ErrEmailExists) {
		log.Info("email already registered")
		response.Fail(w, r, http.StatusConflict, auth.ErrEmailExists.Error())
		return
	}
	if errors.Is(err, auth.ErrPasswordTooLong) || errors.Is(err, auth.ErrEmptyName) {
		log.Warn("signup rejected", sl.Err(err))
		response.Fail(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err != nil {
		log.Error("signup failed", sl.Err(err))
		response.ServiceError(w, r, err, "could not sign up")
		return
	}

	log.Info("user signed up", slog.String("user_id", user.ID))
	response.OK(w, r, http.StatusCreated, map[string]any{
		"user": user,
	})
}
