// Package create реализует HTTP-обработчик добавления мобильного приложения.
package create

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/portfolio-showcase/internal/http/response"
	"github.com/magabrotheeeer/portfolio-showcase/internal/lib/sl"
	"github.com/magabrotheeeer/portfolio-showcase/internal/lib/valid"
	"github.com/magabrotheeeer/portfolio-showcase/internal/models"
)

// Request — данные нового приложения.
type Request struct {
	Name        string   `json:"name" validate:"required"`
	Tagline     string   `json:"tagline"`
	Description string   `json:"description"`
	IconURL     string   `json:"iconUrl"`
	Screenshots []string `json:"screenshots"`
	Rating      float64  `json:"rating" validate:"required,min=1,max=5"`
	Downloads   string   `json:"downloads"`
	Size        string   `json:"size"`
	Category    string   `json:"category"`
	DownloadURL string   `json:"downloadUrl" validate:"omitempty,url"`
}

// App переводит запрос в модель.
func (r Request) App() models.MobileApp {
	return models.MobileApp{
		Name:        r.Name,
		Tagline:     r.Tagline,
		Description: r.Description,
		IconURL:     r.IconURL,
		Screenshots: r.Screenshots,
		Rating:      r.Rating,
		Downloads:   r.Downloads,
		Size:        r.Size,
		Category:    r.Category,
		DownloadURL: r.DownloadURL,
	}
}

// Handler обрабатывает добавление приложения.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает добавление приложения.
type Service interface {
	Add(ctx context.Context, app models.MobileApp) (models.MobileApp, error)
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
// @Summary Добавить приложение
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body Request true "Приложение"
// @Success 201 {object} response.Response
// @Failure 422 {object} response.ErrorResponse
// @Router /admin/apps [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.app.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		response.Fail(w, r, http.StatusBadRequest, "failed to decode request")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		response.Validation(w, r, err)
		return
	}

	app, err := h.service.Add(r.Context(), req.App())
	if err != nil {
		log.Error("failed to create app", sl.Err(err))
		response.ServiceError(w, r, err, "could not create app")
		return
	}

	log.Info("app created", slog.String("id", app.ID))
	response.OK(w, r, http.StatusCreated, map[string]any{
		"app": app,
	})
}
