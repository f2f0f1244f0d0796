// Package create реализует HTTP-обработчик создания проекта в админке.
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

// Request — данные нового проекта. id и createdAt назначаются сервером.
type Request struct {
	Title            string          `json:"title" validate:"required"`
	Category         models.Category `json:"category" validate:"required,category"`
	ShortDescription string          `json:"shortDescription" validate:"required"`
	FullDescription  string          `json:"fullDescription"`
	ImageURL         string          `json:"imageUrl" validate:"required"`
	Gallery          []string        `json:"gallery"`
	Technologies     []string        `json:"technologies"`
	Features         []string        `json:"features"`
	DemoURL          string          `json:"demoUrl" validate:"omitempty,url"`
}

// Project переводит запрос в модель.
func (r Request) Project() models.Project {
	return models.Project{
		Title:            r.Title,
		Category:         r.Category,
		ShortDescription: r.ShortDescription,
		FullDescription:  r.FullDescription,
		ImageURL:         r.ImageURL,
		Gallery:          r.Gallery,
		Technologies:     r.Technologies,
		Features:         r.Features,
		DemoURL:          r.DemoURL,
	}
}

// Handler обрабатывает создание проекта.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает добавление проекта.
type Service interface {
	Add(ctx context.Context, p models.Project) (models.Project, error)
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
// @Summary Создать проект
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body Request true "Проект"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /admin/projects [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.project.create"

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

	project, err := h.service.Add(r.Context(), req.Project())
	if err != nil {
		log.Error("failed to create project", sl.Err(err))
		response.ServiceError(w, r, err, "could not create project")
		return
	}

	log.Info("project created", slog.String("id", project.ID))
	response.OK(w, r, http.StatusCreated, map[string]any{
		"project": project,
	})
}
