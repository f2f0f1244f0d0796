// Package update реализует HTTP-обработчик частичного обновления проекта.
package update

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/portfolio-showcase/internal/http/response"
	"github.com/magabrotheeeer/portfolio-showcase/internal/lib/sl"
	"github.com/magabrotheeeer/portfolio-showcase/internal/lib/valid"
	"github.com/magabrotheeeer/portfolio-showcase/internal/models"
)

// Handler обрабатывает обновление проекта.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает обновление проекта.
type Service interface {
	Update(ctx context.Context, id string, patch models.ProjectPatch) (bool, error)
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
// @Summary Обновить проект
// @Description Переданные поля заменяют текущие, id и createdAt не меняются.
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "ID проекта"
// @Param request body models.ProjectPatch true "Изменяемые поля"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /admin/projects/{id} [patch]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.project.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var patch models.ProjectPatch
	if err := render.DecodeJSON(r.Body, &patch); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		response.Fail(w, r, http.StatusBadRequest, "failed to decode request")
		return
	}

	if err := h.validate.Struct(patch); err != nil {
		log.Warn("validation failed", sl.Err(err))
		response.Validation(w, r, err)
		return
	}

	id := chi.URLParam(r, "id")
	found, err := h.service.Update(r.Context(), id, patch)
	if err != nil {
		log.Error("failed to update project", sl.Err(err))
		response.ServiceError(w, r, err, "could not update project")
		return
	}
	if !found {
		log.Info("project not found", slog.String("id", id))
		response.Fail(w, r, http.StatusNotFound, "project not found")
		return
	}

	log.Info("project updated", slog.String("id", id))
	response.OK(w, r, http.StatusOK, map[string]any{
		"id":      id,
		"updated": true,
	})
}
