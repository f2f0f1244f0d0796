// Package read реализует HTTP-обработчик получения проекта по id.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/portfolio-showcase/internal/http/response"
	"github.com/magabrotheeeer/portfolio-showcase/internal/lib/sl"
	"github.com/magabrotheeeer/portfolio-showcase/internal/models"
	"github.com/magabrotheeeer/portfolio-showcase/internal/services/catalog"
)

// Handler обрабатывает запросы на получение проекта по идентификатору.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает чтение проекта.
type Service interface {
	Get(ctx context.Context, id string) (models.Project, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Проект по id
// @Tags Projects
// @Produce json
// @Param id path string true "ID проекта"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /projects/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.project.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	project, err := h.service.Get(r.Context(), id)
	if errors.Is(err, catalog.ErrNotFound) {
		log.Info("project not found", slog.String("id", id))
		response.Fail(w, r, http.StatusNotFound, "project not found")
		return
	}
	if err != nil {
		log.Error("failed to read project", sl.Err(err))
		response.ServiceError(w, r, err, "could not read project")
		return
	}

	response.OK(w, r, http.StatusOK, map[string]any{
		"project": project,
	})
}
