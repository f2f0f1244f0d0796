// Package remove реализует HTTP-обработчик удаления проекта.
package remove

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/portfolio-showcase/internal/http/response"
	"github.com/magabrotheeeer/portfolio-showcase/internal/lib/sl"
)

// Handler обрабатывает удаление проекта.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает удаление проекта.
type Service interface {
	Delete(ctx context.Context, id string) (bool, error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удалить проект
// @Description Повторное удаление не является ошибкой: deleted=false.
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID проекта"
// @Success 200 {object} response.Response
// @Failure 500 {object} response.ErrorResponse
// @Router /admin/projects/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.project.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	deleted, err := h.service.Delete(r.Context(), id)
	if err != nil {
		log.Error("failed to delete project", sl.Err(err))
		response.ServiceError(w, r, err, "could not delete project")
		return
	}

	log.Info("project delete handled", slog.String("id", id), slog.Bool("deleted", deleted))
	response.OK(w, r, http.StatusOK, map[string]any{
		"id":      id,
		"deleted": deleted,
	})
}
