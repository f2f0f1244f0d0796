// Package remove реализует HTTP-обработчик удаления приложения.
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

// Handler обрабатывает удаление приложения.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает удаление приложения.
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
// @Summary Удалить приложение
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID приложения"
// @Success 200 {object} response.Response
// @Router /admin/apps/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.app.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	deleted, err := h.service.Delete(r.Context(), id)
	if err != nil {
		log.Error("failed to delete app", sl.Err(err))
		response.ServiceError(w, r, err, "could not delete app")
		return
	}

	log.Info("app delete handled", slog.String("id", id), slog.Bool("deleted", deleted))
	response.OK(w, r, http.StatusOK, map[string]any{
		"id":      id,
		"deleted": deleted,
	})
}
