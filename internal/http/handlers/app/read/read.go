// Package read реализует HTTP-обработчик получения приложения по id.
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

// Handler обрабатывает запросы на получение приложения.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает чтение приложения.
type Service interface {
	Get(ctx context.Context, id string) (models.MobileApp, error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Приложение по id
// @Tags Apps
// @Produce json
// @Param id path string true "ID приложения"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.ErrorResponse
// @Router /apps/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.app.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	app, err := h.service.Get(r.Context(), id)
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		log.Info("app not found", slog.String("id", id))
		response.Fail(w, r, http.StatusNotFound, "app not found")
		return
	case err != nil:
		log.Error("failed to read app", sl.Err(err))
		response.ServiceError(w, r, err, "could not read app")
		return
	}

	response.OK(w, r, http.StatusOK, map[string]any{
		"app": app,
	})
}
