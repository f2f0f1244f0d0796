// Package update реализует HTTP-обработчик частичного обновления приложения.
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

// Handler обрабатывает обновление приложения.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает обновление приложения.
type Service interface {
	Update(ctx context.Context, id string, patch models.AppPatch) (bool, error)
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
// @Summary Обновить приложение
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "ID приложения"
// @Param request body models.AppPatch true "Изменяемые поля"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.ErrorResponse
// @Router /admin/apps/{id} [patch]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.app.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var patch models.AppPatch
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
		log.Error("failed to update app", sl.Err(err))
		response.ServiceError(w, r, err, "could not update app")
		return
	}
	if !found {
		response.Fail(w, r, http.StatusNotFound, "app not found")
		return
	}

	log.Info("app updated", slog.String("id", id))
	response.OK(w, r, http.StatusOK, map[string]any{
		"id":      id,
		"updated": true,
	})
}
