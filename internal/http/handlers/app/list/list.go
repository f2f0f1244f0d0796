// Package list реализует HTTP-обработчик списка мобильных приложений.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/portfolio-showcase/internal/http/response"
	"github.com/magabrotheeeer/portfolio-showcase/internal/lib/sl"
	"github.com/magabrotheeeer/portfolio-showcase/internal/models"
)

// Handler обрабатывает запросы списка приложений.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает чтение приложений.
type Service interface {
	Latest(ctx context.Context, n int) ([]models.MobileApp, error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список приложений
// @Description Возвращает приложения, новые первыми.
// @Tags Apps
// @Produce json
// @Param limit query int false "Максимальное число приложений"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /apps [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.app.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			log.Warn("invalid limit", slog.String("limit", raw))
			response.Fail(w, r, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	apps, err := h.service.Latest(r.Context(), limit)
	if err != nil {
		log.Error("failed to list apps", sl.Err(err))
		response.ServiceError(w, r, err, "could not list apps")
		return
	}

	response.OK(w, r, http.StatusOK, map[string]any{
		"apps":  apps,
		"count": len(apps),
	})
}
