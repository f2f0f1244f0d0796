// Package list реализует HTTP-обработчик списка проектов с фильтром по категории.
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

// Handler обрабатывает запросы списка проектов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает чтение проектов.
type Service interface {
	ListByCategory(ctx context.Context, category models.Category) ([]models.Project, error)
	Latest(ctx context.Context, n int) ([]models.Project, error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список проектов
// @Description Возвращает проекты, новые первыми. category=All или пустая означает все категории.
// @Tags Projects
// @Produce json
// @Param category query string false "Категория"
// @Param limit query int false "Максимальное число проектов"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Failure 501 {object} response.ErrorResponse
// @Router /projects [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.project.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		log.Warn("invalid limit", sl.Err(err))
		response.Fail(w, r, http.StatusBadRequest, "limit must be a non-negative integer")
		return
	}

	category := models.Category(r.URL.Query().Get("category"))
	if category != "" && category != models.CategoryAll && !category.Valid() {
		log.Warn("unknown category", slog.String("category", string(category)))
		response.Fail(w, r, http.StatusBadRequest, "unknown category")
		return
	}

	var projects []models.Project
	if category == "" || category == models.CategoryAll {
		projects, err = h.service.Latest(r.Context(), limit)
	} else {
		projects, err = h.service.ListByCategory(r.Context(), category)
		if err == nil && limit > 0 && limit < len(projects) {
			projects = projects[:limit]
		}
	}
	if err != nil {
		log.Error("failed to list projects", sl.Err(err))
		response.ServiceError(w, r, err, "could not list projects")
		return
	}

	log.Debug("projects listed", slog.Int("count", len(projects)))
	response.OK(w, r, http.StatusOK, map[string]any{
		"projects": projects,
		"count":    len(projects),
	})
}

func parseLimit(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, strconv.ErrRange
	}
	return n, nil
}
