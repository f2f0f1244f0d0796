// Package categories отдаёт закрытый перечень категорий проектов.
package categories

import (
	"net/http"

	"github.com/magabrotheeeer/portfolio-showcase/internal/http/response"
	"github.com/magabrotheeeer/portfolio-showcase/internal/models"
)

// Handler отдаёт категории в порядке отображения.
type Handler struct{}

// New создает новый Handler.
func New() *Handler {
	return &Handler{}
}

// ServeHTTP godoc
// @Summary Категории проектов
// @Description "All" в перечень не входит и используется только как фильтр.
// @Tags Projects
// @Produce json
// @Success 200 {object} response.Response
// @Router /categories [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response.OK(w, r, http.StatusOK, map[string]any{
		"categories": models.Categories(),
		"filterAll":  models.CategoryAll,
	})
}
