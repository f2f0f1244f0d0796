// Package health реализует проверку живости сервиса.
package health

import (
	"net/http"

	"github.com/magabrotheeeer/portfolio-showcase/internal/http/response"
)

// Handler отвечает {"status":"ok"}, пока процесс обслуживает запросы.
type Handler struct{}

// New создает новый Handler.
func New() *Handler {
	return &Handler{}
}

// ServeHTTP godoc
// @Summary Проверка живости
// @Tags Service
// @Produce json
// @Success 200 {object} response.Response
// @Router /health [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response.OK(w, r, http.StatusOK, map[string]any{
		"status": "ok",
	})
}
