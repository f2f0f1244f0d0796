// Package logout реализует HTTP-обработчик завершения сессии.
package logout

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/portfolio-showcase/internal/http/middlewarectx"
	"github.com/magabrotheeeer/portfolio-showcase/internal/http/response"
	"github.com/magabrotheeeer/portfolio-showcase/internal/lib/jwt"
	"github.com/magabrotheeeer/portfolio-showcase/internal/lib/sl"
)

// Handler отзывает текущий JWT.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает отзыв сессии.
type Service interface {
	Logout(ctx context.Context, claims *jwt.CustomClaims) error
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Выход
// @Description Отзывает текущий токен до истечения его срока.
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.ErrorResponse
// @Router /logout [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	claims, err := middlewarectx.ClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("no session", sl.Err(err))
		response.Fail(w, r, http.StatusUnauthorized, "user identification missing")
		return
	}

	if err := h.service.Logout(r.Context(), claims); err != nil {
		log.Error("failed to revoke token", sl.Err(err))
		response.Fail(w, r, http.StatusInternalServerError, "could not log out")
		return
	}

	log.Info("logged out", slog.String("user_id", claims.UserID))
	response.OK(w, r, http.StatusOK, map[string]any{
		"loggedOut": true,
	})
}
