package update

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/portfolio-showcase/internal/lib/sl"
	"github.com/magabrotheeeer/portfolio-showcase/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Update(ctx context.Context, id string, patch models.AppPatch) (bool, error) {
	args := m.Called(ctx, id, patch)
	return args.Bool(0), args.Error(1)
}

func serve(svc *MockService, id, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/apps/"+id, strings.NewReader(body))
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	w := httptest.NewRecorder()
	New(sl.NewDiscardLogger(), svc).ServeHTTP(w, req)
	return w
}

func TestUpdateHandler_Rating(t *testing.T) {
	svc := new(MockService)
	svc.On("Update", mock.Anything, "app-1", mock.MatchedBy(func(p models.AppPatch) bool {
		return p.Rating != nil && *p.Rating == 4.2 && p.Name == nil
	})).Return(true, nil).Once()

	w := serve(svc, "app-1", `{"rating":4.2}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"OK","data":{"id":"app-1","updated":true}}`, w.Body.String())
	svc.AssertExpectations(t)
}

func TestUpdateHandler_NotFound(t *testing.T) {
	svc := new(MockService)
	svc.On("Update", mock.Anything, "nope", mock.Anything).Return(false, nil).Once()

	w := serve(svc, "nope", `{"name":"X"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "app not found")
}

func TestUpdateHandler_InvalidRating(t *testing.T) {
	svc := new(MockService)

	w := serve(svc, "app-1", `{"rating":0.5}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "field rating must be at least 1")
	svc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}
