package signup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/portfolio-showcase/internal/kvstore"
	"github.com/magabrotheeeer/portfolio-showcase/internal/lib/sl"
	"github.com/magabrotheeeer/portfolio-showcase/internal/models"
	"github.com/magabrotheeeer/portfolio-showcase/internal/services/auth"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Signup(ctx context.Context, name, email, password string) (models.User, error) {
	args := m.Called(ctx, name, email, password)
	user, _ := args.Get(0).(models.User)
	return user, args.Error(1)
}

func TestSignupHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешная регистрация",
			body: `{"name":"Bob","email":"bob@x.io","password":"secret1"}`,
			setupMock: func(m *MockService) {
				m.On("Signup", mock.Anything, "Bob", "bob@x.io", "secret1").
					Return(models.User{ID: "u1", Name: "Bob", Email: "bob@x.io", Role: models.RoleUser}, nil).Once()
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"status":"OK","data":{"user":{"id":"u1","name":"Bob","email":"bob@x.io","role":"USER"}}}`,
		},
		{
			name: "email занят",
			body: `{"name":"Bob","email":"bob@x.io","password":"secret1"}`,
			setupMock: func(m *MockService) {
				m.On("Signup", mock.Anything, "Bob", "bob@x.io", "secret1").
					Return(models.User{}, auth.ErrEmailExists).Once()
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"Email already exists."}`,
		},
		{
			name:           "короткий пароль",
			body:           `{"name":"Bob","email":"bob@x.io","password":"123"}`,
			setupMock:      func(*MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"status":"Error","error":"field password must be at least 6"}`,
		},
		{
			name:           "пароль длиннее 72 символов",
			body:           `{"name":"Bob","email":"bob@x.io","password":"` + strings.Repeat("a", 80) + `"}`,
			setupMock:      func(*MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"status":"Error","error":"field password must be at most 72"}`,
		},
		{
			name: "пароль длиннее 72 байт в многобайтной кодировке",
			body: `{"name":"Bob","email":"bob@x.io","password":"` + strings.Repeat("é", 40) + `"}`,
			setupMock: func(m *MockService) {
				m.On("Signup", mock.Anything, "Bob", "bob@x.io", strings.Repeat("é", 40)).
					Return(models.User{}, auth.ErrPasswordTooLong).Once()
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"status":"Error","error":"field password must be at most 72 bytes"}`,
		},
		{
			name:           "имя из пробелов",
			body:           `{"name":"   ","email":"bob@x.io","password":"secret1"}`,
			setupMock:      func(*MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"status":"Error","error":"field name is a required field"}`,
		},
		{
			name: "имя обрезается до передачи в сервис",
			body: `{"name":"  Bob  ","email":"bob@x.io","password":"secret1"}`,
			setupMock: func(m *MockService) {
				m.On("Signup", mock.Anything, "Bob", "bob@x.io", "secret1").
					Return(models.User{ID: "u1", Name: "Bob", Email: "bob@x.io", Role: models.RoleUser}, nil).Once()
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"status":"OK","data":{"user":{"id":"u1","name":"Bob","email":"bob@x.io","role":"USER"}}}`,
		},
		{
			name:           "пустое тело",
			body:           ``,
			setupMock:      func(*MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid request body"}`,
		},
		{
			name: "бэкенд не подключён",
			body: `{"name":"Bob","email":"bob@x.io","password":"secret1"}`,
			setupMock: func(m *MockService) {
				m.On("Signup", mock.Anything, "Bob", "bob@x.io", "secret1").
					Return(models.User{}, kvstore.ErrNotImplemented).Once()
			},
			expectedStatus: http.StatusNotImplemented,
			expectedBody:   `{"status":"Error","error":"storage backend not implemented"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/signup", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			New(sl.NewDiscardLogger(), svc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			svc.AssertExpectations(t)
		})
	}
}
