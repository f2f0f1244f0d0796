package create

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/portfolio-showcase/internal/lib/sl"
	"github.com/magabrotheeeer/portfolio-showcase/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Add(ctx context.Context, p models.Project) (models.Project, error) {
	args := m.Called(ctx, p)
	res, _ := args.Get(0).(models.Project)
	return res, args.Error(1)
}

func TestCreateHandler(t *testing.T) {
	validReq := Request{
		Title:            "X",
		Category:         models.CategoryGym,
		ShortDescription: "short",
		ImageURL:         "data:image/png;base64,AAAA",
		Technologies:     []string{"Go"},
		DemoURL:          "https://example.com",
	}

	tests := []struct {
		name           string
		body           any
		setupMock      func(*MockService)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "успешное создание",
			body: validReq,
			setupMock: func(m *MockService) {
				saved := validReq.Project()
				saved.ID = "new-id"
				saved.CreatedAt = 1
				m.On("Add", mock.Anything, validReq.Project()).Return(saved, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "некорректный JSON",
			body:           "{bad json",
			setupMock:      func(*MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "failed to decode request",
		},
		{
			name: "неизвестная категория",
			body: func() Request {
				r := validReq
				r.Category = "Spaceship"
				return r
			}(),
			setupMock:      func(*MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedError:  "field category must be a known category",
		},
		{
			name: "нет заголовка",
			body: func() Request {
				r := validReq
				r.Title = ""
				return r
			}(),
			setupMock:      func(*MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedError:  "field title is a required field",
		},
		{
			name: "ошибка сервиса",
			body: validReq,
			setupMock: func(m *MockService) {
				m.On("Add", mock.Anything, mock.Anything).Return(nil, errors.New("write failed")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "could not create project",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			var body []byte
			if s, ok := tt.body.(string); ok {
				body = []byte(s)
			} else {
				var err error
				body, err = json.Marshal(tt.body)
				require.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/projects", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			New(sl.NewDiscardLogger(), mockService).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var resp struct {
				Status string `json:"status"`
				Error  string `json:"error"`
				Data   struct {
					Project models.Project `json:"project"`
				} `json:"data"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			if tt.expectedError != "" {
				assert.Contains(t, resp.Error, tt.expectedError)
			} else {
				assert.Equal(t, "OK", resp.Status)
				assert.Equal(t, "new-id", resp.Data.Project.ID)
			}
			mockService.AssertExpectations(t)
		})
	}
}
