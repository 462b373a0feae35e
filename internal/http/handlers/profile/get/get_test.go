package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sabari-m/fitness-tracker/internal/http/middlewarectx"
	"github.com/sabari-m/fitness-tracker/internal/models"
	"github.com/sabari-m/fitness-tracker/internal/storage/repository"
)

// MockService реализует интерфейс get.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Get(ctx context.Context, userUID string) (*models.PublicUser, error) {
	args := m.Called(ctx, userUID)
	var user *models.PublicUser
	if args.Get(0) != nil {
		user = args.Get(0).(*models.PublicUser)
	}
	return user, args.Error(1)
}

func ptr[T any](v T) *T { return &v }

func TestGetProfileHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		userUID        string
		withContext    bool
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "успешное чтение профиля",
			userUID:     "uid-1",
			withContext: true,
			setupMock: func(m *MockService) {
				m.On("Get", mock.Anything, "uid-1").
					Return(&models.PublicUser{
						UID:      "uid-1",
						Username: "testuser",
						Email:    "test@example.com",
						Age:      ptr(30),
						Height:   ptr(175.0),
						Weight:   ptr(70.0),
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"username":"testuser"`,
		},
		{
			name:           "отсутствует идентификатор в контексте",
			withContext:    false,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"user identification missing"}`,
		},
		{
			name:        "пользователь не найден",
			userUID:     "uid-missing",
			withContext: true,
			setupMock: func(m *MockService) {
				m.On("Get", mock.Anything, "uid-missing").
					Return(nil, repository.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"user not found"}`,
		},
		{
			name:        "ошибка сервиса",
			userUID:     "uid-1",
			withContext: true,
			setupMock: func(m *MockService) {
				m.On("Get", mock.Anything, "uid-1").
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"internal service error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, "/profile", nil)
			if tt.withContext {
				ctx := context.WithValue(req.Context(), middlewarectx.UserUID, tt.userUID)
				req = req.WithContext(ctx)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
