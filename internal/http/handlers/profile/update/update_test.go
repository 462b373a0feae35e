package update

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

// MockService реализует интерфейс update.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Update(ctx context.Context, userUID string, upd models.UpdateUserRequest) (*models.PublicUser, error) {
	args := m.Called(ctx, userUID, upd)
	var user *models.PublicUser
	if args.Get(0) != nil {
		user = args.Get(0).(*models.PublicUser)
	}
	return user, args.Error(1)
}

func ptr[T any](v T) *T { return &v }

func TestUpdateProfileHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	updatedUser := &models.PublicUser{
		UID:      "uid-1",
		Username: "newname",
		Email:    "test@example.com",
		Age:      ptr(31),
	}

	tests := []struct {
		name           string
		userUID        string
		withContext    bool
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "успешное обновление",
			userUID:     "uid-1",
			withContext: true,
			body:        `{"username":"newname","age":31}`,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, "uid-1",
					models.UpdateUserRequest{Username: ptr("newname"), Age: ptr(31)}).
					Return(updatedUser, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"message":"profile updated successfully"`,
		},
		{
			name:        "длинный username допустим",
			userUID:     "uid-1",
			withContext: true,
			body:        `{"username":"` + strings.Repeat("a", 60) + `"}`,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, "uid-1",
					models.UpdateUserRequest{Username: ptr(strings.Repeat("a", 60))}).
					Return(updatedUser, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"message":"profile updated successfully"`,
		},
		{
			name:           "отсутствует идентификатор в контексте",
			withContext:    false,
			body:           `{"age":31}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"user identification missing"}`,
		},
		{
			name:           "некорректный JSON",
			userUID:        "uid-1",
			withContext:    true,
			body:           `{"age":`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid request body"}`,
		},
		{
			name:           "возраст вне диапазона",
			userUID:        "uid-1",
			withContext:    true,
			body:           `{"age":500}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `field Age must be at most 120`,
		},
		{
			name:           "недопустимый пол",
			userUID:        "uid-1",
			withContext:    true,
			body:           `{"gender":"unknown"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `field Gender must be one of: male female other prefer-not-to-say`,
		},
		{
			name:        "username уже занят",
			userUID:     "uid-1",
			withContext: true,
			body:        `{"username":"takenname"}`,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, "uid-1",
					models.UpdateUserRequest{Username: ptr("takenname")}).
					Return(nil, repository.ErrUsernameTaken)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `"error":"username already taken"`,
		},
		{
			name:        "email уже занят",
			userUID:     "uid-1",
			withContext: true,
			body:        `{"email":"taken@example.com"}`,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, "uid-1",
					models.UpdateUserRequest{Email: ptr("taken@example.com")}).
					Return(nil, repository.ErrEmailTaken)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `"error":"email already in use"`,
		},
		{
			name:        "нарушение ограничений в хранилище",
			userUID:     "uid-1",
			withContext: true,
			body:        `{"age":42}`,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, "uid-1",
					models.UpdateUserRequest{Age: ptr(42)}).
					Return(nil, repository.ErrOutOfRange)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"profile values are out of range"}`,
		},
		{
			name:        "доменная валидация отклонила значения",
			userUID:     "uid-1",
			withContext: true,
			body:        `{"age":42}`,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, "uid-1",
					models.UpdateUserRequest{Age: ptr(42)}).
					Return(nil, &models.ValidationError{Violations: []models.Violation{
						{Field: "age", Message: "age must be between 1 and 120"},
					}})
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `age must be between 1 and 120`,
		},
		{
			name:        "пользователь не найден",
			userUID:     "uid-missing",
			withContext: true,
			body:        `{"age":31}`,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, "uid-missing",
					models.UpdateUserRequest{Age: ptr(31)}).
					Return(nil, repository.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"user not found"}`,
		},
		{
			name:        "ошибка сервиса",
			userUID:     "uid-1",
			withContext: true,
			body:        `{"age":31}`,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, "uid-1",
					models.UpdateUserRequest{Age: ptr(31)}).
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

			req := httptest.NewRequest(http.MethodPut, "/profile", strings.NewReader(tt.body))
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
