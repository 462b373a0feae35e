// Package services содержит логику бизнес-уровня для регистрации и аутентификации пользователей.
package services

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/sabari-m/fitness-tracker/internal/lib/jwt"
	"github.com/sabari-m/fitness-tracker/internal/lib/password"
	"github.com/sabari-m/fitness-tracker/internal/models"
	"github.com/sabari-m/fitness-tracker/internal/storage/repository"
)

// Ошибки валидации входных данных и аутентификации.
var (
	// ErrMissingFields — не заполнено одно из обязательных полей.
	ErrMissingFields = errors.New("all fields are required")
	// ErrInvalidEmail — email не похож на адрес электронной почты.
	ErrInvalidEmail = errors.New("invalid email format")
	// ErrShortUsername — username короче допустимого минимума.
	ErrShortUsername = fmt.Errorf("username must be at least %d characters", models.MinUsernameLen)
	// ErrShortPassword — пароль короче допустимого минимума.
	ErrShortPassword = fmt.Errorf("password must be at least %d characters", models.MinPasswordLen)
	// ErrInvalidCredentials возвращается одинаково для неизвестного email
	// и неверного пароля, чтобы не раскрывать, что именно не совпало.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его UID.
	CreateUser(ctx context.Context, user models.User) (string, error)

	// GetUserByEmail возвращает пользователя по email или ошибку, если не найден.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByUsername возвращает пользователя по имени или ошибку, если не найден.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// AuthService отвечает за регистрацию и вход пользователей.
type AuthService struct {
	users    UserRepository
	hasher   *password.Hasher
	jwtMaker jwt.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, hasher *password.Hasher, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		hasher:   hasher,
		jwtMaker: jwtMaker,
	}
}

// Register проверяет входные данные, уникальность email и username,
// хэширует пароль и создает пользователя. Возвращает UID новой записи.
//
// Порядок проверок фиксирован: обязательность полей, форма email, длины,
// занятость email и только затем занятость username. Предварительные проверки
// дают детерминированные сообщения, но арбитром уникальности остаётся хранилище:
// конфликт на вставке возвращается теми же ошибками.
func (s *AuthService) Register(ctx context.Context, username, email, rawPassword string) (string, error) {
	if username == "" || email == "" || rawPassword == "" {
		return "", ErrMissingFields
	}
	if !models.ValidEmail(email) {
		return "", ErrInvalidEmail
	}
	if utf8.RuneCountInString(rawPassword) < models.MinPasswordLen {
		return "", ErrShortPassword
	}
	if utf8.RuneCountInString(username) < models.MinUsernameLen {
		return "", ErrShortUsername
	}

	if _, err := s.users.GetUserByEmail(ctx, email); err == nil {
		return "", repository.ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return "", err
	}
	if _, err := s.users.GetUserByUsername(ctx, username); err == nil {
		return "", repository.ErrUsernameTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return "", err
	}

	hashed, err := s.hasher.Hash(rawPassword)
	if err != nil {
		return "", err
	}
	user := models.User{
		UID:          uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
	}
	return s.users.CreateUser(ctx, user)
}

// Login проверяет пароль пользователя по email и выпускает JWT.
// Возвращает токен и представление пользователя без хэша пароля.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (string, *models.PublicUser, error) {
	if email == "" || rawPassword == "" {
		return "", nil, ErrMissingFields
	}
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if err := s.hasher.Compare(user.PasswordHash, rawPassword); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	token, err := s.jwtMaker.GenerateToken(user.UID, user.Username, user.Email)
	if err != nil {
		return "", nil, err
	}
	return token, user.Public(), nil
}
