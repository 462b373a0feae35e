// Package services содержит бизнес-логику работы с профилем пользователя и его кешированием.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sabari-m/fitness-tracker/internal/models"
	"github.com/sabari-m/fitness-tracker/internal/storage/repository"
)

const cacheTTL = time.Hour

// UserRepository определяет методы для работы с пользователями в хранилище.
type UserRepository interface {
	// GetUserByUID возвращает пользователя по UID.
	GetUserByUID(ctx context.Context, userUID string) (*models.User, error)
	// GetUserByEmail возвращает пользователя по email.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// GetUserByUsername возвращает пользователя по username.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	// UpdateUser обновляет заполненные поля и возвращает обновлённую запись.
	UpdateUser(ctx context.Context, userUID string, upd models.UpdateUserRequest) (*models.User, error)
	// DeleteUser безвозвратно удаляет запись пользователя.
	DeleteUser(ctx context.Context, userUID string) error
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// ProfileService реализует чтение, обновление и удаление собственного профиля.
// Токены сервис не проверяет: идентификатор пользователя приходит из
// HTTP-middleware уже проверенным.
type ProfileService struct {
	users UserRepository
	cache Cache
	log   *slog.Logger
}

// NewProfileService создает новый экземпляр ProfileService.
func NewProfileService(users UserRepository, cache Cache, log *slog.Logger) *ProfileService {
	return &ProfileService{
		users: users,
		cache: cache,
		log:   log,
	}
}

func cacheKey(userUID string) string {
	return fmt.Sprintf("user:%s", userUID)
}

// Get возвращает профиль пользователя, используя кеш или хранилище.
func (s *ProfileService) Get(ctx context.Context, userUID string) (*models.PublicUser, error) {
	var cached *models.PublicUser
	key := cacheKey(userUID)
	found, err := s.cache.Get(key, &cached)
	if err != nil {
		s.log.Warn("failed to read from cache", slog.String("key", key), slog.Any("err", err))
	}
	if found {
		return cached, nil
	}

	user, err := s.users.GetUserByUID(ctx, userUID)
	if err != nil {
		return nil, err
	}
	public := user.Public()
	if err := s.cache.Set(key, public, cacheTTL); err != nil {
		s.log.Warn("failed to cache profile", slog.String("key", key), slog.Any("err", err))
	}
	return public, nil
}

// Update обновляет заполненные поля профиля и возвращает обновлённое представление.
//
// Для смены username и email выполняется предварительная проверка занятости
// значения другим пользователем (собственное текущее значение не считается
// конфликтом). Окончательную уникальность гарантируют ограничения таблицы:
// конфликт при записи возвращается теми же ошибками, без повторных попыток.
func (s *ProfileService) Update(ctx context.Context, userUID string, upd models.UpdateUserRequest) (*models.PublicUser, error) {
	current, err := s.users.GetUserByUID(ctx, userUID)
	if err != nil {
		return nil, err
	}

	if violations := upd.Validate(); len(violations) > 0 {
		return nil, &models.ValidationError{Violations: violations}
	}

	if upd.Username != nil && *upd.Username != current.Username {
		other, err := s.users.GetUserByUsername(ctx, *upd.Username)
		if err == nil && other.UID != userUID {
			return nil, repository.ErrUsernameTaken
		}
		if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
			return nil, err
		}
	}
	if upd.Email != nil && !strings.EqualFold(*upd.Email, current.Email) {
		other, err := s.users.GetUserByEmail(ctx, *upd.Email)
		if err == nil && other.UID != userUID {
			return nil, repository.ErrEmailTaken
		}
		if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
			return nil, err
		}
	}

	updated, err := s.users.UpdateUser(ctx, userUID, upd)
	if err != nil {
		return nil, err
	}
	s.log.Info("profile updated", slog.String("user_uid", userUID))

	key := cacheKey(userUID)
	public := updated.Public()
	if err := s.cache.Set(key, public, cacheTTL); err != nil {
		s.log.Warn("failed to refresh cache", slog.String("key", key), slog.Any("err", err))
	}
	return public, nil
}

// Delete безвозвратно удаляет учётную запись пользователя и инвалидирует кеш.
// Мягкого удаления и каскадной очистки нет; уже выданные токены остаются
// валидными до истечения их срока действия.
func (s *ProfileService) Delete(ctx context.Context, userUID string) error {
	key := cacheKey(userUID)
	if err := s.cache.Invalidate(key); err != nil {
		s.log.Warn("failed to remove from cache", slog.String("key", key), slog.Any("err", err))
	}

	if err := s.users.DeleteUser(ctx, userUID); err != nil {
		return err
	}
	s.log.Info("profile deleted", slog.String("user_uid", userUID))
	return nil
}
