package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sabari-m/fitness-tracker/internal/models"
)

func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestCreateUser_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	verify := NewTestVerification(storage)
	ctx := context.Background()

	t.Run("успешное создание пользователя", func(t *testing.T) {
		data := GetTestUserData()
		uid, err := storage.CreateUser(ctx, models.User{
			UID:          data.UID,
			Username:     data.Username,
			Email:        data.Email,
			PasswordHash: data.PasswordHash,
		})
		require.NoError(t, err)
		assert.Equal(t, data.UID, uid)
		verify.VerifyUserExists(t, uid)
	})

	t.Run("email сохраняется в нижнем регистре", func(t *testing.T) {
		uid := uuid.New().String()
		_, err := storage.CreateUser(ctx, models.User{
			UID:          uid,
			Username:     "mixedcase",
			Email:        "MixedCase@Example.COM",
			PasswordHash: "hashedpassword",
		})
		require.NoError(t, err)
		verify.VerifyUserField(t, uid, "email", "mixedcase@example.com")
	})

	t.Run("конфликт email", func(t *testing.T) {
		uid := uuid.New().String()
		_, err := storage.CreateUser(ctx, models.User{
			UID:          uid,
			Username:     "anotheruser",
			Email:        "test@example.com",
			PasswordHash: "hashedpassword",
		})
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("конфликт username", func(t *testing.T) {
		uid := uuid.New().String()
		_, err := storage.CreateUser(ctx, models.User{
			UID:          uid,
			Username:     "testuser",
			Email:        "unique@example.com",
			PasswordHash: "hashedpassword",
		})
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})
}

func TestGetUser_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	ctx := context.Background()

	data := GetTestUserData()
	factory.CreateUserWithProfile(t, data.UID, data.Username, data.Email, data.PasswordHash,
		data.Age, data.Gender, data.Height, data.Weight)

	t.Run("поиск по email без учёта регистра", func(t *testing.T) {
		user, err := storage.GetUserByEmail(ctx, "TEST@example.COM")
		require.NoError(t, err)
		assert.Equal(t, data.UID, user.UID)
		assert.Equal(t, data.Username, user.Username)
		require.NotNil(t, user.Age)
		assert.Equal(t, data.Age, *user.Age)
	})

	t.Run("поиск по username", func(t *testing.T) {
		user, err := storage.GetUserByUsername(ctx, data.Username)
		require.NoError(t, err)
		assert.Equal(t, data.UID, user.UID)
	})

	t.Run("поиск по uid", func(t *testing.T) {
		user, err := storage.GetUserByUID(ctx, data.UID)
		require.NoError(t, err)
		assert.Equal(t, data.Email, user.Email)
		require.NotNil(t, user.Height)
		assert.Equal(t, data.Height, *user.Height)
	})

	t.Run("пользователь не найден", func(t *testing.T) {
		_, err := storage.GetUserByUID(ctx, uuid.New().String())
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("незаполненный профиль возвращает nil-поля", func(t *testing.T) {
		uid := uuid.New().String()
		NewTestDataFactory(storage).CreateUser(t, uid, "bareuser", "bare@example.com", "hashedpassword")

		user, err := storage.GetUserByUID(ctx, uid)
		require.NoError(t, err)
		assert.Nil(t, user.Age)
		assert.Nil(t, user.Gender)
		assert.Nil(t, user.Height)
		assert.Nil(t, user.Weight)
	})
}

func TestUpdateUser_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	verify := NewTestVerification(storage)
	ctx := context.Background()

	data := GetTestUserData()
	factory.CreateUserWithProfile(t, data.UID, data.Username, data.Email, data.PasswordHash,
		data.Age, data.Gender, data.Height, data.Weight)

	otherUID := uuid.New().String()
	factory.CreateUser(t, otherUID, "otheruser", "other@example.com", "hashedpassword")

	t.Run("обновляются только переданные поля", func(t *testing.T) {
		user, err := storage.UpdateUser(ctx, data.UID, models.UpdateUserRequest{
			Age:    intPtr(31),
			Weight: floatPtr(72.5),
		})
		require.NoError(t, err)
		require.NotNil(t, user.Age)
		assert.Equal(t, 31, *user.Age)
		require.NotNil(t, user.Weight)
		assert.Equal(t, 72.5, *user.Weight)
		// незатронутые поля остались прежними
		assert.Equal(t, data.Username, user.Username)
		require.NotNil(t, user.Height)
		assert.Equal(t, data.Height, *user.Height)
	})

	t.Run("новый email приводится к нижнему регистру", func(t *testing.T) {
		user, err := storage.UpdateUser(ctx, data.UID, models.UpdateUserRequest{
			Email: strPtr("Updated@Example.COM"),
		})
		require.NoError(t, err)
		assert.Equal(t, "updated@example.com", user.Email)
		verify.VerifyUserField(t, data.UID, "email", "updated@example.com")
	})

	t.Run("пустой запрос возвращает текущую запись", func(t *testing.T) {
		user, err := storage.UpdateUser(ctx, data.UID, models.UpdateUserRequest{})
		require.NoError(t, err)
		assert.Equal(t, data.UID, user.UID)
	})

	t.Run("конфликт username", func(t *testing.T) {
		_, err := storage.UpdateUser(ctx, data.UID, models.UpdateUserRequest{
			Username: strPtr("otheruser"),
		})
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("конфликт email", func(t *testing.T) {
		_, err := storage.UpdateUser(ctx, data.UID, models.UpdateUserRequest{
			Email: strPtr("other@example.com"),
		})
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("нарушение CHECK-ограничения", func(t *testing.T) {
		_, err := storage.UpdateUser(ctx, data.UID, models.UpdateUserRequest{
			Age: intPtr(500),
		})
		assert.ErrorIs(t, err, ErrOutOfRange)
	})

	t.Run("пользователь не найден", func(t *testing.T) {
		_, err := storage.UpdateUser(ctx, uuid.New().String(), models.UpdateUserRequest{
			Age: intPtr(31),
		})
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestDeleteUser_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	verify := NewTestVerification(storage)
	ctx := context.Background()

	data := GetTestUserData()
	factory.CreateUser(t, data.UID, data.Username, data.Email, data.PasswordHash)

	t.Run("успешное удаление", func(t *testing.T) {
		err := storage.DeleteUser(ctx, data.UID)
		require.NoError(t, err)
		verify.VerifyUserDeleted(t, data.UID)
	})

	t.Run("повторное удаление возвращает ErrUserNotFound", func(t *testing.T) {
		err := storage.DeleteUser(ctx, data.UID)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
