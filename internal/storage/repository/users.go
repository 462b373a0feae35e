package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/sabari-m/fitness-tracker/internal/models"
)

const userColumns = `uid, username, email, password_hash, age, gender, height, weight, created_at`

// scanUser читает одну строку таблицы users с учётом NULL-полей профиля.
func scanUser(row *sql.Row) (*models.User, error) {
	u := &models.User{}
	var age sql.NullInt64
	var gender sql.NullString
	var height, weight sql.NullFloat64
	if err := row.Scan(&u.UID, &u.Username, &u.Email, &u.PasswordHash,
		&age, &gender, &height, &weight, &u.CreatedAt); err != nil {
		return nil, err
	}
	if age.Valid {
		v := int(age.Int64)
		u.Age = &v
	}
	if gender.Valid {
		u.Gender = &gender.String
	}
	if height.Valid {
		u.Height = &height.Float64
	}
	if weight.Valid {
		u.Weight = &weight.Float64
	}
	return u, nil
}

// CreateUser сохраняет нового пользователя и возвращает его UID.
// Конфликт уникальности username или email возвращается как
// ErrUsernameTaken или ErrEmailTaken.
func (s *Storage) CreateUser(ctx context.Context, user models.User) (string, error) {
	const op = "storage.CreateUser"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newUID string
	query := `INSERT INTO users (uid, username, email, password_hash, age, gender, height, weight)
			  VALUES ($1, $2, LOWER($3), $4, $5, $6, $7, $8)
			  RETURNING uid;`
	if err := s.DB.QueryRowContext(ctx, query,
		user.UID, user.Username, user.Email, user.PasswordHash,
		user.Age, user.Gender, user.Height, user.Weight).Scan(&newUID); err != nil {
		return "", mapUserError(op, err)
	}
	return newUID, nil
}

// GetUserByEmail возвращает пользователя по email (без учёта регистра).
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.GetUserByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + userColumns + `
			  FROM users
			  WHERE email = LOWER($1)`
	u, err := scanUser(s.DB.QueryRowContext(ctx, query, email))
	if err != nil {
		return nil, mapUserError(op, err)
	}
	return u, nil
}

// GetUserByUsername возвращает пользователя по его username (с учётом регистра).
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "storage.GetUserByUsername"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + userColumns + `
			  FROM users
			  WHERE username = $1`
	u, err := scanUser(s.DB.QueryRowContext(ctx, query, username))
	if err != nil {
		return nil, mapUserError(op, err)
	}
	return u, nil
}

// GetUserByUID возвращает пользователя по его UID.
func (s *Storage) GetUserByUID(ctx context.Context, userUID string) (*models.User, error) {
	const op = "storage.GetUserByUID"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + userColumns + `
			  FROM users
			  WHERE uid = $1`
	u, err := scanUser(s.DB.QueryRowContext(ctx, query, userUID))
	if err != nil {
		return nil, mapUserError(op, err)
	}
	return u, nil
}

// UpdateUser обновляет только заполненные поля запроса и возвращает
// обновлённую запись. Отсутствие записи — ErrUserNotFound, конфликт
// уникальности и нарушение CHECK-ограничений мапятся так же, как в CreateUser.
func (s *Storage) UpdateUser(ctx context.Context, userUID string, upd models.UpdateUserRequest) (*models.User, error) {
	const op = "storage.UpdateUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	if upd.Empty() {
		return s.GetUserByUID(ctx, userUID)
	}

	set := make([]string, 0, 6)
	args := make([]any, 0, 7)
	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if upd.Username != nil {
		add("username", *upd.Username)
	}
	if upd.Email != nil {
		add("email", strings.ToLower(*upd.Email))
	}
	if upd.Age != nil {
		add("age", *upd.Age)
	}
	if upd.Gender != nil {
		add("gender", *upd.Gender)
	}
	if upd.Height != nil {
		add("height", *upd.Height)
	}
	if upd.Weight != nil {
		add("weight", *upd.Weight)
	}
	args = append(args, userUID)

	query := fmt.Sprintf(`UPDATE users
			  SET %s
			  WHERE uid = $%d
			  RETURNING %s;`, strings.Join(set, ", "), len(args), userColumns)
	u, err := scanUser(s.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, mapUserError(op, err)
	}
	return u, nil
}

// DeleteUser безвозвратно удаляет запись пользователя.
// Если запись отсутствует, возвращает ErrUserNotFound.
func (s *Storage) DeleteUser(ctx context.Context, userUID string) error {
	const op = "storage.DeleteUser"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM users WHERE uid = $1`
	res, err := s.DB.ExecContext(ctx, query, userUID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if count == 0 {
		return fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}
	return nil
}
