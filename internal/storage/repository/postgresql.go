// Package repository реализует хранилище данных на основе PostgreSQL
// для управления учётными записями пользователей. Предоставляет методы
// создания, чтения, частичного обновления и удаления записей.
//
// Хранилище — единственный арбитр уникальности username и email:
// предварительные проверки в сервисах не защищены от гонок, окончательное
// решение принимают ограничения таблицы users.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Ошибки хранилища, на которые опирается бизнес-логика.
var (
	// ErrUserNotFound — запись пользователя отсутствует.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken — email уже занят другой записью.
	ErrEmailTaken = errors.New("email already in use")
	// ErrUsernameTaken — username уже занят другой записью.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrOutOfRange — значение поля профиля нарушает CHECK-ограничение таблицы.
	ErrOutOfRange = errors.New("profile value out of range")
)

// Коды ошибок PostgreSQL: нарушение уникальности и нарушение CHECK.
const (
	pgUniqueViolation = "23505"
	pgCheckViolation  = "23514"
)

// Storage инкапсулирует соединение с базой данных PostgreSQL
// и реализует методы работы с пользователями.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL и проверяет его доступность.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// mapUserError переводит ошибки PostgreSQL в доменные ошибки хранилища.
func mapUserError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			if pgErr.ConstraintName == "users_email_key" {
				return fmt.Errorf("%s: %w", op, ErrEmailTaken)
			}
			return fmt.Errorf("%s: %w", op, ErrUsernameTaken)
		case pgCheckViolation:
			return fmt.Errorf("%s: %w", op, ErrOutOfRange)
		}
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}
