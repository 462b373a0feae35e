// Package models содержит доменную модель пользователя системы,
// включающую данные учётной записи, хэш пароля, показатели профиля
// и дату создания. Структуры используются в бизнес‑логике и при работе с хранилищем.
package models

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// Границы значений полей профиля.
const (
	MinUsernameLen = 3
	MinPasswordLen = 6
	MinAge         = 1
	MaxAge         = 120
	MinHeightCm    = 50.0
	MaxHeightCm    = 250.0
	MinWeightKg    = 20.0
	MaxWeightKg    = 300.0
)

// Genders — допустимые значения поля gender.
var Genders = []string{"male", "female", "other", "prefer-not-to-say"}

var emailRegexp = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// ValidEmail проверяет, что строка имеет форму адреса электронной почты.
func ValidEmail(email string) bool {
	return emailRegexp.MatchString(email)
}

// ValidGender проверяет, что значение входит в допустимый перечень.
func ValidGender(gender string) bool {
	for _, g := range Genders {
		if g == gender {
			return true
		}
	}
	return false
}

// User представляет зарегистрированного пользователя системы.
// Показатели профиля опциональны и заполняются пользователем позже.
type User struct {
	UID          string     // Уникальный идентификатор пользователя
	Username     string     // Имя пользователя (уникальное)
	Email        string     // Электронная почта (уникальная, хранится в нижнем регистре)
	PasswordHash string     // Хэш пароля пользователя
	Age          *int       // Возраст, лет
	Gender       *string    // Пол, одно из Genders
	Height       *float64   // Рост, см
	Weight       *float64   // Вес, кг
	CreatedAt    time.Time  // Дата создания учётной записи
}

// PublicUser — представление пользователя без хэша пароля.
// Только эта структура сериализуется наружу.
type PublicUser struct {
	UID       string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Age       *int      `json:"age,omitempty"`
	Gender    *string   `json:"gender,omitempty"`
	Height    *float64  `json:"height,omitempty"`
	Weight    *float64  `json:"weight,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Public возвращает представление пользователя без чувствительных полей.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		UID:       u.UID,
		Username:  u.Username,
		Email:     u.Email,
		Age:       u.Age,
		Gender:    u.Gender,
		Height:    u.Height,
		Weight:    u.Weight,
		CreatedAt: u.CreatedAt,
	}
}

// UpdateUserRequest описывает частичное обновление профиля.
// Затрагиваются только ненулевые поля; пароль этим путём не меняется.
type UpdateUserRequest struct {
	Username *string
	Email    *string
	Age      *int
	Gender   *string
	Height   *float64
	Weight   *float64
}

// Empty сообщает, что запрос не затрагивает ни одного поля.
func (r UpdateUserRequest) Empty() bool {
	return r.Username == nil && r.Email == nil && r.Age == nil &&
		r.Gender == nil && r.Height == nil && r.Weight == nil
}

// Violation — одно нарушение правил валидации полей пользователя.
type Violation struct {
	Field   string
	Message string
}

// ValidationError собирает нарушения валидации в одну ошибку уровня клиента.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Message)
	}
	return strings.Join(msgs, ", ")
}

// Validate проверяет заполненные поля запроса на соответствие доменным правилам
// и возвращает список нарушений. Уникальность username и email проверяет хранилище.
func (r UpdateUserRequest) Validate() []Violation {
	var violations []Violation
	if r.Username != nil && utf8.RuneCountInString(*r.Username) < MinUsernameLen {
		violations = append(violations, Violation{
			Field:   "username",
			Message: fmt.Sprintf("username must be at least %d characters", MinUsernameLen),
		})
	}
	if r.Email != nil && !ValidEmail(*r.Email) {
		violations = append(violations, Violation{
			Field:   "email",
			Message: "invalid email format",
		})
	}
	if r.Age != nil && (*r.Age < MinAge || *r.Age > MaxAge) {
		violations = append(violations, Violation{
			Field:   "age",
			Message: fmt.Sprintf("age must be between %d and %d", MinAge, MaxAge),
		})
	}
	if r.Gender != nil && !ValidGender(*r.Gender) {
		violations = append(violations, Violation{
			Field:   "gender",
			Message: "gender must be one of: " + strings.Join(Genders, ", "),
		})
	}
	if r.Height != nil && (*r.Height < MinHeightCm || *r.Height > MaxHeightCm) {
		violations = append(violations, Violation{
			Field:   "height",
			Message: fmt.Sprintf("height must be between %.0f and %.0f cm", MinHeightCm, MaxHeightCm),
		})
	}
	if r.Weight != nil && (*r.Weight < MinWeightKg || *r.Weight > MaxWeightKg) {
		violations = append(violations, Violation{
			Field:   "weight",
			Message: fmt.Sprintf("weight must be between %.0f and %.0f kg", MinWeightKg, MaxWeightKg),
		})
	}
	return violations
}
